// Package ui is the terminal front end of the stack visualizer, built on
// Bubble Tea.
//
// Core pieces:
//   - AppModel: root model; routes keys, applies session effects, draws the screen
//   - KeybindRegistry / KeyHandler: single-key shortcuts and the SPC leader menu
//   - ToastStack: timed notifications
//   - RenderStack / RenderStatus: pure renderers over a session.Snapshot
//   - OverlayStack: popups such as the history window
package ui
