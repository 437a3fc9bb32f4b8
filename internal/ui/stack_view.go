package ui

import (
	"fmt"
	"strconv"
	"strings"

	"stackviz/internal/session"
	"stackviz/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	// EmptySlot is drawn in blocks with no value.
	EmptySlot = "—"
	// PointerLabel marks the top of the stack.
	PointerLabel = "◀ top"

	blockWidth   = 11
	labelWidth   = 2
	shakeOffset  = 2
	pointerSpace = 1
	statusWidth  = 30
)

// StackFrame is the view state the block column is drawn from.
type StackFrame struct {
	Snapshot  session.Snapshot
	Shaking   bool
	GlowIndex int // -1 for none
}

// RenderStack draws one block per capacity slot, highest index at the top,
// with index labels on the left and the top pointer on the right. When the
// stack is empty the pointer sits on a line below slot 0.
func RenderStack(f StackFrame, styles Styles) string {
	snap := f.Snapshot
	indent := ""
	if f.Shaking {
		indent = strings.Repeat(" ", shakeOffset)
	}

	lines := make([]string, 0, snap.Capacity+1)
	for i := snap.Capacity - 1; i >= 0; i-- {
		label := styles.IndexLabel.Render(textutil.PadLeft(strconv.Itoa(i), labelWidth))
		line := indent + label + " " + renderBlock(snap, i, f, styles)
		if i == snap.TopIndex {
			line += strings.Repeat(" ", pointerSpace) + styles.Pointer.Render(PointerLabel)
		}
		lines = append(lines, line)
	}

	base := indent + strings.Repeat(" ", labelWidth+1) + styles.Muted.Render(strings.Repeat("▔", blockWidth))
	if snap.TopIndex < 0 {
		base += strings.Repeat(" ", pointerSpace) + styles.Pointer.Render(PointerLabel)
	}
	lines = append(lines, base)
	return strings.Join(lines, "\n")
}

func renderBlock(snap session.Snapshot, i int, f StackFrame, styles Styles) string {
	if i >= len(snap.Items) {
		return styles.BlockEmpty.Render(textutil.Center(EmptySlot, blockWidth))
	}
	text := textutil.Center(snap.Items[i], blockWidth)
	switch {
	case i == f.GlowIndex:
		return styles.BlockGlow.Render(text)
	case f.Shaking:
		return styles.BlockShake.Render(text)
	default:
		return styles.BlockFilled.Render(text)
	}
}

// ArrayDump formats items as `"A", "B"`; empty for no items.
func ArrayDump(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return `"` + strings.Join(items, `", "`) + `"`
}

// RenderStatus draws the status panel: capacity, top index, size and the
// raw array contents.
func RenderStatus(snap session.Snapshot, styles Styles) string {
	row := func(name string, v int) string {
		return styles.Muted.Render(fmt.Sprintf("%-10s", name)) + styles.Value.Render(strconv.Itoa(v))
	}
	dump := ArrayDump(snap.Items)
	if dump == "" {
		dump = styles.Muted.Italic(true).Render("(empty)")
	}
	return strings.Join([]string{
		styles.Section.Render("Status"),
		row("Capacity", snap.Capacity),
		row("Top index", snap.TopIndex),
		row("Size", snap.Size()),
		"",
		styles.Section.Render("Array") + "  " + styles.Muted.Render(fmt.Sprintf("Size: %d", snap.Size())),
		styles.Normal.Width(statusWidth).Render(dump),
	}, "\n")
}

// joinPanels lays panels side by side with a gap.
func joinPanels(panels ...string) string {
	var nonEmpty []string
	for _, p := range panels {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	for i := 0; i < len(nonEmpty)-1; i++ {
		nonEmpty[i] = lipgloss.NewStyle().MarginRight(2).Render(nonEmpty[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, nonEmpty...)
}
