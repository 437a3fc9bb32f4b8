// Package session owns the stack being visualised and translates user
// intents into stack operations. Each operation returns an Effect telling
// the presentation layer which notification to show, which cue to play
// and whether to redraw. The package has no UI dependency.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"stackviz/internal/stack"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// MinCapacity and MaxCapacity bound the resize target accepted from the user.
	MinCapacity = 1
	MaxCapacity = 20

	tracerName = "stackviz/session"
)

// RandomSymbols is the pool Randomize draws values from.
var RandomSymbols = []string{"A", "B", "C", "X", "Y", "Z", "1", "2", "3", "★", "♦", "♠"}

// Session is the application state: the stack, the animation gate, the
// last operation text and the operation history.
// Not safe for concurrent use; the UI event loop serialises access.
type Session struct {
	stack         *stack.Stack[string]
	animating     bool
	lastOperation string
	history       *History

	tracer trace.Tracer
	rng    *rand.Rand
	now    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithCapacity sets the initial capacity.
func WithCapacity(n int) Option {
	return func(s *Session) { s.stack = stack.New[string](n) }
}

// WithTracer sets the tracer used to record one span per operation.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithRand sets the random source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithClock sets the clock used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a session with an empty stack of stack.DefaultCapacity.
func New(opts ...Option) *Session {
	s := &Session{
		stack:   stack.New[string](stack.DefaultCapacity),
		history: newHistory(MaxHistory),
		tracer:  noop.NewTracerProvider().Tracer(tracerName),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Snapshot is a read-only copy of the stack state used for rendering.
type Snapshot struct {
	Items    []string
	Capacity int
	TopIndex int
}

// Size returns the number of items in the snapshot.
func (s Snapshot) Size() int { return len(s.Items) }

// Snapshot copies the current stack state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Items:    s.stack.Items(),
		Capacity: s.stack.Capacity(),
		TopIndex: s.stack.TopIndex(),
	}
}

// Animating reports whether the animation gate is closed.
func (s *Session) Animating() bool { return s.animating }

// Settle reopens the animation gate.
func (s *Session) Settle() { s.animating = false }

// LastOperation returns the most recent last-operation text.
func (s *Session) LastOperation() string { return s.lastOperation }

// History returns the operation history.
func (s *Session) History() *History { return s.history }

// Note records a last-operation message that did not come from a stack
// operation (e.g. startup).
func (s *Session) Note(msg string) {
	s.record(msg, LevelDefault)
}

func (s *Session) record(msg string, level Level) {
	s.lastOperation = msg
	s.history.add(Entry{Time: s.now(), Message: msg, Level: level})
}

func (s *Session) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "stack."+op)
}

func (s *Session) endSpan(span trace.Span, err error) {
	span.SetAttributes(
		attribute.Int("stack.size", s.stack.Size()),
		attribute.Int("stack.capacity", s.stack.Capacity()),
		attribute.Bool("stack.success", err == nil),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// gated runs op unless the animation gate is closed. An Effect that
// animates closes the gate until Settle.
func (s *Session) gated(op func() Effect) Effect {
	if s.animating {
		return Effect{Ignored: true}
	}
	e := op()
	if e.Animate {
		s.animating = true
	}
	return e
}

// Push pushes the trimmed input value.
func (s *Session) Push(ctx context.Context, raw string) Effect {
	return s.gated(func() Effect { return s.push(ctx, raw) })
}

func (s *Session) push(ctx context.Context, raw string) Effect {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Effect{Notice: notice("Invalid Input", "Please enter a value to push", LevelWarning)}
	}

	_, span := s.startSpan(ctx, "push")
	span.SetAttributes(attribute.String("stack.value", value))
	r := s.stack.Push(value)
	s.endSpan(span, r.Err)

	if !r.Success() {
		s.record(r.Message, LevelError)
		return Effect{
			Notice:  notice("Error", r.Message, LevelError),
			Cue:     CueShake,
			Animate: true,
		}
	}
	s.record(r.Message, LevelSuccess)
	return Effect{
		Notice:     notice("Success", r.Message, LevelSuccess),
		Render:     true,
		ClearInput: true,
		Animate:    true,
	}
}

// Pop removes the top value.
func (s *Session) Pop(ctx context.Context) Effect {
	return s.gated(func() Effect { return s.pop(ctx) })
}

func (s *Session) pop(ctx context.Context) Effect {
	_, span := s.startSpan(ctx, "pop")
	r := s.stack.Pop()
	s.endSpan(span, r.Err)

	if !r.Success() {
		s.record(r.Message, LevelError)
		return Effect{
			Notice:  notice("Error", r.Message, LevelError),
			Cue:     CueShake,
			Render:  true,
			Animate: true,
		}
	}
	s.record(r.Message, LevelSuccess)
	return Effect{
		Notice:  notice("Success", r.Message, LevelSuccess),
		Render:  true,
		Animate: true,
	}
}

// Peek reports the top value and highlights its block. Not gated.
func (s *Session) Peek(ctx context.Context) Effect {
	_, span := s.startSpan(ctx, "peek")
	r := s.stack.Peek()
	s.endSpan(span, r.Err)

	if !r.Success() {
		s.record(r.Message, LevelError)
		return Effect{Notice: notice("Error", r.Message, LevelError)}
	}
	s.record(r.Message, LevelDefault)
	return Effect{
		Notice:   notice("Peek", r.Message, LevelDefault),
		Cue:      CueGlow,
		CueIndex: s.stack.TopIndex(),
	}
}

// Clear empties the stack.
func (s *Session) Clear(ctx context.Context) Effect {
	return s.gated(func() Effect { return s.clear(ctx) })
}

func (s *Session) clear(ctx context.Context) Effect {
	_, span := s.startSpan(ctx, "clear")
	r := s.stack.Clear()
	s.endSpan(span, r.Err)

	s.record(r.Message, LevelSuccess)
	return Effect{
		Notice:  notice("Success", r.Message, LevelSuccess),
		Render:  true,
		Animate: true,
	}
}

// ParseCapacity validates a user-entered resize target.
func ParseCapacity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse capacity %q: %w", raw, err)
	}
	if n < MinCapacity || n > MaxCapacity {
		return 0, fmt.Errorf("capacity %d out of range [%d, %d]", n, MinCapacity, MaxCapacity)
	}
	return n, nil
}

// Resize changes the capacity to the parsed input value.
func (s *Session) Resize(ctx context.Context, raw string) Effect {
	return s.gated(func() Effect { return s.resize(ctx, raw) })
}

func (s *Session) resize(ctx context.Context, raw string) Effect {
	n, err := ParseCapacity(raw)
	if err != nil {
		return Effect{Notice: notice("Invalid Input",
			fmt.Sprintf("Capacity must be between %d and %d", MinCapacity, MaxCapacity), LevelWarning)}
	}

	_, span := s.startSpan(ctx, "resize")
	span.SetAttributes(attribute.Int("stack.requested_capacity", n))
	r := s.stack.Resize(n)
	span.SetAttributes(attribute.Int("stack.removed", r.Removed))
	s.endSpan(span, r.Err)

	if !r.Success() {
		s.record(r.Message, LevelError)
		return Effect{
			Notice:  notice("Error", r.Message, LevelError),
			Cue:     CueShake,
			Animate: true,
		}
	}
	s.record(r.Message, LevelSuccess)
	return Effect{
		Notice:     notice("Success", r.Message, LevelSuccess),
		Render:     true,
		ClearInput: true,
		Animate:    true,
	}
}

// Randomize clears the stack and fills it with 1..capacity random symbols.
func (s *Session) Randomize(ctx context.Context) Effect {
	return s.gated(func() Effect { return s.randomize(ctx) })
}

func (s *Session) randomize(ctx context.Context) Effect {
	_, span := s.startSpan(ctx, "randomize")
	s.stack.Clear()
	count := s.rng.IntN(s.stack.Capacity()) + 1
	for range count {
		s.stack.Push(RandomSymbols[s.rng.IntN(len(RandomSymbols))])
	}
	span.SetAttributes(attribute.Int("stack.pushed", count))
	s.endSpan(span, nil)

	s.record(fmt.Sprintf("Randomized stack with %d items", count), LevelDefault)
	return Effect{
		Notice:  notice("Randomized", fmt.Sprintf("Added %d random items to stack", count), LevelDefault),
		Render:  true,
		Animate: true,
	}
}

// FormatItems renders items as `[0]: "A", [1]: "B"`.
func FormatItems(items []string) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = fmt.Sprintf("[%d]: \"%s\"", i, v)
	}
	return strings.Join(parts, ", ")
}

// DisplayAll describes every item with its index. Read-only and not gated.
func (s *Session) DisplayAll(ctx context.Context) Effect {
	_, span := s.startSpan(ctx, "display_all")
	items := s.stack.Items()
	var err error
	if len(items) == 0 {
		err = stack.ErrEmpty
	}
	s.endSpan(span, err)

	if len(items) == 0 {
		s.record("Display all: Stack is empty", LevelWarning)
		return Effect{Notice: notice("Empty Stack", "Stack is empty - nothing to display", LevelWarning)}
	}
	list := FormatItems(items)
	s.record("Display all: "+list, LevelDefault)
	return Effect{Notice: notice("Stack Contents", "All items: "+list, LevelDefault)}
}
