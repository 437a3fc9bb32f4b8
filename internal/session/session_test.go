package session

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// settled runs op and reopens the animation gate, as the UI does once
// the animation window has passed.
func settled(s *Session, e Effect) Effect {
	s.Settle()
	return e
}

func TestSession_PushScenario(t *testing.T) {
	ctx := context.Background()
	s := New(WithCapacity(5))

	for _, v := range []string{"A", "B", "C"} {
		e := settled(s, s.Push(ctx, v))
		require.NotNil(t, e.Notice)
		assert.Equal(t, LevelSuccess, e.Notice.Level)
		assert.True(t, e.Render)
		assert.True(t, e.ClearInput)
	}

	snap := s.Snapshot()
	assert.Equal(t, 3, snap.Size())
	assert.Equal(t, 2, snap.TopIndex)

	e := s.Peek(ctx)
	require.NotNil(t, e.Notice)
	assert.Equal(t, "Peek", e.Notice.Title)
	assert.Equal(t, LevelDefault, e.Notice.Level)
	assert.Equal(t, `Top value is "C"`, e.Notice.Body)
	assert.Equal(t, CueGlow, e.Cue)
	assert.Equal(t, 2, e.CueIndex)
	assert.False(t, e.Render)
}

func TestSession_PushTrimsAndRejectsEmpty(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := s.Push(ctx, "   ")
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelWarning, e.Notice.Level)
	assert.Equal(t, "Please enter a value to push", e.Notice.Body)
	assert.False(t, e.Animate)
	assert.False(t, s.Animating())
	assert.Equal(t, 0, s.Snapshot().Size())
	assert.Empty(t, s.LastOperation())

	settled(s, s.Push(ctx, "  hi \t"))
	assert.Equal(t, []string{"hi"}, s.Snapshot().Items)
	assert.Equal(t, `Pushed "hi" to stack`, s.LastOperation())
}

func TestSession_PushOverflow(t *testing.T) {
	ctx := context.Background()
	s := New(WithCapacity(2))
	settled(s, s.Push(ctx, "A"))
	settled(s, s.Push(ctx, "B"))

	e := settled(s, s.Push(ctx, "C"))
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelError, e.Notice.Level)
	assert.Equal(t, "Error", e.Notice.Title)
	assert.Contains(t, e.Notice.Body, "Stack Overflow")
	assert.Equal(t, CueShake, e.Cue)
	assert.False(t, e.ClearInput)
	assert.Equal(t, 2, s.Snapshot().Size())
}

func TestSession_PopUnderflow(t *testing.T) {
	s := New()

	e := settled(s, s.Pop(context.Background()))
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelError, e.Notice.Level)
	assert.Contains(t, e.Notice.Body, "Stack Underflow")
	assert.Equal(t, CueShake, e.Cue)
	assert.True(t, e.Render)
	assert.Equal(t, 0, s.Snapshot().Size())
}

func TestSession_PeekEmptyHasNoCue(t *testing.T) {
	e := New().Peek(context.Background())
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelError, e.Notice.Level)
	assert.Equal(t, CueNone, e.Cue)
}

func TestSession_AnimationGate(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := s.Push(ctx, "A")
	assert.True(t, e.Animate)
	assert.True(t, s.Animating())

	assert.True(t, s.Push(ctx, "B").Ignored)
	assert.True(t, s.Pop(ctx).Ignored)
	assert.True(t, s.Clear(ctx).Ignored)
	assert.True(t, s.Resize(ctx, "3").Ignored)
	assert.True(t, s.Randomize(ctx).Ignored)

	// Read-only operations pass through the gate.
	assert.False(t, s.Peek(ctx).Ignored)
	assert.False(t, s.DisplayAll(ctx).Ignored)

	assert.Equal(t, []string{"A"}, s.Snapshot().Items)

	s.Settle()
	assert.False(t, s.Push(ctx, "B").Ignored)
	assert.Equal(t, []string{"A", "B"}, s.Snapshot().Items)
}

func TestSession_GateClosesOnlyWhenStackIsTouched(t *testing.T) {
	ctx := context.Background()
	s := New(WithCapacity(1))

	// Rejected input never reaches the stack and leaves the gate open.
	s.Push(ctx, "  ")
	assert.False(t, s.Animating())
	s.Resize(ctx, "99")
	assert.False(t, s.Animating())

	// A failed stack operation still animates.
	e := s.Pop(ctx)
	assert.True(t, e.Animate)
	assert.True(t, s.Animating())
	s.Settle()

	settled(s, s.Push(ctx, "A"))
	e = s.Push(ctx, "B")
	assert.Equal(t, CueShake, e.Cue)
	assert.True(t, s.Animating())
}

func TestSession_Clear(t *testing.T) {
	ctx := context.Background()
	s := New(WithCapacity(4))
	settled(s, s.Push(ctx, "A"))

	e := settled(s, s.Clear(ctx))
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelSuccess, e.Notice.Level)
	assert.Equal(t, "Stack cleared successfully", e.Notice.Body)
	assert.True(t, e.Render)
	assert.Equal(t, 0, s.Snapshot().Size())
	assert.Equal(t, 4, s.Snapshot().Capacity)
}

func TestSession_ResizeTruncates(t *testing.T) {
	ctx := context.Background()
	s := New(WithCapacity(5))
	for _, v := range []string{"A", "B", "C"} {
		settled(s, s.Push(ctx, v))
	}

	e := settled(s, s.Resize(ctx, " 2 "))
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelSuccess, e.Notice.Level)
	assert.Equal(t, "Resized from 5 to 2. Removed 1 items.", e.Notice.Body)
	assert.True(t, e.ClearInput)
	assert.Equal(t, []string{"A", "B"}, s.Snapshot().Items)
	assert.Equal(t, 2, s.Snapshot().Capacity)
}

func TestSession_ResizeRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"", "abc", "0", "-1", "21", "3.5"} {
		s := New(WithCapacity(5))
		e := s.Resize(ctx, raw)
		require.NotNil(t, e.Notice, "input %q", raw)
		assert.Equal(t, LevelWarning, e.Notice.Level, "input %q", raw)
		assert.Equal(t, "Capacity must be between 1 and 20", e.Notice.Body)
		assert.False(t, e.ClearInput)
		assert.False(t, s.Animating())
		assert.Equal(t, 5, s.Snapshot().Capacity)
	}
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"20", 20, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"21", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCapacity(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Randomize(t *testing.T) {
	ctx := context.Background()
	s := New(WithCapacity(6), WithRand(rand.New(rand.NewPCG(1, 2))))
	settled(s, s.Push(ctx, "keep-out"))

	for i := 0; i < 20; i++ {
		e := settled(s, s.Randomize(ctx))
		require.NotNil(t, e.Notice)
		assert.Equal(t, "Randomized", e.Notice.Title)
		assert.True(t, e.Render)

		items := s.Snapshot().Items
		require.GreaterOrEqual(t, len(items), 1)
		require.LessOrEqual(t, len(items), 6)
		for _, v := range items {
			assert.Contains(t, RandomSymbols, v)
		}
		assert.True(t, strings.HasPrefix(s.LastOperation(), "Randomized stack with "))
	}
}

func TestSession_DisplayAll(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := s.DisplayAll(ctx)
	require.NotNil(t, e.Notice)
	assert.Equal(t, LevelWarning, e.Notice.Level)
	assert.Equal(t, "Display all: Stack is empty", s.LastOperation())

	settled(s, s.Push(ctx, "A"))
	settled(s, s.Push(ctx, "B"))
	e = s.DisplayAll(ctx)
	require.NotNil(t, e.Notice)
	assert.Equal(t, "Stack Contents", e.Notice.Title)
	assert.Equal(t, `All items: [0]: "A", [1]: "B"`, e.Notice.Body)
	assert.Equal(t, `Display all: [0]: "A", [1]: "B"`, s.LastOperation())
	assert.False(t, e.Render)
}

func TestSession_HistoryRecordsOperations(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := New(WithClock(func() time.Time { return fixed }))

	s.Note("Application initialized")
	settled(s, s.Push(ctx, "A"))
	settled(s, s.Pop(ctx))
	settled(s, s.Pop(ctx))

	entries := s.History().Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "Application initialized", entries[0].Message)
	assert.Equal(t, LevelSuccess, entries[1].Level)
	assert.Equal(t, LevelError, entries[3].Level)
	assert.Equal(t, fixed, entries[3].Time)
}

func TestHistory_Bounded(t *testing.T) {
	h := newHistory(3)
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		h.add(Entry{Message: m})
	}
	entries := h.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Message)
	assert.Equal(t, "e", entries[2].Message)
}

func TestSession_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	s := New(WithTracer(tp.Tracer("test")), WithCapacity(1))
	ctx := context.Background()

	settled(s, s.Push(ctx, "A"))
	settled(s, s.Push(ctx, "B"))

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "stack.push", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[1].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.False(t, attrs["stack.success"].AsBool())
	assert.Equal(t, int64(1), attrs["stack.size"].AsInt64())
}
