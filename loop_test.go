package triangle_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/triangle"
)

// mockSurface records calls instead of talking to a window system.
type mockSurface struct {
	calls       *[]string
	shouldClose bool
	input       *triangle.InputState

	// onPoll runs during PollEvents to simulate incoming events.
	onPoll func(frame int)
	polls  int
}

func newMockSurface(calls *[]string) *mockSurface {
	return &mockSurface{calls: calls, input: triangle.NewInputState()}
}

func (m *mockSurface) ShouldClose() bool { return m.shouldClose }

func (m *mockSurface) SetShouldClose(value bool) {
	*m.calls = append(*m.calls, "close")
	m.shouldClose = value
}

func (m *mockSurface) PollEvents() {
	*m.calls = append(*m.calls, "poll")
	m.input.Reset()
	if m.onPoll != nil {
		m.onPoll(m.polls)
	}
	m.polls++
}

func (m *mockSurface) SwapBuffers() { *m.calls = append(*m.calls, "swap") }

func (m *mockSurface) Input() *triangle.InputState { return m.input }

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	calls  *[]string
	clears []triangle.Color
}

func (m *mockRenderer) Clear(c triangle.Color) {
	*m.calls = append(*m.calls, "clear")
	m.clears = append(m.clears, c)
}

func (m *mockRenderer) Draw() { *m.calls = append(*m.calls, "draw") }

func TestLoopStepOrder(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	renderer := &mockRenderer{calls: &calls}
	loop := triangle.NewLoop(surface, renderer)

	state := loop.Step()
	if state != triangle.Running {
		t.Fatalf("expected running after one step, got %v", state)
	}

	want := []string{"clear", "draw", "poll", "swap"}
	if !slices.Equal(calls, want) {
		t.Errorf("expected calls %v, got %v", want, calls)
	}
	if len(renderer.clears) != 1 || renderer.clears[0] != triangle.Teal {
		t.Errorf("expected one teal clear, got %v", renderer.clears)
	}
	if loop.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", loop.Frames())
	}
}

func TestLoopQuitKey(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	loop := triangle.NewLoop(surface, &mockRenderer{calls: &calls})

	surface.input.SetKey(triangle.KeyEscape, true)

	if state := loop.Step(); state != triangle.Closing {
		t.Fatalf("expected closing after escape, got %v", state)
	}
	if !surface.ShouldClose() {
		t.Error("escape should set the close flag")
	}
	if calls[0] != "close" {
		t.Errorf("input should be processed before drawing, got %v", calls)
	}
}

func TestRunStopsAfterQuitKey(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	surface.onPoll = func(frame int) {
		if frame == 2 {
			surface.input.SetKey(triangle.KeyEscape, true)
		}
	}
	loop := triangle.NewLoop(surface, &mockRenderer{calls: &calls})

	frames := loop.Run()

	// Escape arrives during the third poll and is handled on the next iteration.
	if frames != 4 {
		t.Errorf("expected 4 frames, got %d", frames)
	}
	if loop.State() != triangle.Closing {
		t.Errorf("expected closing, got %v", loop.State())
	}
}

func TestRunStopsAfterQuitKeyTap(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	surface.onPoll = func(frame int) {
		if frame == 0 {
			// Pressed and released within one batch of events.
			surface.input.SetKey(triangle.KeyEscape, true)
			surface.input.SetKey(triangle.KeyEscape, false)
		}
	}
	loop := triangle.NewLoop(surface, &mockRenderer{calls: &calls}, triangle.WithMaxFrames(5))

	if frames := loop.Run(); frames != 2 {
		t.Errorf("expected the tap to stop the loop after 2 frames, got %d", frames)
	}
	if !slices.Contains(calls[:5], "close") {
		t.Errorf("expected close at the start of the second frame, got %v", calls)
	}
}

func TestRunStopsOnWindowClose(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	surface.onPoll = func(frame int) {
		if frame == 0 {
			surface.shouldClose = true
		}
	}
	loop := triangle.NewLoop(surface, &mockRenderer{calls: &calls})

	if frames := loop.Run(); frames != 1 {
		t.Errorf("expected 1 frame, got %d", frames)
	}
}

func TestRunAlreadyClosed(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	surface.shouldClose = true
	loop := triangle.NewLoop(surface, &mockRenderer{calls: &calls})

	if frames := loop.Run(); frames != 0 {
		t.Errorf("expected no frames, got %d", frames)
	}
	if len(calls) != 0 {
		t.Errorf("expected no calls, got %v", calls)
	}
}

func TestLoopOptions(t *testing.T) {
	var calls []string
	surface := newMockSurface(&calls)
	renderer := &mockRenderer{calls: &calls}
	red := triangle.Color{R: 1, A: 1}
	loop := triangle.NewLoop(surface, renderer,
		triangle.WithClearColor(red),
		triangle.WithQuitKey(triangle.KeyNone),
		triangle.WithMaxFrames(3),
	)

	surface.input.SetKey(triangle.KeyEscape, true)

	if frames := loop.Run(); frames != 3 {
		t.Errorf("expected 3 frames with quit key disabled, got %d", frames)
	}
	for i, c := range renderer.clears {
		if c != red {
			t.Errorf("clear %d: expected %v, got %v", i, red, c)
		}
	}
}

func TestStateString(t *testing.T) {
	if triangle.Running.String() != "running" {
		t.Errorf("unexpected %q", triangle.Running.String())
	}
	if triangle.Closing.String() != "closing" {
		t.Errorf("unexpected %q", triangle.Closing.String())
	}
}
