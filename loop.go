package triangle

// Surface is a window with a current graphics context.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	PollEvents()
	SwapBuffers()
	Input() *InputState
}

// Renderer is the interface for drawing one frame.
type Renderer interface {
	Clear(c Color)
	Draw()
}

// State is the render loop state.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Loop drives a Renderer on a Surface until the surface is asked to close.
type Loop struct {
	surface    Surface
	renderer   Renderer
	clearColor Color
	quitKey    Key
	maxFrames  int
	frames     int
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClearColor sets the background color.
func WithClearColor(c Color) LoopOption {
	return func(l *Loop) { l.clearColor = c }
}

// WithQuitKey sets the key that requests close. KeyNone disables it.
func WithQuitKey(k Key) LoopOption {
	return func(l *Loop) { l.quitKey = k }
}

// WithMaxFrames makes Run request close after n frames. 0 means no limit.
func WithMaxFrames(n int) LoopOption {
	return func(l *Loop) { l.maxFrames = n }
}

// NewLoop creates a loop that clears to Teal and quits on Escape.
func NewLoop(surface Surface, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		surface:    surface,
		renderer:   renderer,
		clearColor: Teal,
		quitKey:    KeyEscape,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// State reports whether the loop will run another iteration.
func (l *Loop) State() State {
	if l.surface.ShouldClose() {
		return Closing
	}
	return Running
}

// Frames returns the number of iterations completed so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Step runs one iteration and returns the state after it.
// A draw failure is not detected here.
func (l *Loop) Step() State {
	l.processInput()

	l.renderer.Clear(l.clearColor)
	l.renderer.Draw()

	l.surface.PollEvents()
	l.surface.SwapBuffers()

	l.frames++
	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		l.surface.SetShouldClose(true)
	}

	return l.State()
}

// Run steps until the surface should close and returns the number of
// frames rendered by this call.
func (l *Loop) Run() int {
	start := l.frames
	for l.State() == Running {
		l.Step()
	}
	return l.frames - start
}

func (l *Loop) processInput() {
	input := l.surface.Input()
	if input == nil || l.quitKey == KeyNone {
		return
	}
	// A tap inside one poll only leaves the pressed edge behind.
	if input.KeyDown(l.quitKey) || input.KeyPressed(l.quitKey) {
		l.surface.SetShouldClose(true)
	}
}
