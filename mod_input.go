package rtgizmo

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyC int = iota
	KeyF
	KeyL
	KeyP
	KeyR
	KeyY
	KeyZ
	KeyEscape
	KeyShift
	KeyControl
	KeySuper
	MouseButtonLeft
	MouseButtonRight
	keyCount
)

type InputModule struct{}

type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollY                  float64

	Focused   bool
	FocusLost bool

	// WindowWidth/Height are in screen coordinates, the units of MouseX/Y.
	// FramebufferWidth/Height are in pixels and differ on HiDPI displays.
	WindowWidth, WindowHeight           int
	FramebufferWidth, FramebufferHeight int

	scroll  float64
	hooked  bool
	started bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{Focused: true})
	cmd.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

// setKey records the level of key for this frame and derives its edges.
func (input *Input) setKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

func (input *Input) setFocus(focused bool) {
	input.FocusLost = input.Focused && !focused
	input.Focused = focused
}

func (input *Input) setMouse(x, y float64) {
	if input.started {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	}
	input.MouseX, input.MouseY = x, y
	input.started = true
}

func inputSystem(s *WindowState, input *Input) {
	if !input.hooked {
		s.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.scroll += yoff
		})
		input.hooked = true
	}

	glfw.PollEvents()

	input.ScrollY, input.scroll = input.scroll, 0

	for key, glfwKeys := range keyToGlfw {
		input.setKey(key, anyKeyDown(s.windowGlfw.GetKey, glfwKeys))
	}
	for btn, glfwBtn := range buttonToGlfw {
		input.setKey(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.setMouse(s.windowGlfw.GetCursorPos())
	input.setFocus(s.windowGlfw.GetAttrib(glfw.Focused) == glfw.True)

	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
	input.FramebufferWidth, input.FramebufferHeight = s.windowGlfw.GetFramebufferSize()
}

// anyKeyDown reports whether any of keys is held, so either Shift or Ctrl counts.
func anyKeyDown(state func(glfw.Key) glfw.Action, keys []glfw.Key) bool {
	for _, k := range keys {
		if state(k) == glfw.Press {
			return true
		}
	}
	return false
}

var keyToGlfw = map[int][]glfw.Key{
	KeyC:       {glfw.KeyC},
	KeyF:       {glfw.KeyF},
	KeyL:       {glfw.KeyL},
	KeyP:       {glfw.KeyP},
	KeyR:       {glfw.KeyR},
	KeyY:       {glfw.KeyY},
	KeyZ:       {glfw.KeyZ},
	KeyEscape:  {glfw.KeyEscape},
	KeyShift:   {glfw.KeyLeftShift, glfw.KeyRightShift},
	KeyControl: {glfw.KeyLeftControl, glfw.KeyRightControl},
	KeySuper:   {glfw.KeyLeftSuper, glfw.KeyRightSuper},
}

var buttonToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:  glfw.MouseButtonLeft,
	MouseButtonRight: glfw.MouseButtonRight,
}
