package rtgizmo

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// NewWindowState opens a resizable GLFW window without a client API, for use
// with a WebGPU surface. It locks the calling goroutine to its OS thread.
func NewWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}, nil
}

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

func (s *WindowState) Release() {
	if s.windowGlfw == nil {
		return
	}
	s.windowGlfw.Destroy()
	s.windowGlfw = nil
	glfw.Terminate()
}

// PlatformWindowModule provides the shared WindowState resource. A window
// created up front can be passed in; otherwise one is opened on install.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
	Window *WindowState
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); ok {
		return
	}

	ws := m.Window
	if ws == nil {
		var err error
		ws, err = NewWindowState(m.Width, m.Height, m.Title)
		if err != nil {
			panic(err)
		}
	}
	cmd.AddResources(ws)
	cmd.UseSystem(System(windowSystem).InStage(Finale))
}

func windowSystem(s *WindowState, input *Input, cmd *Commands) {
	s.WindowWidth, s.WindowHeight = input.WindowWidth, input.WindowHeight
	if s.ShouldClose() {
		cmd.Exit()
	}
}
