package main

import (
	"os"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/rtgizmo"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgErr := rtgizmo.LoadConfigFromEnv()
	level, _ := cfg.Level()
	log := rtgizmo.NewDefaultLogger("viewer", level)
	if cfgErr != nil {
		log.Warnf("using default config: %v", cfgErr)
	}
	if err := cfg.Validate(); err != nil {
		log.Errorf("invalid config: %v", err)
		return 2
	}
	gizmoCfg, _ := cfg.Gizmo()

	window, err := rtgizmo.NewWindowState(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	gpuState, err := rtgizmo.NewGpuState(window)
	if err != nil {
		window.Release()
		log.Errorf("%v", err)
		return 1
	}

	app := rtgizmo.NewAppBuilder().
		UseModule(
			loggerModule{log},
			rtgizmo.TimeModule{},
			rtgizmo.PlatformWindowModule{Window: window},
			rtgizmo.InputModule{},
			rtgizmo.GizmoModule{Config: gizmoCfg},
			rtgizmo.RenderModule{Gpu: gpuState, ClearColor: wgpu.Color{R: 0.12, G: 0.12, B: 0.14, A: 1}},
		).
		Build()

	log.Infof("drag handles with the left mouse button, orbit with the right; ctrl+z/ctrl+y undo and redo")
	app.Run()
	return 0
}

// loggerModule shares the logger main already built with the app.
type loggerModule struct {
	log *rtgizmo.DefaultLogger
}

func (m loggerModule) Install(app *rtgizmo.App, cmd *rtgizmo.Commands) {
	cmd.AddResources(m.log)
}
