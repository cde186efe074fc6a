package rtgizmo

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"

	"github.com/gekko3d/rtgizmo/rt/core"
	"github.com/gekko3d/rtgizmo/rt/draw"
	"github.com/gekko3d/rtgizmo/rt/gpu"
)

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

// NewGpuState wraps the window in a WebGPU surface and configures it for
// vsync presentation.
func NewGpuState(s *WindowState) (*GpuState, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		surface.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		device.Release()
		adapter.Release()
		surface.Release()
		return nil, fmt.Errorf("surface reports no formats for this adapter")
	}
	width, height := s.windowGlfw.GetFramebufferSize()
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	return &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         device.GetQueue(),
		surfaceConfig: &surfaceConfig,
	}, nil
}

// resize reconfigures the surface when the framebuffer size changed. A zero
// size (minimised window) is skipped.
func (g *GpuState) resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if uint32(width) == g.surfaceConfig.Width && uint32(height) == g.surfaceConfig.Height {
		return true
	}
	g.surfaceConfig.Width = uint32(width)
	g.surfaceConfig.Height = uint32(height)
	g.surface.Configure(g.adapter, g.device, g.surfaceConfig)
	return true
}

func (g *GpuState) Release() {
	if g.device == nil {
		return
	}
	g.queue.Release()
	g.device.Release()
	g.adapter.Release()
	g.surface.Release()
	g.device = nil
}

type RenderState struct {
	Gpu        *GpuState
	Pass       *gpu.GizmoRenderPass
	ClearColor wgpu.Color
}

func (r *RenderState) Release() {
	if r.Pass != nil {
		r.Pass.Release()
		r.Pass = nil
	}
}

// RenderModule draws the frame's draw.List over a cleared surface. It needs a
// WindowState, an Input, a *core.Camera and a *draw.List resource.
type RenderModule struct {
	Gpu        *GpuState
	ClearColor wgpu.Color
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	log := app.Logger()

	g := m.Gpu
	if g == nil {
		ws, ok := Resource[WindowState](app)
		if !ok {
			panic("RenderModule requires a WindowState resource")
		}
		var err error
		if g, err = NewGpuState(ws); err != nil {
			panic(err)
		}
	}
	if _, ok := Resource[GpuState](app); !ok {
		cmd.AddResources(g)
	}

	pass, err := gpu.NewGizmoRenderPass(g.device, g.surfaceConfig.Format)
	if err != nil {
		panic(fmt.Errorf("create gizmo pass: %w", err))
	}
	cmd.AddResources(&RenderState{Gpu: g, Pass: pass, ClearColor: m.ClearColor})

	cmd.UseSystem(System(func(r *RenderState, input *Input, cam *core.Camera, list *draw.List) {
		if err := r.frame(input.FramebufferWidth, input.FramebufferHeight, cam, list); err != nil {
			log.Errorf("render: %v", err)
		}
	}).InStage(Render))
}

func (r *RenderState) frame(width, height int, cam *core.Camera, list *draw.List) error {
	g := r.Gpu
	if !g.resize(width, height) {
		return nil
	}

	if err := r.Pass.Update(g.queue, list, cam.ViewProjection()); err != nil {
		return fmt.Errorf("upload gizmo: %w", err)
	}

	nextTexture, err := g.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}
	defer view.Release()

	encoder, err := g.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: r.ClearColor,
		}},
	})
	r.Pass.Draw(pass)
	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	defer cmdBuffer.Release()

	g.queue.Submit(cmdBuffer)
	g.surface.Present()
	return nil
}
