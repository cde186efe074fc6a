package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rtgizmo/rt/draw"
	"github.com/gekko3d/rtgizmo/rt/shaders"
)

const (
	vertexSize     = uint64(unsafe.Sizeof(draw.Vertex{}))
	cameraDataSize = 64 // mat4x4<f32>
)

// clipCorrection maps OpenGL clip depth [-1,1] onto WebGPU's [0,1].
var clipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// CameraMatrix converts an mgl32 view-projection into WebGPU clip space.
func CameraMatrix(viewProj mgl32.Mat4) mgl32.Mat4 {
	return clipCorrection.Mul4(viewProj)
}

// nextCapacity grows vertex buffers geometrically with some margin so a
// gizmo that changes shape every frame does not reallocate every frame.
func nextCapacity(current, need uint32) uint32 {
	if need <= current {
		return current
	}
	c := current * 2
	if c < need {
		c = need
	}
	return c + 256
}

type vertexStream struct {
	label  string
	buffer *wgpu.Buffer
	cap    uint32
	count  uint32
	verts  []draw.Vertex
}

func (s *vertexStream) upload(device *wgpu.Device, queue *wgpu.Queue) error {
	s.count = uint32(len(s.verts))
	if s.count == 0 {
		return nil
	}
	if s.buffer == nil || s.cap < s.count {
		if s.buffer != nil {
			s.buffer.Release()
			s.buffer = nil
		}
		capacity := nextCapacity(s.cap, s.count)
		buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: s.label,
			Size:  uint64(capacity) * vertexSize,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			s.cap, s.count = 0, 0
			return fmt.Errorf("create %s: %w", s.label, err)
		}
		s.buffer, s.cap = buf, capacity
	}
	size := uint64(s.count) * vertexSize
	return queue.WriteBuffer(s.buffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&s.verts[0])), size))
}

func (s *vertexStream) release() {
	if s.buffer != nil {
		s.buffer.Release()
		s.buffer = nil
	}
	s.cap, s.count = 0, 0
}

// GizmoRenderPass draws a frame's draw.List as unlit, alpha-blended geometry
// on top of whatever is already in the colour target.
type GizmoRenderPass struct {
	Device           *wgpu.Device
	TrianglePipeline *wgpu.RenderPipeline
	LinePipeline     *wgpu.RenderPipeline
	CameraBuffer     *wgpu.Buffer
	CameraBindGroup  *wgpu.BindGroup

	cameraLayout *wgpu.BindGroupLayout
	stream       vertexStream
	spans        []draw.Span
}

func NewGizmoRenderPass(device *wgpu.Device, format wgpu.TextureFormat) (*GizmoRenderPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "GizmoShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.GizmoWGSL},
	})
	if err != nil {
		return nil, err
	}
	defer shaderModule.Release()

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "GizmoCameraBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraDataSize,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "GizmoPipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		bgl.Release()
		return nil, err
	}
	defer pipelineLayout.Release()

	p := &GizmoRenderPass{
		Device:       device,
		cameraLayout: bgl,
		stream:       vertexStream{label: "GizmoVertexBuffer"},
	}

	p.TrianglePipeline, err = createPipeline(device, shaderModule, pipelineLayout, format, wgpu.PrimitiveTopologyTriangleList)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.LinePipeline, err = createPipeline(device, shaderModule, pipelineLayout, format, wgpu.PrimitiveTopologyLineList)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.CameraBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "GizmoCameraBuffer",
		Size:  cameraDataSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		p.Release()
		return nil, err
	}

	p.CameraBindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "GizmoCameraBG",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  p.CameraBuffer,
				Size:    cameraDataSize,
			},
		},
	})
	if err != nil {
		p.Release()
		return nil, err
	}

	return p, nil
}

func createPipeline(device *wgpu.Device, module *wgpu.ShaderModule, layout *wgpu.PipelineLayout, format wgpu.TextureFormat, topology wgpu.PrimitiveTopology) (*wgpu.RenderPipeline, error) {
	return device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "GizmoPipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: vertexSize,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         0,
							ShaderLocation: 0,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(draw.Vertex{}.Color)),
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		// Handles always draw over the scene.
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}

// Update uploads the camera and this frame's geometry in submission order.
func (p *GizmoRenderPass) Update(queue *wgpu.Queue, list *draw.List, viewProj mgl32.Mat4) error {
	m := CameraMatrix(viewProj)
	if err := queue.WriteBuffer(p.CameraBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&m[0])), cameraDataSize)); err != nil {
		return err
	}

	p.stream.verts, p.spans = list.AppendVertices(p.stream.verts[:0], p.spans[:0])
	return p.stream.upload(p.Device, queue)
}

// Draw replays the uploaded spans in order, switching between the triangle
// and line pipelines as the topology changes.
func (p *GizmoRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.stream.count == 0 || p.stream.buffer == nil {
		return
	}
	pass.SetBindGroup(0, p.CameraBindGroup, nil)
	pass.SetVertexBuffer(0, p.stream.buffer, 0, p.stream.buffer.GetSize())

	var current *wgpu.RenderPipeline
	for _, span := range p.spans {
		pipeline := p.pipelineFor(span)
		if pipeline != current {
			pass.SetPipeline(pipeline)
			current = pipeline
		}
		pass.Draw(span.Count, 1, span.First, 0)
	}
}

func (p *GizmoRenderPass) pipelineFor(span draw.Span) *wgpu.RenderPipeline {
	if span.Lines {
		return p.LinePipeline
	}
	return p.TrianglePipeline
}

func (p *GizmoRenderPass) Release() {
	p.stream.release()
	p.spans = nil
	if p.CameraBindGroup != nil {
		p.CameraBindGroup.Release()
		p.CameraBindGroup = nil
	}
	if p.CameraBuffer != nil {
		p.CameraBuffer.Release()
		p.CameraBuffer = nil
	}
	if p.TrianglePipeline != nil {
		p.TrianglePipeline.Release()
		p.TrianglePipeline = nil
	}
	if p.LinePipeline != nil {
		p.LinePipeline.Release()
		p.LinePipeline = nil
	}
	if p.cameraLayout != nil {
		p.cameraLayout.Release()
		p.cameraLayout = nil
	}
}
