package gmat

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline translation: material render state expressed as wgpu pipeline
// descriptor fragments. These are pure; only CreateRenderPipeline touches
// the device.

// ColorWriteMask packs the per-channel write flags into a wgpu mask.
func (m *Material) ColorWriteMask() wgpu.ColorWriteMask {
	var mask wgpu.ColorWriteMask
	if m.RedWrite {
		mask |= wgpu.ColorWriteMaskRed
	}
	if m.GreenWrite {
		mask |= wgpu.ColorWriteMaskGreen
	}
	if m.BlueWrite {
		mask |= wgpu.ColorWriteMaskBlue
	}
	if m.AlphaWrite {
		mask |= wgpu.ColorWriteMaskAlpha
	}
	return mask
}

// BlendState returns the wgpu blend state for the material, or nil when
// blending is off. The alpha component mirrors the color component unless
// SeparateAlphaBlend selects the material's alpha-side tuple.
func (m *Material) BlendState() *wgpu.BlendState {
	if !m.blend {
		return nil
	}
	color := wgpu.BlendComponent{
		Operation: m.blendEq,
		SrcFactor: m.blendSrc,
		DstFactor: m.blendDst,
	}
	alpha := color
	if m.SeparateAlphaBlend {
		alpha = wgpu.BlendComponent{
			Operation: m.BlendAlphaEquation,
			SrcFactor: m.BlendSrcAlpha,
			DstFactor: m.BlendDstAlpha,
		}
	}
	return &wgpu.BlendState{Color: color, Alpha: alpha}
}

// ColorTargetState returns the color target descriptor for rendering the
// material into an attachment of the given format.
func (m *Material) ColorTargetState(format wgpu.TextureFormat) wgpu.ColorTargetState {
	return wgpu.ColorTargetState{
		Format:    format,
		Blend:     m.BlendState(),
		WriteMask: m.ColorWriteMask(),
	}
}

// DepthStencilState returns the depth/stencil descriptor for the material,
// or nil when the material neither tests nor writes depth and has no
// stencil configuration. Depth testing uses less-equal so coplanar
// geometry from the same mesh does not flicker. wgpu carries a single
// read/write mask pair for both faces, so when the front and back stencil
// blocks disagree on masks the front block's masks win.
func (m *Material) DepthStencilState(format wgpu.TextureFormat) *wgpu.DepthStencilState {
	if !m.DepthTest && !m.DepthWrite && m.StencilFront == nil && m.StencilBack == nil {
		return nil
	}
	compare := wgpu.CompareFunctionAlways
	if m.DepthTest {
		compare = wgpu.CompareFunctionLessEqual
	}
	ds := &wgpu.DepthStencilState{
		Format:              format,
		DepthWriteEnabled:   m.DepthWrite,
		DepthCompare:        compare,
		StencilFront:        m.StencilFront.faceState(),
		StencilBack:         m.StencilBack.faceState(),
		StencilReadMask:     0xFF,
		StencilWriteMask:    0xFF,
		DepthBias:           int32(m.DepthBias),
		DepthBiasSlopeScale: m.SlopeDepthBias,
	}
	if m.StencilFront != nil {
		ds.StencilReadMask = m.StencilFront.ReadMask
		ds.StencilWriteMask = m.StencilFront.WriteMask
	} else if m.StencilBack != nil {
		ds.StencilReadMask = m.StencilBack.ReadMask
		ds.StencilWriteMask = m.StencilBack.WriteMask
	}
	return ds
}

// PrimitiveState returns the primitive descriptor with the material's cull
// mode applied.
func (m *Material) PrimitiveState(topology wgpu.PrimitiveTopology) wgpu.PrimitiveState {
	return wgpu.PrimitiveState{
		Topology:  topology,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  m.Cull,
	}
}

// MultisampleState returns the multisample descriptor; alpha-to-coverage
// comes from the material, the sample count from the render target.
func (m *Material) MultisampleState(samples uint32) wgpu.MultisampleState {
	if samples == 0 {
		samples = 1
	}
	return wgpu.MultisampleState{
		Count:                  samples,
		Mask:                   0xFFFFFFFF,
		AlphaToCoverageEnabled: m.AlphaToCoverage,
	}
}

// PipelineConfig carries the non-material inputs of pipeline creation.
type PipelineConfig struct {
	Label       string
	Layout      *wgpu.PipelineLayout
	Buffers     []wgpu.VertexBufferLayout
	ColorFormat wgpu.TextureFormat
	// DepthFormat of the depth attachment; TextureFormatUndefined omits the
	// depth/stencil stage entirely.
	DepthFormat wgpu.TextureFormat
	Topology    wgpu.PrimitiveTopology
	Samples     uint32
}

// CreateRenderPipeline assembles the full render pipeline for the material
// using an already-compiled shader module with vs_main/fs_main entry
// points. Panics if the device rejects the descriptor.
func CreateRenderPipeline(device *wgpu.Device, m *Material, shader *wgpu.ShaderModule, cfg PipelineConfig) *wgpu.RenderPipeline {
	var depthStencil *wgpu.DepthStencilState
	if cfg.DepthFormat != wgpu.TextureFormatUndefined {
		depthStencil = m.DepthStencilState(cfg.DepthFormat)
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  cfg.Label,
		Layout: cfg.Layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    cfg.Buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				m.ColorTargetState(cfg.ColorFormat),
			},
		},
		Primitive:    m.PrimitiveState(cfg.Topology),
		DepthStencil: depthStencil,
		Multisample:  m.MultisampleState(cfg.Samples),
	})
	if err != nil {
		panic(err)
	}
	return pipeline
}
