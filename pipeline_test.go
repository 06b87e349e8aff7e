package gmat

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestColorTargetStateOpaque(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	ct := m.ColorTargetState(wgpu.TextureFormatBGRA8Unorm)

	if ct.Blend != nil {
		t.Error("opaque material produced a blend state")
	}
	if ct.WriteMask != wgpu.ColorWriteMaskAll {
		t.Errorf("write mask = %v, want all", ct.WriteMask)
	}
	if ct.Format != wgpu.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v", ct.Format)
	}
}

func TestColorTargetStateNormalBlending(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.ApplyPreset(BlendNormal)
	ct := m.ColorTargetState(wgpu.TextureFormatBGRA8Unorm)

	if ct.Blend == nil {
		t.Fatal("no blend state for blended material")
	}
	want := wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
	}
	if ct.Blend.Color != want {
		t.Errorf("color component = %+v", ct.Blend.Color)
	}
	if ct.Blend.Alpha != want {
		t.Errorf("alpha component should mirror color, got %+v", ct.Blend.Alpha)
	}
}

func TestColorTargetStateSeparateAlpha(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.ApplyPreset(BlendNormal)
	m.SeparateAlphaBlend = true
	m.BlendSrcAlpha = wgpu.BlendFactorOne
	m.BlendDstAlpha = wgpu.BlendFactorOneMinusSrcAlpha
	m.BlendAlphaEquation = wgpu.BlendOperationAdd

	ct := m.ColorTargetState(wgpu.TextureFormatBGRA8Unorm)
	if ct.Blend.Alpha.SrcFactor != wgpu.BlendFactorOne {
		t.Errorf("alpha src = %v, want one", ct.Blend.Alpha.SrcFactor)
	}
	if ct.Blend.Color.SrcFactor != wgpu.BlendFactorSrcAlpha {
		t.Errorf("color src = %v", ct.Blend.Color.SrcFactor)
	}
}

func TestColorWriteMaskChannels(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.GreenWrite = false
	m.AlphaWrite = false
	mask := m.ColorWriteMask()
	if mask&wgpu.ColorWriteMaskGreen != 0 || mask&wgpu.ColorWriteMaskAlpha != 0 {
		t.Errorf("disabled channels present in mask %v", mask)
	}
	if mask&wgpu.ColorWriteMaskRed == 0 || mask&wgpu.ColorWriteMaskBlue == 0 {
		t.Errorf("enabled channels missing from mask %v", mask)
	}
}

func TestDepthStencilStateDisabled(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.DepthTest = false
	m.DepthWrite = false
	if ds := m.DepthStencilState(wgpu.TextureFormatDepth24PlusStencil8); ds != nil {
		t.Errorf("depth/stencil state = %+v, want nil", ds)
	}
}

func TestDepthStencilStateDefaults(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.DepthBias = 2
	m.SlopeDepthBias = 1.5

	ds := m.DepthStencilState(wgpu.TextureFormatDepth24PlusStencil8)
	if ds == nil {
		t.Fatal("no depth/stencil state")
	}
	if !ds.DepthWriteEnabled {
		t.Error("depth write not enabled")
	}
	if ds.DepthCompare != wgpu.CompareFunctionLessEqual {
		t.Errorf("depth compare = %v", ds.DepthCompare)
	}
	if ds.DepthBias != 2 || ds.DepthBiasSlopeScale != 1.5 {
		t.Errorf("bias = %d/%v", ds.DepthBias, ds.DepthBiasSlopeScale)
	}
	if ds.StencilFront.Compare != wgpu.CompareFunctionAlways {
		t.Errorf("default stencil compare = %v", ds.StencilFront.Compare)
	}
	if ds.StencilFront.PassOp != wgpu.StencilOperationKeep {
		t.Errorf("default stencil pass op = %v", ds.StencilFront.PassOp)
	}
}

func TestDepthStencilStateFaces(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	front := NewStencilParams()
	front.PassOp = wgpu.StencilOperationIncrementWrap
	front.ReadMask = 0x0F
	front.WriteMask = 0xF0
	back := NewStencilParams()
	back.PassOp = wgpu.StencilOperationDecrementWrap
	m.StencilFront = front
	m.StencilBack = back

	ds := m.DepthStencilState(wgpu.TextureFormatDepth24PlusStencil8)
	if ds.StencilFront.PassOp != wgpu.StencilOperationIncrementWrap {
		t.Errorf("front pass op = %v", ds.StencilFront.PassOp)
	}
	if ds.StencilBack.PassOp != wgpu.StencilOperationDecrementWrap {
		t.Errorf("back pass op = %v", ds.StencilBack.PassOp)
	}
	if ds.StencilReadMask != 0x0F || ds.StencilWriteMask != 0xF0 {
		t.Errorf("masks = %#x/%#x", ds.StencilReadMask, ds.StencilWriteMask)
	}
}

func TestPrimitiveStateCull(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.Cull = wgpu.CullModeNone
	ps := m.PrimitiveState(wgpu.PrimitiveTopologyTriangleList)
	if ps.CullMode != wgpu.CullModeNone {
		t.Errorf("cull mode = %v", ps.CullMode)
	}
	if ps.Topology != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("topology = %v", ps.Topology)
	}
}

func TestMultisampleStateAlphaToCoverage(t *testing.T) {
	m := newTestRegistry().NewMaterial("m")
	m.AlphaToCoverage = true
	ms := m.MultisampleState(4)
	if ms.Count != 4 || !ms.AlphaToCoverageEnabled {
		t.Errorf("multisample = %+v", ms)
	}
	if ms := m.MultisampleState(0); ms.Count != 1 {
		t.Errorf("zero samples should clamp to 1, got %d", ms.Count)
	}
}
