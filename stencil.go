package gmat

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// StencilParams holds the stencil configuration for one face of rendered
// geometry. A Material may point its front and back faces at the same
// StencilParams object; Clone on the material keeps that aliasing intact.
type StencilParams struct {
	Compare     wgpu.CompareFunction
	Ref         uint32
	ReadMask    uint32
	WriteMask   uint32
	FailOp      wgpu.StencilOperation
	DepthFailOp wgpu.StencilOperation
	PassOp      wgpu.StencilOperation
}

// NewStencilParams returns stencil parameters that pass everything and
// write nothing back (compare always, all ops keep).
func NewStencilParams() *StencilParams {
	return &StencilParams{
		Compare:     wgpu.CompareFunctionAlways,
		Ref:         0,
		ReadMask:    0xFF,
		WriteMask:   0xFF,
		FailOp:      wgpu.StencilOperationKeep,
		DepthFailOp: wgpu.StencilOperationKeep,
		PassOp:      wgpu.StencilOperationKeep,
	}
}

// Clone returns an independent copy.
func (s *StencilParams) Clone() *StencilParams {
	c := *s
	return &c
}

func (s *StencilParams) faceState() wgpu.StencilFaceState {
	if s == nil {
		return wgpu.StencilFaceState{
			Compare:     wgpu.CompareFunctionAlways,
			FailOp:      wgpu.StencilOperationKeep,
			DepthFailOp: wgpu.StencilOperationKeep,
			PassOp:      wgpu.StencilOperationKeep,
		}
	}
	return wgpu.StencilFaceState{
		Compare:     s.Compare,
		FailOp:      s.FailOp,
		DepthFailOp: s.DepthFailOp,
		PassOp:      s.PassOp,
	}
}
