package gmat

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// BlendPreset names a predefined combination of blend enable flag,
// source/destination factors and blend equation.
type BlendPreset int

const (
	BlendNone BlendPreset = iota
	BlendNormal
	BlendPremultiplied
	BlendAdditive
	BlendAdditiveAlpha
	BlendMultiplicative2x
	BlendScreen
	BlendMultiplicative
	BlendMin
	BlendMax
)

func (p BlendPreset) String() string {
	switch p {
	case BlendNone:
		return "none"
	case BlendNormal:
		return "normal"
	case BlendPremultiplied:
		return "premultiplied"
	case BlendAdditive:
		return "additive"
	case BlendAdditiveAlpha:
		return "additive-alpha"
	case BlendMultiplicative2x:
		return "multiplicative-2x"
	case BlendScreen:
		return "screen"
	case BlendMultiplicative:
		return "multiplicative"
	case BlendMin:
		return "min"
	case BlendMax:
		return "max"
	}
	return "unknown"
}

type blendTuple struct {
	preset  BlendPreset
	enabled bool
	src     wgpu.BlendFactor
	dst     wgpu.BlendFactor
	op      wgpu.BlendOperation
}

// blendPresets drives both directions of the preset codec. Decoding walks
// the table in order and takes the first matching row, so keep the rows in
// this order.
var blendPresets = []blendTuple{
	{BlendNone, false, wgpu.BlendFactorOne, wgpu.BlendFactorZero, wgpu.BlendOperationAdd},
	{BlendNormal, true, wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOneMinusSrcAlpha, wgpu.BlendOperationAdd},
	{BlendPremultiplied, true, wgpu.BlendFactorOne, wgpu.BlendFactorOneMinusSrcAlpha, wgpu.BlendOperationAdd},
	{BlendAdditive, true, wgpu.BlendFactorOne, wgpu.BlendFactorOne, wgpu.BlendOperationAdd},
	{BlendAdditiveAlpha, true, wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOne, wgpu.BlendOperationAdd},
	{BlendMultiplicative2x, true, wgpu.BlendFactorDst, wgpu.BlendFactorSrc, wgpu.BlendOperationAdd},
	{BlendScreen, true, wgpu.BlendFactorOneMinusDst, wgpu.BlendFactorOne, wgpu.BlendOperationAdd},
	{BlendMultiplicative, true, wgpu.BlendFactorDst, wgpu.BlendFactorZero, wgpu.BlendOperationAdd},
	{BlendMin, true, wgpu.BlendFactorOne, wgpu.BlendFactorOne, wgpu.BlendOperationMin},
	{BlendMax, true, wgpu.BlendFactorOne, wgpu.BlendFactorOne, wgpu.BlendOperationMax},
}

// Preset decodes the material's current blend configuration back to a
// preset. A configuration that matches none of the known tuples decodes to
// BlendNormal; custom blend functions are reported as plain alpha blending
// rather than an error.
func (m *Material) Preset() BlendPreset {
	for _, t := range blendPresets {
		if t.enabled == m.blend && t.src == m.blendSrc && t.dst == m.blendDst && t.op == m.blendEq {
			return t.preset
		}
	}
	return BlendNormal
}

// ApplyPreset overwrites the blend enable flag, factors and equation with
// the tuple for p, leaving every other render state field untouched. If the
// enable flag changes value the blend-dirty signal is raised (on the scene
// when one is attached, locally otherwise). Consumer sort keys are
// recomputed unconditionally, since factor and equation changes feed key
// derivation too. An unknown preset value is ignored.
func (m *Material) ApplyPreset(p BlendPreset) {
	for _, t := range blendPresets {
		if t.preset != p {
			continue
		}
		if m.blend != t.enabled {
			m.blend = t.enabled
			m.markBlendDirty()
		}
		m.blendSrc = t.src
		m.blendDst = t.dst
		m.blendEq = t.op
		m.invalidateSortKeys()
		return
	}
}

// BlendEnabled reports whether blending is on.
func (m *Material) BlendEnabled() bool { return m.blend }

// SetBlending switches blending on or off. A transition raises the
// blend-dirty signal and recomputes consumer sort keys.
func (m *Material) SetBlending(enabled bool) {
	if m.blend == enabled {
		return
	}
	m.blend = enabled
	m.markBlendDirty()
	m.invalidateSortKeys()
}

// BlendFunction returns the source and destination blend factors.
func (m *Material) BlendFunction() (src, dst wgpu.BlendFactor) {
	return m.blendSrc, m.blendDst
}

// SetBlendFunction sets the source and destination blend factors and
// recomputes consumer sort keys.
func (m *Material) SetBlendFunction(src, dst wgpu.BlendFactor) {
	m.blendSrc = src
	m.blendDst = dst
	m.invalidateSortKeys()
}

// BlendEquation returns the blend equation.
func (m *Material) BlendEquation() wgpu.BlendOperation { return m.blendEq }

// SetBlendEquation sets the blend equation and recomputes consumer sort
// keys.
func (m *Material) SetBlendEquation(op wgpu.BlendOperation) {
	m.blendEq = op
	m.invalidateSortKeys()
}
