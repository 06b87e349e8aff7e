package gmat

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// MaterialRegistry constructs materials and owns the id allocator and the
// fallback material that destroyed materials redirect their consumers to.
// Ids increase monotonically and are never reused.
type MaterialRegistry struct {
	nextId   MaterialId
	fallback *Material
	log      Logger
}

// NewMaterialRegistry creates a registry with its own fallback material
// named "Default". A nil logger disables logging.
func NewMaterialRegistry(log Logger) *MaterialRegistry {
	if log == nil {
		log = NewNopLogger()
	}
	r := &MaterialRegistry{log: log}
	r.fallback = r.NewMaterial("Default")
	return r
}

// NewMaterial constructs an active material with default render state:
// blending off (one/zero, add), all color channels written, back-face
// culling, depth test and write on, no stencil, no parameters. New
// materials start dirty so the renderer applies their state once. An empty
// name becomes "Untitled".
func (r *MaterialRegistry) NewMaterial(name string) *Material {
	if name == "" {
		name = "Untitled"
	}
	r.nextId++
	return &Material{
		id:   r.nextId,
		Name: name,

		RedWrite:   true,
		GreenWrite: true,
		BlueWrite:  true,
		AlphaWrite: true,

		Cull: wgpu.CullModeBack,

		DepthTest:  true,
		DepthWrite: true,

		blend:    false,
		blendSrc: wgpu.BlendFactorOne,
		blendDst: wgpu.BlendFactorZero,
		blendEq:  wgpu.BlendOperationAdd,

		BlendSrcAlpha:      wgpu.BlendFactorOne,
		BlendDstAlpha:      wgpu.BlendFactorZero,
		BlendAlphaEquation: wgpu.BlendOperationAdd,

		dirty:    true,
		registry: r,
	}
}

// Fallback returns the material consumers are redirected to on destroy.
func (r *MaterialRegistry) Fallback() *Material { return r.fallback }

// SetFallback designates a different fallback material. It must come from
// the same registry.
func (r *MaterialRegistry) SetFallback(m *Material) {
	if m == nil {
		return
	}
	r.fallback = m
}

// Logger returns the registry's logger.
func (r *MaterialRegistry) Logger() Logger { return r.log }
