// Package gmat implements the material render-state model used by the
// renderer: fixed-function pipeline state (blend, depth, stencil, cull,
// write masks), the blend preset codec, per-material shader parameters with
// lazy uniform binding, and the invalidation fan-out that keeps dependent
// draw calls consistent when material state changes.
//
// Mutation is expected to come from a single update/render thread; the
// package does no internal locking.
package gmat

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// MaterialId is a process-unique material identifier. Ids are allocated by
// a MaterialRegistry, increase monotonically and are never reused.
type MaterialId uint64

// BlendDirtySink receives the blend-configuration-changed signal for
// materials attached to an owning aggregate. *Scene implements it.
type BlendDirtySink interface {
	MarkBlendDirty()
}

// Material owns the render state of a drawable surface.
//
// Enum-typed fields are not validated: callers may store out-of-domain
// values and the material passes them through to pipeline translation
// unchanged. Construct materials through a MaterialRegistry; the zero value
// is not usable.
type Material struct {
	id   MaterialId
	Name string

	AlphaTest       float32
	AlphaToCoverage bool

	RedWrite   bool
	GreenWrite bool
	BlueWrite  bool
	AlphaWrite bool

	Cull wgpu.CullMode

	DepthTest      bool
	DepthWrite     bool
	DepthBias      float32
	SlopeDepthBias float32

	blend    bool
	blendSrc wgpu.BlendFactor
	blendDst wgpu.BlendFactor
	blendEq  wgpu.BlendOperation

	// Alpha-side blend tuple, used only when SeparateAlphaBlend is set.
	SeparateAlphaBlend bool
	BlendSrcAlpha      wgpu.BlendFactor
	BlendDstAlpha      wgpu.BlendFactor
	BlendAlphaEquation wgpu.BlendOperation

	// StencilFront and StencilBack may point at the same object when both
	// faces use identical parameters; Clone preserves that aliasing.
	StencilFront *StencilParams
	StencilBack  *StencilParams

	shader   *ShaderProgram
	variants map[VariantKey]*ShaderProgram

	params map[string]*MaterialParam

	instances []*MeshInstance

	dirty      bool
	blendDirty bool
	scene      BlendDirtySink

	registry *MaterialRegistry
}

// Id returns the material's identifier, stable for its lifetime.
func (m *Material) Id() MaterialId { return m.id }

func (m *Material) String() string {
	return fmt.Sprintf("Material %d (%s)", m.id, m.Name)
}

// Shader returns the attached shader program, if any.
func (m *Material) Shader() *ShaderProgram { return m.shader }

// SetShader attaches a shader program. The material does not own the
// program; the previous one is not released.
func (m *Material) SetShader(s *ShaderProgram) { m.shader = s }

// Variant returns the cached shader permutation for key.
func (m *Material) Variant(key VariantKey) (*ShaderProgram, bool) {
	v, ok := m.variants[key]
	return v, ok
}

// SetVariant caches a shader permutation under key.
func (m *Material) SetVariant(key VariantKey, s *ShaderProgram) {
	if m.variants == nil {
		m.variants = make(map[VariantKey]*ShaderProgram)
	}
	m.variants[key] = s
}

// ClearVariants drops the whole variant cache and clears every consumer's
// cached variant slots. The cache is only ever invalidated as a unit.
func (m *Material) ClearVariants() {
	clear(m.variants)
	for _, mi := range m.snapshotInstances() {
		mi.clearVariantSlots()
	}
}

// Dirty reports whether material state changed since the renderer last
// applied it. New materials start dirty.
func (m *Material) Dirty() bool { return m.dirty }

// ClearDirty is called by the renderer after reapplying material state.
func (m *Material) ClearDirty() { m.dirty = false }

// BlendDirty reports the local blend-dirty flag. It is only raised while
// the material is not attached to a scene; with a scene attached the signal
// goes to the scene instead.
func (m *Material) BlendDirty() bool { return m.blendDirty }

// ClearBlendDirty lowers the local blend-dirty flag.
func (m *Material) ClearBlendDirty() { m.blendDirty = false }

// Scene returns the owning-scene sink, if any.
func (m *Material) Scene() BlendDirtySink { return m.scene }

// SetScene attaches the material to an owning scene, redirecting blend
// change signals to it. Pass nil to detach and route signals to the local
// flag again.
func (m *Material) SetScene(s BlendDirtySink) { m.scene = s }

func (m *Material) markBlendDirty() {
	if m.scene != nil {
		m.scene.MarkBlendDirty()
		return
	}
	m.blendDirty = true
}

// snapshotInstances copies the consumer list so fan-out survives consumers
// detaching (or being redirected) mid-iteration.
func (m *Material) snapshotInstances() []*MeshInstance {
	if len(m.instances) == 0 {
		return nil
	}
	snap := make([]*MeshInstance, len(m.instances))
	copy(snap, m.instances)
	return snap
}

func (m *Material) invalidateSortKeys() {
	for _, mi := range m.snapshotInstances() {
		mi.RecomputeSortKey()
	}
}

func (m *Material) attach(mi *MeshInstance) {
	m.instances = append(m.instances, mi)
}

func (m *Material) detach(mi *MeshInstance) {
	for i, cur := range m.instances {
		if cur == mi {
			m.instances = append(m.instances[:i], m.instances[i+1:]...)
			return
		}
	}
}

// Update marks the material dirty so the renderer reapplies its state, and
// clears the attached shader's compile-failed flag so compilation is
// retried. Calling it repeatedly is harmless.
func (m *Material) Update() {
	m.dirty = true
	if m.shader != nil {
		m.shader.clearCompileFailure()
	}
}

// Clone returns a new material with the same render state. The stencil
// front/back aliasing of the source is preserved, the shader reference is
// shared, and the clone starts with an empty parameter table, variant cache
// and consumer list. The clone is not attached to a scene. Cloning a
// destroyed material is undefined.
func (m *Material) Clone() *Material {
	c := m.registry.NewMaterial(m.Name)
	c.copyStateFrom(m)
	return c
}

func (m *Material) copyStateFrom(src *Material) {
	m.AlphaTest = src.AlphaTest
	m.AlphaToCoverage = src.AlphaToCoverage
	m.RedWrite = src.RedWrite
	m.GreenWrite = src.GreenWrite
	m.BlueWrite = src.BlueWrite
	m.AlphaWrite = src.AlphaWrite
	m.Cull = src.Cull
	m.DepthTest = src.DepthTest
	m.DepthWrite = src.DepthWrite
	m.DepthBias = src.DepthBias
	m.SlopeDepthBias = src.SlopeDepthBias
	m.blend = src.blend
	m.blendSrc = src.blendSrc
	m.blendDst = src.blendDst
	m.blendEq = src.blendEq
	m.SeparateAlphaBlend = src.SeparateAlphaBlend
	m.BlendSrcAlpha = src.BlendSrcAlpha
	m.BlendDstAlpha = src.BlendDstAlpha
	m.BlendAlphaEquation = src.BlendAlphaEquation

	m.StencilFront = nil
	m.StencilBack = nil
	if src.StencilFront != nil {
		m.StencilFront = src.StencilFront.Clone()
	}
	if src.StencilBack != nil {
		if src.StencilBack == src.StencilFront {
			m.StencilBack = m.StencilFront
		} else {
			m.StencilBack = src.StencilBack.Clone()
		}
	}

	m.shader = src.shader
}

// Destroy releases the material: the variant cache and parameter table are
// dropped, the shader reference is cleared, and every consumer still
// referencing the material is redirected to the registry's fallback
// material. Destroying the fallback material itself leaves its consumers in
// place. Destroying twice is a no-op.
func (m *Material) Destroy() {
	clear(m.variants)
	m.shader = nil
	clear(m.params)

	// Consumer slots cache entries of the dropped variant cache; clear them
	// even when the consumers themselves stay attached (fallback case).
	snap := m.snapshotInstances()
	for _, mi := range snap {
		mi.clearVariantSlots()
	}

	fallback := m.registry.Fallback()
	if fallback == m || fallback == nil {
		return
	}
	redirected := 0
	for _, mi := range snap {
		mi.SetMaterial(fallback)
		redirected++
	}
	m.instances = nil
	if redirected > 0 {
		m.registry.log.Debugf("%v destroyed, %d instances moved to fallback", m, redirected)
	}
}
