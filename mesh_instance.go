package gmat

// MeshInstance is a draw-call consumer of a material. Instances manage
// their own membership in the material's consumer list; the material only
// walks that list to recompute sort keys, clear cached variant slots and
// redirect instances when it is destroyed.
type MeshInstance struct {
	material *Material
	sortKey  uint64

	// Per-pass cached shader variants, cleared by the material whenever its
	// variant cache is invalidated.
	variantSlots []*ShaderProgram
}

// NewMeshInstance creates an instance attached to m.
func NewMeshInstance(m *Material) *MeshInstance {
	mi := &MeshInstance{}
	mi.SetMaterial(m)
	return mi
}

// Material returns the instance's current material.
func (mi *MeshInstance) Material() *Material { return mi.material }

// SetMaterial moves the instance to a new material, updating both consumer
// lists, dropping cached variant slots and recomputing the sort key.
// Passing nil just detaches.
func (mi *MeshInstance) SetMaterial(m *Material) {
	if mi.material != nil {
		mi.material.detach(mi)
	}
	mi.material = m
	mi.clearVariantSlots()
	if m == nil {
		mi.sortKey = 0
		return
	}
	m.attach(mi)
	mi.RecomputeSortKey()
}

// SortKey returns the draw-ordering key derived from the material.
func (mi *MeshInstance) SortKey() uint64 { return mi.sortKey }

// RecomputeSortKey rederives the sort key from the material's blend state
// and identity. Blended surfaces sort after opaque ones, so the blend bit
// occupies the top of the key; the material id below it groups draws that
// share state.
func (mi *MeshInstance) RecomputeSortKey() {
	if mi.material == nil {
		mi.sortKey = 0
		return
	}
	var key uint64
	if mi.material.BlendEnabled() {
		key = 1 << 63
	}
	key |= uint64(mi.material.Id()) & (1<<63 - 1)
	mi.sortKey = key
}

// VariantSlot returns the cached shader variant for a render pass index,
// or nil when none is cached.
func (mi *MeshInstance) VariantSlot(pass int) *ShaderProgram {
	if pass < 0 || pass >= len(mi.variantSlots) {
		return nil
	}
	return mi.variantSlots[pass]
}

// SetVariantSlot caches a shader variant for a render pass index, growing
// the slot array as needed.
func (mi *MeshInstance) SetVariantSlot(pass int, s *ShaderProgram) {
	if pass < 0 {
		return
	}
	for len(mi.variantSlots) <= pass {
		mi.variantSlots = append(mi.variantSlots, nil)
	}
	mi.variantSlots[pass] = s
}

func (mi *MeshInstance) clearVariantSlots() {
	for i := range mi.variantSlots {
		mi.variantSlots[i] = nil
	}
}
