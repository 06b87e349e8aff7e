package gmat

// Scene is the owning aggregate materials attach to for dirty routing.
// When a material with a scene attached flips its blend enable flag, the
// signal lands here instead of on the material's local flag; the renderer
// consumes it once per frame to rebuild its blended draw list.
type Scene struct {
	Name string

	blendDirty bool
}

var _ BlendDirtySink = (*Scene)(nil)

func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// MarkBlendDirty records that some attached material changed its blend
// configuration.
func (s *Scene) MarkBlendDirty() { s.blendDirty = true }

// BlendDirty reports whether any attached material changed its blend
// configuration since the flag was last cleared.
func (s *Scene) BlendDirty() bool { return s.blendDirty }

// ClearBlendDirty lowers the flag after the renderer has reacted.
func (s *Scene) ClearBlendDirty() { s.blendDirty = false }
