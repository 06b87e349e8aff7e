package gmat

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformRange is one named span inside a uniform buffer, in bytes.
// Values submitted to the range are clamped to Size: a value encoding to
// more bytes than the range holds has its tail dropped.
type UniformRange struct {
	Offset uint64
	Size   uint64
}

// BufferBinder is the wgpu-backed UniformResolver: parameter names map to
// ranges of a single uniform buffer and submits become queue writes.
// Texture-valued parameters are not buffer-backed and resolve to nil; the
// renderer binds those through bind groups.
type BufferBinder struct {
	queue  *wgpu.Queue
	buffer *wgpu.Buffer
	layout map[string]UniformRange
}

var _ UniformResolver = (*BufferBinder)(nil)

// NewBufferBinder creates the uniform buffer sized to cover every range in
// layout (rounded up to 16 bytes, the uniform alignment).
func NewBufferBinder(device *wgpu.Device, queue *wgpu.Queue, label string, layout map[string]UniformRange) (*BufferBinder, error) {
	var size uint64
	for _, r := range layout {
		if end := r.Offset + r.Size; end > size {
			size = end
		}
	}
	if size == 0 {
		return nil, fmt.Errorf("uniform binder %q: empty layout", label)
	}
	size = (size + 15) &^ 15

	buffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("uniform binder %q: %w", label, err)
	}
	return &BufferBinder{
		queue:  queue,
		buffer: buffer,
		layout: layout,
	}, nil
}

// Buffer returns the underlying uniform buffer for bind group creation.
func (b *BufferBinder) Buffer() *wgpu.Buffer { return b.buffer }

// Resolve returns the binding for name, or nil when the layout has no such
// range. Repeated resolution of the same name yields equivalent bindings.
func (b *BufferBinder) Resolve(name string) UniformBinding {
	r, ok := b.layout[name]
	if !ok {
		return nil
	}
	return &bufferBinding{binder: b, name: name, rng: r}
}

// Release frees the uniform buffer.
func (b *BufferBinder) Release() {
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}

type bufferBinding struct {
	binder *BufferBinder
	name   string
	rng    UniformRange
}

func (u *bufferBinding) SetValue(value any) {
	data := uniformBytes(value)
	if data == nil {
		return
	}
	if uint64(len(data)) > u.rng.Size {
		data = data[:u.rng.Size]
	}
	_ = u.binder.queue.WriteBuffer(u.binder.buffer, u.rng.Offset, data)
}

// uniformBytes encodes a parameter value for upload. Unsupported values
// (textures included) encode to nil and are skipped by the binder.
func uniformBytes(value any) []byte {
	switch v := value.(type) {
	case float32:
		return wgpu.ToBytes([]float32{v})
	case float64:
		return wgpu.ToBytes([]float32{float32(v)})
	case int32:
		return wgpu.ToBytes([]int32{v})
	case int:
		return wgpu.ToBytes([]int32{int32(v)})
	case uint32:
		return wgpu.ToBytes([]uint32{v})
	case bool:
		b := uint32(0)
		if v {
			b = 1
		}
		return wgpu.ToBytes([]uint32{b})
	case mgl32.Vec2:
		return wgpu.ToBytes(v[:])
	case mgl32.Vec3:
		return wgpu.ToBytes(v[:])
	case mgl32.Vec4:
		return wgpu.ToBytes(v[:])
	case mgl32.Mat4:
		return wgpu.ToBytes(v[:])
	case []float32:
		return wgpu.ToBytes(v)
	default:
		return nil
	}
}
