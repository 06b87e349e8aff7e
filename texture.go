package gmat

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// AssetId identifies a texture asset.
type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// Texture is an RGBA8 texture asset referenced by material parameters.
// Texel data lives CPU-side until Upload creates the GPU view.
type Texture struct {
	id     AssetId
	Name   string
	width  uint32
	height uint32
	format wgpu.TextureFormat
	texels []uint8

	view *wgpu.TextureView
}

// NewTexture wraps raw RGBA8 texels as a texture asset.
func NewTexture(name string, width, height uint32, texels []uint8) *Texture {
	return &Texture{
		id:     makeAssetId(),
		Name:   name,
		width:  width,
		height: height,
		format: wgpu.TextureFormatRGBA8Unorm,
		texels: texels,
	}
}

// LoadTexture reads a PNG file and converts it to an RGBA8 texture,
// rescaling to power-of-two dimensions when needed.
func LoadTexture(filename string) (*Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}

	bounds := img.Bounds()
	w := nextPow2(uint32(bounds.Dx()))
	h := nextPow2(uint32(bounds.Dy()))

	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if int(w) == bounds.Dx() && int(h) == bounds.Dy() {
		draw.Copy(rgba, image.Point{}, img, bounds, draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	}

	t := NewTexture(filename, w, h, rgba.Pix)
	return t, nil
}

func nextPow2(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	p := uint32(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Id returns the texture's asset id.
func (t *Texture) Id() AssetId { return t.id }

// Width returns the texel width.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texel height.
func (t *Texture) Height() uint32 { return t.height }

// Format returns the texel format.
func (t *Texture) Format() wgpu.TextureFormat { return t.format }

// View returns the GPU texture view, or nil before Upload.
func (t *Texture) View() *wgpu.TextureView { return t.view }

// Upload creates the GPU texture, writes the texels and memoizes the view.
func (t *Texture) Upload(device *wgpu.Device, queue *wgpu.Queue) (*wgpu.TextureView, error) {
	if t.view != nil {
		return t.view, nil
	}

	extent := wgpu.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}
	texture, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         t.Name,
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        t.format,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", t.Name, err)
	}
	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", t.Name, err)
	}

	err = queue.WriteTexture(
		texture.AsImageCopy(),
		wgpu.ToBytes(t.texels),
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  t.width * 4,
			RowsPerImage: t.height,
		},
		&extent,
	)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", t.Name, err)
	}

	t.view = view
	return view, nil
}
