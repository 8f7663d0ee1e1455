package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"vr-overlay/internal/vr"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

// quad returns a 2×2 image: red green on the top row, blue white below.
func quad() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, green)
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 1, white)
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTexture_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.PNG")
	writePNG(t, path, quad())

	img, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, green, img.NRGBAAt(1, 0))
}

func TestLoadTexture_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, quad()))
	require.NoError(t, f.Close())

	img, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, blue, img.NRGBAAt(0, 1))
}

func TestLoadTexture_TGA(t *testing.T) {
	// Uncompressed 32-bit true-color, 2×1, BGRA pixels: red then blue.
	header := []byte{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 1, 0, 32, 0x28}
	pixels := []byte{0, 0, 255, 255, 255, 0, 0, 255}
	path := filepath.Join(t.TempDir(), "a.tga")
	require.NoError(t, os.WriteFile(path, append(header, pixels...), 0644))

	img, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, blue, img.NRGBAAt(1, 0))
}

func TestLoadTexture_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTexture(filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = LoadTexture(filepath.Join(dir, "a.psd"))
	assert.ErrorContains(t, err, "unknown extension")
	assert.False(t, Supported("a.psd"))
	assert.True(t, Supported("A.WebP"))

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0644))
	_, err = LoadTexture(corrupt)
	assert.ErrorContains(t, err, "texture: decode")
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestToNRGBA_RebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, red)

	dst := toNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 1), dst.Bounds())
	assert.Equal(t, red, dst.NRGBAAt(0, 0))
}

func TestCache_ReusesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	writePNG(t, path, quad())
	c := NewCache()

	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())

	img := quad()
	img.SetNRGBA(0, 0, white)
	writePNG(t, path, img)
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	third, err := c.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, white, third.NRGBAAt(0, 0))
}

func TestCache_FailureNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	c := NewCache()

	_, err := c.Load(path)
	require.Error(t, err)
	assert.Zero(t, c.Len())

	writePNG(t, path, quad())
	_, err = c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestApplyBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds vr.TextureBounds
		want   [][]color.NRGBA
	}{
		{"identity", vr.TextureBounds{UMin: 0, VMin: 0, UMax: 1, VMax: 1}, [][]color.NRGBA{{red, green}, {blue, white}}},
		{"vertical flip", vr.TextureBounds{UMin: 0, VMin: 1, UMax: 1, VMax: 0}, [][]color.NRGBA{{blue, white}, {red, green}}},
		{"horizontal flip", vr.TextureBounds{UMin: 1, VMin: 0, UMax: 0, VMax: 1}, [][]color.NRGBA{{green, red}, {white, blue}}},
		{"right half", vr.TextureBounds{UMin: 0.5, VMin: 0, UMax: 1, VMax: 1}, [][]color.NRGBA{{green}, {white}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyBounds(quad(), tt.bounds)
			require.Equal(t, len(tt.want), got.Bounds().Dy())
			for y, row := range tt.want {
				require.Equal(t, len(row), got.Bounds().Dx())
				for x, c := range row {
					assert.Equal(t, c, got.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestApplyBounds_EmptySelection(t *testing.T) {
	got := ApplyBounds(quad(), vr.TextureBounds{UMin: 0.5, VMin: 0, UMax: 0.5, VMax: 1})
	assert.True(t, got.Bounds().Empty())
}

func TestWritePreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preview.webp")
	require.NoError(t, WritePreview(path, quad()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := webp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestWritePreview_Downscales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.webp")
	require.NoError(t, WritePreview(path, image.NewNRGBA(image.Rect(0, 0, 1024, 256))))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := webp.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, PreviewMaxSize, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestWritePreview_Empty(t *testing.T) {
	err := WritePreview(filepath.Join(t.TempDir(), "x.webp"), image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}
