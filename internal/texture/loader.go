package texture

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

type decodeFunc func(io.Reader) (image.Image, error)

// decoders maps lowercase file extensions to decoders. TGA has no magic
// bytes, so formats are chosen by extension rather than sniffed.
var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
}

// Supported reports whether path has an extension LoadTexture can decode.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// LoadTexture reads an image file and returns it as NRGBA.
// Errors from opening the file wrap the os error, so errors.Is(err, fs.ErrNotExist) works.
func LoadTexture(path string) (*image.NRGBA, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unknown extension: %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture: empty image: %s", path)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format with origin (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
