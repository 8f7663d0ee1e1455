package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// PreviewMaxSize bounds the longer side of a written preview.
const PreviewMaxSize = 512

// WritePreview encodes img as lossless WebP at path, downscaling so the
// longer side is at most PreviewMaxSize. Parent directories are created.
func WritePreview(path string, img image.Image) error {
	if img.Bounds().Empty() {
		return fmt.Errorf("texture: preview %s: empty image", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("texture: preview %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: preview %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, fitPreview(img), nil); err != nil {
		return fmt.Errorf("texture: WebP encode %s: %w", path, err)
	}
	return f.Close()
}

func fitPreview(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= PreviewMaxSize && h <= PreviewMaxSize {
		return img
	}

	if w >= h {
		h = max(1, h*PreviewMaxSize/w)
		w = PreviewMaxSize
	} else {
		w = max(1, w*PreviewMaxSize/h)
		h = PreviewMaxSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
