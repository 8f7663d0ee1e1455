package texture

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"vr-overlay/internal/vr"
)

// ApplyBounds returns the part of img selected by b, as the overlay would
// show it. Row 0 of img is v = 0. An axis whose min exceeds its max is
// flipped.
func ApplyBounds(img *image.NRGBA, b vr.TextureBounds) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	x0, x1, flipX := span(b.UMin, b.UMax, w)
	y0, y1, flipY := span(b.VMin, b.VMax, h)
	if x1 <= x0 || y1 <= y0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	src := img.Bounds().Min
	crop := image.Rect(src.X+x0, src.Y+y0, src.X+x1, src.Y+y1)
	out := image.NewNRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Copy(out, image.Point{}, img, crop, draw.Src, nil)

	if flipX {
		flipHorizontal(out)
	}
	if flipY {
		flipVertical(out)
	}
	return out
}

// span converts a texture coordinate range to a clamped pixel range.
func span(lo, hi float32, size int) (int, int, bool) {
	flip := lo > hi
	if flip {
		lo, hi = hi, lo
	}
	a := clampInt(int(math.Round(float64(lo)*float64(size))), 0, size)
	b := clampInt(int(math.Round(float64(hi)*float64(size))), 0, size)
	return a, b, flip
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func flipVertical(img *image.NRGBA) {
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

func flipHorizontal(img *image.NRGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w/2; x++ {
			l, r := x*4, (w-1-x)*4
			for k := 0; k < 4; k++ {
				row[l+k], row[r+k] = row[r+k], row[l+k]
			}
		}
	}
}
