package rlemorph

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Bitmap is a binary pixel grid with one byte per pixel.
// Zero is background; any other value is foreground.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// NewBitmap creates an all-background bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewBitmapFromData wraps data, laid out row by row, as a bitmap.
// The slice is used directly, not copied.
func NewBitmapFromData(width, height int, data []uint8) (*Bitmap, error) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d bitmap", ErrDimensionMismatch, len(data), width, height)
	}
	return &Bitmap{width: width, height: height, data: data}, nil
}

// NewBitmapFromImage thresholds img: a pixel is foreground when its gray
// level is strictly greater than threshold.
func NewBitmapFromImage(img image.Image, threshold uint8) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := NewBitmap(w, h)

	// Fast path for already-gray images, which is what the CLI usually feeds.
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			src := gray.Pix[y*gray.Stride : y*gray.Stride+w]
			dst := b.data[y*w : (y+1)*w]
			for x, v := range src {
				if v > threshold {
					dst[x] = 1
				}
			}
		}
		return b
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			if c.Y > threshold {
				b.data[y*w+x] = 1
			}
		}
	}
	return b
}

// Bounds returns the bitmap dimensions as an image.Rectangle.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Width returns the bitmap width.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height.
func (b *Bitmap) Height() int { return b.height }

// At reports whether (x, y) is foreground.
// Coordinates outside the bitmap are background.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.data[y*b.width+x] != 0
}

// Set sets the pixel at (x, y). Coordinates outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	var v uint8
	if on {
		v = 1
	}
	b.data[y*b.width+x] = v
}

// Row returns the pixels of row y. The slice aliases the bitmap.
func (b *Bitmap) Row(y int) []uint8 {
	return b.data[y*b.width : (y+1)*b.width]
}

// Invert flips every pixel.
func (b *Bitmap) Invert() {
	for i, v := range b.data {
		if v != 0 {
			b.data[i] = 0
		} else {
			b.data[i] = 1
		}
	}
}

// Clone creates a copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	c := NewBitmap(b.width, b.height)
	copy(c.data, b.data)
	return c
}

// Equal reports whether b and o have the same size and foreground pixels.
// Different nonzero values compare equal.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, v := range b.data {
		if (v != 0) != (o.data[i] != 0) {
			return false
		}
	}
	return true
}

// Count returns the number of foreground pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Data returns the underlying pixel slice.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// Gray renders the bitmap as a gray image, foreground pixels set to on.
func (b *Bitmap) Gray(on uint8) *image.Gray {
	img := image.NewGray(b.Bounds())
	for y := 0; y < b.height; y++ {
		dst := img.Pix[y*img.Stride : y*img.Stride+b.width]
		for x, v := range b.Row(y) {
			if v != 0 {
				dst[x] = on
			}
		}
	}
	return img
}

func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for _, v := range b.Row(y) {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
