package rlemorph

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/rlemorph/internal/reference"
)

// Test helpers shared across the package tests.

// parseImage builds an image from rows drawn with '#' for foreground.
func parseImage(t testing.TB, rows ...string) *Image {
	t.Helper()
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	bm := NewBitmap(w, len(rows))
	for y, s := range rows {
		if len(s) != w {
			t.Fatalf("parseImage: row %d has %d columns, want %d", y, len(s), w)
		}
		for x := range len(s) {
			bm.Set(x, y, s[x] == '#')
		}
	}
	return Encode(bm)
}

// randomBitmap draws a few rectangles and sprinkles noise over them, which
// gives both long runs and isolated pixels.
func randomBitmap(rng *rand.Rand, w, h int) *Bitmap {
	bm := NewBitmap(w, h)
	if w == 0 || h == 0 {
		return bm
	}
	for range 1 + rng.IntN(4) {
		x0, y0 := rng.IntN(w), rng.IntN(h)
		x1, y1 := min(w, x0+1+rng.IntN(w/2+1)), min(h, y0+1+rng.IntN(h/2+1))
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				bm.Set(x, y, true)
			}
		}
	}
	for range w * h / 8 {
		bm.Set(rng.IntN(w), rng.IntN(h), rng.IntN(2) == 0)
	}
	return bm
}

// randomRow returns a random canonical row of the given width.
func randomRow(rng *rand.Rand, width int) Row {
	px := make([]uint8, width)
	for i := range px {
		if rng.IntN(3) == 0 {
			px[i] = 1
		}
	}
	r, _ := EncodeRow(px, width)
	return r
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func toGrid(img *Image) *reference.Grid {
	bm := img.Bitmap()
	return &reference.Grid{W: bm.Width(), H: bm.Height(), Pix: bm.Data()}
}

func fromGrid(t testing.TB, g *reference.Grid) *Image {
	t.Helper()
	bm, err := NewBitmapFromData(g.W, g.H, g.Pix)
	if err != nil {
		t.Fatalf("NewBitmapFromData() = %v", err)
	}
	return Encode(bm)
}

func referenceOutside(b Boundary) reference.Outside {
	switch b {
	case BoundaryBackground:
		return reference.Background
	case BoundaryForeground:
		return reference.Foreground
	default:
		return reference.Skip
	}
}

// assertCanonical fails the test if any row of img is not canonical.
func assertCanonical(t testing.TB, img *Image) {
	t.Helper()
	if err := img.Validate(); err != nil {
		t.Fatalf("Validate() = %v\n%s", err, img)
	}
}

func assertImage(t testing.TB, got, want *Image) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("image mismatch\ngot:\n%swant:\n%s", got, want)
	}
}

// subset reports whether every foreground pixel of a is set in b.
func subset(a, b *Image) bool {
	for y := range a.Height() {
		for x := range a.Width() {
			if a.At(x, y) && !b.At(x, y) {
				return false
			}
		}
	}
	return true
}

var allBoundaries = []Boundary{BoundaryTruncate, BoundaryBackground, BoundaryForeground}
