// Package reference implements binary morphology on plain pixel grids.
//
// It is deliberately naive: every output pixel scans the whole kernel
// window. It serves as the test oracle for the run-length engine and as
// the baseline the CLI and benchmarks compare against.
package reference

// Grid is a row-major binary image. Nonzero bytes are foreground.
type Grid struct {
	W, H int
	Pix  []uint8
}

// NewGrid returns an all-background grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Outside describes the pixels beyond the grid edges.
type Outside int

const (
	// Skip leaves outside pixels out of the window.
	Skip Outside = iota
	// Background treats outside pixels as background.
	Background
	// Foreground treats outside pixels as foreground.
	Foreground
)

// Dilate sets a pixel when any pixel of its window is set.
func Dilate(g *Grid, hx, hy int, out Outside) *Grid {
	return apply(g, hx, hy, out, true)
}

// Erode keeps a pixel when every pixel of its window is set.
func Erode(g *Grid, hx, hy int, out Outside) *Grid {
	return apply(g, hx, hy, out, false)
}

func apply(g *Grid, hx, hy int, out Outside, any bool) *Grid {
	res := NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			hit := !any
			for dy := -hy; dy <= hy && hit != any; dy++ {
				for dx := -hx; dx <= hx; dx++ {
					v, ok := g.at(x+dx, y+dy, out)
					if !ok {
						continue
					}
					if v == any {
						hit = any
						break
					}
				}
			}
			if hit {
				res.Pix[y*g.W+x] = 1
			}
		}
	}
	return res
}

// at returns the pixel at (x, y) and whether it takes part in the window.
func (g *Grid) at(x, y int, out Outside) (bool, bool) {
	if x >= 0 && x < g.W && y >= 0 && y < g.H {
		return g.Pix[y*g.W+x] != 0, true
	}
	switch out {
	case Background:
		return false, true
	case Foreground:
		return true, true
	default:
		return false, false
	}
}

// Invert flips every pixel in place.
func (g *Grid) Invert() {
	for i, v := range g.Pix {
		if v != 0 {
			g.Pix[i] = 0
		} else {
			g.Pix[i] = 1
		}
	}
}

// Equal reports whether g and o have the same size and foreground pixels.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.Pix {
		if (v != 0) != (o.Pix[i] != 0) {
			return false
		}
	}
	return true
}
