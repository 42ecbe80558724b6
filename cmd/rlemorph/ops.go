package main

import (
	"fmt"

	"github.com/gogpu/rlemorph"
	"github.com/gogpu/rlemorph/internal/reference"
)

type opFunc func(img *rlemorph.Image, hx, hy int, opts ...rlemorph.Option) (*rlemorph.Image, error)

var ops = map[string]opFunc{
	"dilate": rlemorph.Dilate,
	"erode":  rlemorph.Erode,
	"open":   rlemorph.Open,
	"close":  rlemorph.Close,
	"hollow": rlemorph.Hollow,
	"flip": func(img *rlemorph.Image, _, _ int, _ ...rlemorph.Option) (*rlemorph.Image, error) {
		return rlemorph.Flip(img), nil
	},
}

// aliases maps the single-letter selectors d and e to full names.
var aliases = map[string]string{
	"d": "dilate", "D": "dilate",
	"e": "erode", "E": "erode",
}

func lookupOp(name string) (opFunc, error) {
	if full, ok := aliases[name]; ok {
		name = full
	}
	fn, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	return fn, nil
}

func outside(b rlemorph.Boundary) reference.Outside {
	switch b {
	case rlemorph.BoundaryBackground:
		return reference.Background
	case rlemorph.BoundaryForeground:
		return reference.Foreground
	default:
		return reference.Skip
	}
}

// referenceOp runs the named operation on a pixel grid.
func referenceOp(name string, g *reference.Grid, hx, hy int, out reference.Outside) *reference.Grid {
	if full, ok := aliases[name]; ok {
		name = full
	}
	switch name {
	case "erode":
		return reference.Erode(g, hx, hy, out)
	case "open":
		return reference.Dilate(reference.Erode(g, hx, hy, out), hx, hy, out)
	case "close":
		return reference.Erode(reference.Dilate(g, hx, hy, out), hx, hy, out)
	case "hollow":
		eroded := reference.Erode(g, hx, hy, out)
		res := reference.NewGrid(g.W, g.H)
		for i, v := range g.Pix {
			if v != 0 && eroded.Pix[i] == 0 {
				res.Pix[i] = 1
			}
		}
		return res
	case "flip":
		res := &reference.Grid{W: g.W, H: g.H, Pix: append([]uint8(nil), g.Pix...)}
		res.Invert()
		return res
	default:
		return reference.Dilate(g, hx, hy, out)
	}
}
