package rlemorph

import (
	"context"
	"log/slog"
	"time"
)

// aggregate is how the vertical pass combines the rows in the window.
type aggregate int

const (
	aggUnion aggregate = iota
	aggIntersect
)

// pass is one separable morphology pass over an image: a per-row
// horizontal step followed by a sliding vertical window.
type pass struct {
	src      *Image
	hx, hy   int
	agg      aggregate
	boundary Boundary
	// frame holds the border columns that BoundaryForeground dilation
	// forces on in every row.
	frame []Run
}

func newPass(src *Image, k Kernel, agg aggregate, b Boundary) *pass {
	// Clamping keeps arithmetic in range for huge kernels and does not
	// change any result: a window larger than the image is already clipped.
	p := &pass{
		src:      src,
		hx:       min(k.HalfWidth, src.width),
		hy:       min(k.HalfHeight, src.height),
		agg:      agg,
		boundary: b,
	}
	if agg == aggUnion && b == BoundaryForeground && p.hx > 0 && src.width > 0 {
		p.frame = unionRuns(nil,
			[]Run{{Start: 0, End: p.hx}},
			[]Run{{Start: src.width - p.hx, End: src.width}})
	}
	return p
}

// horizontal appends the horizontally processed runs of row y to dst.
func (p *pass) horizontal(dst []Run, y int) []Run {
	runs := p.src.rows[y].Runs
	w := p.src.width
	if p.agg == aggIntersect {
		return contractRuns(dst, runs, p.hx, w, p.boundary != BoundaryBackground)
	}
	dst = expandRuns(dst, runs, p.hx, w)
	if len(p.frame) > 0 {
		return unionRuns(nil, dst, p.frame)
	}
	return dst
}

// threshold is the coverage a column needs to be foreground in the output.
func (p *pass) threshold(win *window) int {
	if p.agg == aggUnion {
		return 1
	}
	if p.boundary == BoundaryBackground {
		// Rows outside the image count as missing, so the window is never
		// complete near the top and bottom.
		return 2*p.hy + 1
	}
	return win.rows
}

// fullRow reports whether BoundaryForeground dilation sets all of row y
// because the window reaches outside the image.
func (p *pass) fullRow(y int) bool {
	return p.agg == aggUnion && p.boundary == BoundaryForeground && p.src.width > 0 &&
		(y < p.hy || y >= p.src.height-p.hy)
}

// band computes output rows [lo, hi). rowAt returns the horizontal result
// for a source row; each source row is requested exactly once.
func (p *pass) band(lo, hi int, out []Row, rowAt func(y int) []Run) {
	h, w := p.src.height, p.src.width
	// A ring of 2*hy+1 slots holds every row inside the window, so only
	// the window's rows are retained.
	n := min(2*p.hy+1, h)
	ring := make([][]Run, n)

	var win window
	top := max(0, lo-p.hy)
	next := top
	for y := lo; y < hi; y++ {
		for ; top < y-p.hy; top++ {
			win.remove(ring[top%n])
			ring[top%n] = nil
		}
		for ; next < h && next <= y+p.hy; next++ {
			r := rowAt(next)
			ring[next%n] = r
			win.add(r)
		}
		if p.fullRow(y) {
			out[y] = Row{Width: w, Runs: []Run{{Start: 0, End: w}}}
			continue
		}
		out[y] = Row{Width: w, Runs: win.collect(nil, p.threshold(&win))}
	}
}

func (p *pass) run(pool *Pool) *Image {
	h, w := p.src.height, p.src.width
	out := make([]Row, h)
	parallel := pool.usable(h)

	if p.hy == 0 {
		rows := func(lo, hi int) {
			for y := lo; y < hi; y++ {
				out[y] = Row{Width: w, Runs: p.horizontal(nil, y)}
			}
		}
		if parallel {
			pool.forBands(h, rows)
		} else {
			rows(0, h)
		}
		return &Image{width: w, height: h, rows: out}
	}

	if !parallel {
		p.band(0, h, out, func(y int) []Run { return p.horizontal(nil, y) })
		return &Image{width: w, height: h, rows: out}
	}

	// Materialise the horizontal pass so vertical bands can each prime
	// their own window from the rows above them.
	hrows := make([][]Run, h)
	pool.forBands(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			hrows[y] = p.horizontal(nil, y)
		}
	})
	pool.forBands(h, func(lo, hi int) {
		p.band(lo, hi, out, func(y int) []Run { return hrows[y] })
	})
	return &Image{width: w, height: h, rows: out}
}

// Dilate grows the foreground of img by the (2*hx+1) x (2*hy+1) rectangle.
// It returns an error wrapping ErrInvalidKernel if hx or hy is negative.
func Dilate(img *Image, hx, hy int, opts ...Option) (*Image, error) {
	k := Rect(hx, hy)
	if err := k.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	start := time.Now()
	out := dilate(img, k, o)
	logOp("dilate", img, out, k, o, start)
	return out, nil
}

func dilate(img *Image, k Kernel, o options) *Image {
	if k.IsIdentity() {
		return img.clone()
	}
	return newPass(img, k, aggUnion, o.boundary).run(o.pool)
}

// Erode shrinks the foreground of img by the (2*hx+1) x (2*hy+1) rectangle.
// It returns an error wrapping ErrInvalidKernel if hx or hy is negative.
//
// By default erosion is computed as Flip(Dilate(Flip(img))) with the dual
// boundary policy; WithDirectErosion selects the equivalent direct path.
func Erode(img *Image, hx, hy int, opts ...Option) (*Image, error) {
	k := Rect(hx, hy)
	if err := k.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	start := time.Now()
	out := erode(img, k, o)
	logOp("erode", img, out, k, o, start)
	return out, nil
}

func erode(img *Image, k Kernel, o options) *Image {
	if k.IsIdentity() {
		return img.clone()
	}
	if o.direct {
		return newPass(img, k, aggIntersect, o.boundary).run(o.pool)
	}
	dual := o
	dual.boundary = o.boundary.dual()
	return Flip(dilate(Flip(img), k, dual))
}

// Flip returns the complement of img: every background pixel becomes
// foreground and vice versa.
func Flip(img *Image) *Image {
	rows := make([]Row, img.height)
	for y, r := range img.rows {
		rows[y] = Row{Width: img.width, Runs: complementRuns(nil, r.Runs, img.width)}
	}
	return &Image{width: img.width, height: img.height, rows: rows}
}

// Open erodes then dilates img, removing foreground features smaller than
// the kernel while keeping the shape of larger ones.
func Open(img *Image, hx, hy int, opts ...Option) (*Image, error) {
	k := Rect(hx, hy)
	if err := k.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	start := time.Now()
	out := dilate(erode(img, k, o), k, o)
	logOp("open", img, out, k, o, start)
	return out, nil
}

// Close dilates then erodes img, filling background gaps smaller than the
// kernel.
func Close(img *Image, hx, hy int, opts ...Option) (*Image, error) {
	k := Rect(hx, hy)
	if err := k.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	start := time.Now()
	out := erode(dilate(img, k, o), k, o)
	logOp("close", img, out, k, o, start)
	return out, nil
}

// Hollow keeps only the pixels of img that erosion removes, leaving an
// outline of each object that is hx columns and hy rows thick.
func Hollow(img *Image, hx, hy int, opts ...Option) (*Image, error) {
	k := Rect(hx, hy)
	if err := k.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	start := time.Now()
	out := sub(img, erode(img, k, o))
	logOp("hollow", img, out, k, o, start)
	return out, nil
}

func (m *Image) clone() *Image {
	rows := make([]Row, m.height)
	for y, r := range m.rows {
		rows[y] = r.Clone()
	}
	return &Image{width: m.width, height: m.height, rows: rows}
}

func logOp(op string, in, out *Image, k Kernel, o options, start time.Time) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	workers := 1
	if o.pool.usable(in.height) {
		workers = o.pool.Workers()
	}
	l.Debug("rlemorph: "+op,
		"width", in.width,
		"height", in.height,
		"kernel", k.String(),
		"boundary", o.boundary.String(),
		"direct", o.direct,
		"workers", workers,
		"runs_in", in.NumRuns(),
		"runs_out", out.NumRuns(),
		"elapsed", time.Since(start))
}
