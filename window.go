package rlemorph

// boundary is one entry of the window's sparse signed delta array: the
// number of window rows covering columns changes by delta at column x.
type boundary struct {
	x     int
	delta int
}

// window aggregates the rows currently inside a vertical kernel window.
//
// It stores the coverage count of every column as a sorted list of
// boundaries with non-zero deltas. The count at column x is the prefix sum
// of deltas at positions <= x. Adding or removing a row merges that row's
// run boundaries into the list, and boundaries whose deltas cancel are
// dropped, so the list only holds positions where coverage really changes.
// Cost per operation is linear in the list plus the row's runs and does not
// depend on how many rows the window holds.
type window struct {
	bounds  []boundary
	scratch []boundary
	rows    int
}

// add inserts a row's runs into the window.
func (w *window) add(runs []Run) {
	w.apply(runs, 1)
	w.rows++
}

// remove takes out a row previously passed to add.
func (w *window) remove(runs []Run) {
	w.apply(runs, -1)
	w.rows--
}

func (w *window) apply(runs []Run, d int) {
	if len(runs) == 0 {
		return
	}
	out := w.scratch[:0]
	cur := w.bounds
	i := 0
	merge := func(p boundary) {
		for i < len(cur) && cur[i].x < p.x {
			out = append(out, cur[i])
			i++
		}
		if i < len(cur) && cur[i].x == p.x {
			p.delta += cur[i].delta
			i++
		}
		if p.delta != 0 {
			out = append(out, p)
		}
	}
	// Canonical runs give strictly increasing boundary positions.
	for _, run := range runs {
		merge(boundary{x: run.Start, delta: d})
		merge(boundary{x: run.End, delta: -d})
	}
	out = append(out, cur[i:]...)
	w.bounds, w.scratch = out, cur[:0]
}

// collect appends to dst the maximal runs whose coverage is at least
// threshold. Threshold 1 yields the union of the window's rows; the
// number of rows in the window yields their intersection.
func (w *window) collect(dst []Run, threshold int) []Run {
	if threshold < 1 {
		threshold = 1
	}
	sum, open := 0, -1
	for _, b := range w.bounds {
		sum += b.delta
		if sum >= threshold {
			if open < 0 {
				open = b.x
			}
		} else if open >= 0 {
			dst = append(dst, Run{Start: open, End: b.x})
			open = -1
		}
	}
	// Deltas always balance to zero, so no run is left open here.
	return dst
}

// reset empties the window, keeping its buffers.
func (w *window) reset() {
	w.bounds = w.bounds[:0]
	w.scratch = w.scratch[:0]
	w.rows = 0
}

// size returns the number of stored boundaries.
func (w *window) size() int { return len(w.bounds) }
