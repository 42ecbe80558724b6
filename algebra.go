package rlemorph

// Run algebra on single rows. Every function here takes canonical rows and
// returns a new canonical row; inputs are never modified.

// Expand dilates r horizontally: each run [s,e) grows to
// [max(0,s-hx), min(Width,e+hx)) and runs that come to overlap or touch
// are merged. hx <= 0 returns a copy of r.
func Expand(r Row, hx int) Row {
	mustCanonical("Expand", r)
	if hx <= 0 {
		return r.Clone()
	}
	return Row{Width: r.Width, Runs: expandRuns(nil, r.Runs, hx, r.Width)}
}

func expandRuns(dst, runs []Run, hx, width int) []Run {
	for _, run := range runs {
		s, e := max(0, run.Start-hx), min(width, run.End+hx)
		if n := len(dst); n > 0 && dst[n-1].End >= s {
			// Starts stay sorted after a uniform shift, so only the last
			// output run can absorb the next one.
			dst[n-1].End = max(dst[n-1].End, e)
			continue
		}
		dst = append(dst, Run{Start: s, End: e})
	}
	return dst
}

// Contract erodes r horizontally: each run [s,e) shrinks to [s+hx, e-hx)
// and disappears when that is empty. Columns outside the row count as
// background. hx <= 0 returns a copy of r.
func Contract(r Row, hx int) Row {
	mustCanonical("Contract", r)
	if hx <= 0 {
		return r.Clone()
	}
	return Row{Width: r.Width, Runs: contractRuns(nil, r.Runs, hx, r.Width, false)}
}

// contractRuns shrinks runs by hx on both sides. With keepEdges set, columns
// outside [0,width) count as foreground, so a run touching an image edge
// does not shrink on that side.
func contractRuns(dst, runs []Run, hx, width int, keepEdges bool) []Run {
	for _, run := range runs {
		s, e := run.Start+hx, run.End-hx
		if keepEdges {
			if run.Start == 0 {
				s = 0
			}
			if run.End == width {
				e = width
			}
		}
		if s < e {
			dst = append(dst, Run{Start: s, End: e})
		}
	}
	return dst
}

// Complement returns the background runs of r as foreground runs.
func Complement(r Row) Row {
	mustCanonical("Complement", r)
	return Row{Width: r.Width, Runs: complementRuns(nil, r.Runs, r.Width)}
}

func complementRuns(dst, runs []Run, width int) []Run {
	x := 0
	for _, run := range runs {
		if run.Start > x {
			dst = append(dst, Run{Start: x, End: run.Start})
		}
		x = run.End
	}
	if x < width {
		dst = append(dst, Run{Start: x, End: width})
	}
	return dst
}

// UnionMany returns the pixels that are foreground in at least one row.
// The result has the width of the first row; all rows must share it.
func UnionMany(rows ...Row) Row {
	switch len(rows) {
	case 0:
		return Row{}
	case 1:
		mustCanonical("UnionMany", rows[0])
		return rows[0].Clone()
	}
	for _, r := range rows {
		mustCanonical("UnionMany", r)
	}
	// Pairwise reduction keeps every merge linear and the total cost at
	// O(n log k) for k rows holding n runs.
	level := make([][]Run, len(rows))
	for i, r := range rows {
		level[i] = r.Runs
	}
	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, unionRuns(nil, level[i], level[i+1]))
		}
		level = next
	}
	return Row{Width: rows[0].Width, Runs: level[0]}
}

// unionRuns merges two sorted run lists by start, coalescing runs that
// overlap or touch.
func unionRuns(dst, a, b []Run) []Run {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var next Run
		if j >= len(b) || (i < len(a) && a[i].Start <= b[j].Start) {
			next = a[i]
			i++
		} else {
			next = b[j]
			j++
		}
		if n := len(dst); n > 0 && dst[n-1].End >= next.Start {
			dst[n-1].End = max(dst[n-1].End, next.End)
			continue
		}
		dst = append(dst, next)
	}
	return dst
}

// IntersectMany returns the pixels that are foreground in every row.
// With no rows it returns the zero Row.
func IntersectMany(rows ...Row) Row {
	if len(rows) == 0 {
		return Row{}
	}
	for _, r := range rows {
		mustCanonical("IntersectMany", r)
	}
	acc := rows[0].Clone()
	for _, r := range rows[1:] {
		if len(acc.Runs) == 0 {
			break
		}
		acc.Runs = intersectRuns(nil, acc.Runs, r.Runs)
	}
	return acc
}

// intersectRuns walks both lists with two cursors, always advancing the
// run that ends first.
func intersectRuns(dst, a, b []Run) []Run {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		s, e := max(a[i].Start, b[j].Start), min(a[i].End, b[j].End)
		if s < e {
			dst = append(dst, Run{Start: s, End: e})
		}
		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}
	return dst
}

// Difference returns the pixels of a that are not set in b.
func Difference(a, b Row) Row {
	mustCanonical("Difference", a)
	mustCanonical("Difference", b)
	return Row{Width: a.Width, Runs: differenceRuns(nil, a.Runs, b.Runs)}
}

func differenceRuns(dst, a, b []Run) []Run {
	j := 0
	for _, run := range a {
		s := run.Start
		for j < len(b) && b[j].End <= s {
			j++
		}
		for k := j; k < len(b) && b[k].Start < run.End; k++ {
			if b[k].Start > s {
				dst = append(dst, Run{Start: s, End: b[k].Start})
			}
			s = max(s, b[k].End)
		}
		if s < run.End {
			dst = append(dst, Run{Start: s, End: run.End})
		}
	}
	return dst
}
