package rlemorph

import (
	"fmt"
	"strings"
)

// Run is a half-open interval [Start, End) of foreground columns in one row.
type Run struct {
	Start int
	End   int
}

// Len returns the number of pixels covered by the run.
func (r Run) Len() int { return r.End - r.Start }

// Contains reports whether column x lies inside the run.
func (r Run) Contains(x int) bool { return x >= r.Start && x < r.End }

// Overlaps reports whether r and o share at least one column.
func (r Run) Overlaps(o Run) bool { return r.Start < o.End && o.Start < r.End }

// Touches reports whether r and o overlap or are directly adjacent,
// that is, whether their union is a single run.
func (r Run) Touches(o Run) bool { return r.Start <= o.End && o.Start <= r.End }

func (r Run) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Row is the run-length encoding of one image row of Width pixels.
//
// Runs are kept in canonical form: sorted by Start, each non-empty, inside
// [0, Width), and separated by at least one background pixel. Every Row
// returned by this package is canonical; see Validate.
type Row struct {
	Width int
	Runs  []Run
}

// Validate returns an error wrapping ErrInvariantViolation if r is not in
// canonical form.
func (r Row) Validate() error {
	prevEnd := -1
	for i, run := range r.Runs {
		switch {
		case run.Start >= run.End:
			return fmt.Errorf("%w: run %d %v is empty", ErrInvariantViolation, i, run)
		case run.Start < 0 || run.End > r.Width:
			return fmt.Errorf("%w: run %d %v outside width %d", ErrInvariantViolation, i, run, r.Width)
		case run.Start <= prevEnd:
			return fmt.Errorf("%w: run %d %v overlaps or touches previous run", ErrInvariantViolation, i, run)
		}
		prevEnd = run.End
	}
	return nil
}

// Count returns the number of foreground pixels in the row.
func (r Row) Count() int {
	n := 0
	for _, run := range r.Runs {
		n += run.Len()
	}
	return n
}

// At reports whether column x is foreground.
func (r Row) At(x int) bool {
	for _, run := range r.Runs {
		if x < run.Start {
			return false
		}
		if x < run.End {
			return true
		}
	}
	return false
}

// Equal reports whether r and o have the same width and runs.
func (r Row) Equal(o Row) bool {
	if r.Width != o.Width || len(r.Runs) != len(o.Runs) {
		return false
	}
	for i := range r.Runs {
		if r.Runs[i] != o.Runs[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of r.
func (r Row) Clone() Row {
	if r.Runs == nil {
		return Row{Width: r.Width}
	}
	runs := make([]Run, len(r.Runs))
	copy(runs, r.Runs)
	return Row{Width: r.Width, Runs: runs}
}

func (r Row) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "w=%d", r.Width)
	for _, run := range r.Runs {
		sb.WriteByte(' ')
		sb.WriteString(run.String())
	}
	return sb.String()
}

// mustCanonical panics if r is not canonical. It is a no-op unless the
// package is built with the rlemorph_debug tag.
func mustCanonical(op string, r Row) {
	if !debugChecks {
		return
	}
	if err := r.Validate(); err != nil {
		panic(fmt.Errorf("rlemorph: %s: %w", op, err))
	}
}
