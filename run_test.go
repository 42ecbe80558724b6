package rlemorph

import (
	"errors"
	"testing"
)

func TestRunPredicates(t *testing.T) {
	tests := []struct {
		a, b     Run
		overlaps bool
		touches  bool
	}{
		{Run{0, 10}, Run{1, 11}, true, true},
		{Run{0, 10}, Run{10, 12}, false, true},
		{Run{0, 10}, Run{11, 12}, false, false},
		{Run{5, 6}, Run{0, 10}, true, true},
		{Run{3, 4}, Run{0, 3}, false, true},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.overlaps)
		}
		if got := tt.a.Touches(tt.b); got != tt.touches {
			t.Errorf("%v.Touches(%v) = %v, want %v", tt.a, tt.b, got, tt.touches)
		}
	}
}

func TestRunLenContains(t *testing.T) {
	r := Run{Start: 2, End: 5}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	for x, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := r.Contains(x); got != want {
			t.Errorf("Contains(%d) = %v, want %v", x, got, want)
		}
	}
}

func TestRowValidate(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		ok   bool
	}{
		{"empty", Row{Width: 5}, true},
		{"zero width", Row{}, true},
		{"single", Row{Width: 5, Runs: []Run{{0, 5}}}, true},
		{"separated", Row{Width: 8, Runs: []Run{{0, 2}, {3, 4}, {6, 8}}}, true},
		{"touching", Row{Width: 8, Runs: []Run{{0, 2}, {2, 4}}}, false},
		{"overlapping", Row{Width: 8, Runs: []Run{{0, 3}, {2, 4}}}, false},
		{"unsorted", Row{Width: 8, Runs: []Run{{5, 6}, {0, 2}}}, false},
		{"empty run", Row{Width: 8, Runs: []Run{{3, 3}}}, false},
		{"negative start", Row{Width: 8, Runs: []Run{{-1, 2}}}, false},
		{"past width", Row{Width: 8, Runs: []Run{{6, 9}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.row.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvariantViolation) {
				t.Errorf("Validate() = %v, want ErrInvariantViolation", err)
			}
		})
	}
}

func TestRowAtCount(t *testing.T) {
	r := Row{Width: 10, Runs: []Run{{1, 3}, {6, 9}}}
	if r.Count() != 5 {
		t.Errorf("Count() = %d, want 5", r.Count())
	}
	want := []bool{false, true, true, false, false, false, true, true, true, false}
	for x, w := range want {
		if got := r.At(x); got != w {
			t.Errorf("At(%d) = %v, want %v", x, got, w)
		}
	}
}

func TestRowCloneIsIndependent(t *testing.T) {
	r := Row{Width: 10, Runs: []Run{{1, 3}}}
	c := r.Clone()
	c.Runs[0].End = 9
	if r.Runs[0].End != 3 {
		t.Error("Clone shares runs with the original")
	}
	if !r.Equal(Row{Width: 10, Runs: []Run{{1, 3}}}) {
		t.Error("original row changed")
	}
}

func TestRowString(t *testing.T) {
	r := Row{Width: 6, Runs: []Run{{0, 1}, {2, 6}}}
	if got, want := r.String(), "w=6 [0,1) [2,6)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
