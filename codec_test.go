package rlemorph

import (
	"errors"
	"slices"
	"testing"
)

func TestEncodeRow(t *testing.T) {
	tests := []struct {
		name string
		px   []uint8
		want []Run
	}{
		{"empty row", []uint8{}, nil},
		{"all background", []uint8{0, 0, 0, 0}, nil},
		{"all foreground", []uint8{1, 1, 1, 1}, []Run{{0, 4}}},
		{"single pixel", []uint8{0, 0, 1, 0}, []Run{{2, 3}}},
		{"leading run", []uint8{1, 1, 0, 0}, []Run{{0, 2}}},
		{"trailing run", []uint8{0, 0, 1, 1}, []Run{{2, 4}}},
		{"alternating", []uint8{1, 0, 1, 0, 1}, []Run{{0, 1}, {2, 3}, {4, 5}}},
		{"nonzero is foreground", []uint8{0, 7, 255, 0}, []Run{{1, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeRow(tt.px, len(tt.px))
			if err != nil {
				t.Fatalf("EncodeRow() error = %v", err)
			}
			if got.Width != len(tt.px) {
				t.Errorf("EncodeRow().Width = %d, want %d", got.Width, len(tt.px))
			}
			if !slices.Equal(got.Runs, tt.want) {
				t.Errorf("EncodeRow() = %v, want %v", got.Runs, tt.want)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("EncodeRow() not canonical: %v", err)
			}
		})
	}
}

func TestEncodeRowWidthMismatch(t *testing.T) {
	_, err := EncodeRow([]uint8{1, 0, 1}, 4)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("EncodeRow() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestDecodeRow(t *testing.T) {
	r := Row{Width: 6, Runs: []Run{{0, 1}, {3, 5}}}
	got, err := DecodeRow(r, 6)
	if err != nil {
		t.Fatalf("DecodeRow() error = %v", err)
	}
	want := []uint8{1, 0, 0, 1, 1, 0}
	if !slices.Equal(got, want) {
		t.Errorf("DecodeRow() = %v, want %v", got, want)
	}

	if _, err := DecodeRow(r, 7); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("DecodeRow(width 7) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestRowRoundTrip(t *testing.T) {
	rng := newRand(1)
	for i := range 200 {
		w := rng.IntN(64)
		px := make([]uint8, w)
		for x := range px {
			px[x] = uint8(rng.IntN(2))
		}
		r, err := EncodeRow(px, w)
		if err != nil {
			t.Fatalf("case %d: EncodeRow() error = %v", i, err)
		}
		back, err := DecodeRow(r, w)
		if err != nil {
			t.Fatalf("case %d: DecodeRow() error = %v", i, err)
		}
		if !slices.Equal(back, px) {
			t.Fatalf("case %d: decode(encode(%v)) = %v", i, px, back)
		}
		again, _ := EncodeRow(back, w)
		if !again.Equal(r) {
			t.Fatalf("case %d: encode(decode(%v)) = %v", i, r, again)
		}
	}
}

func TestEncodeImage(t *testing.T) {
	px := [][]uint8{
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 1},
	}
	img, err := EncodeImage(px, 4, 3)
	if err != nil {
		t.Fatalf("EncodeImage() error = %v", err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("EncodeImage() size = %dx%d, want 4x3", img.Width(), img.Height())
	}
	if img.NumRuns() != 3 {
		t.Errorf("NumRuns() = %d, want 3", img.NumRuns())
	}
	if img.Count() != 4 {
		t.Errorf("Count() = %d, want 4", img.Count())
	}
	got := DecodeImage(img)
	for y := range px {
		if !slices.Equal(got[y], px[y]) {
			t.Errorf("DecodeImage() row %d = %v, want %v", y, got[y], px[y])
		}
	}
}

func TestEncodeImageErrors(t *testing.T) {
	tests := []struct {
		name string
		px   [][]uint8
		w, h int
	}{
		{"too few rows", [][]uint8{{0, 1}}, 2, 2},
		{"too many rows", [][]uint8{{0, 1}, {1, 0}}, 2, 1},
		{"short row", [][]uint8{{0, 1}, {1}}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodeImage(tt.px, tt.w, tt.h); !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("EncodeImage() error = %v, want ErrDimensionMismatch", err)
			}
		})
	}
}

func TestEncodeImageEmpty(t *testing.T) {
	img, err := EncodeImage(nil, 0, 0)
	if err != nil {
		t.Fatalf("EncodeImage() error = %v", err)
	}
	if img.Width() != 0 || img.Height() != 0 || len(DecodeImage(img)) != 0 {
		t.Errorf("EncodeImage(empty) = %dx%d", img.Width(), img.Height())
	}
}

func TestBitmapRoundTrip(t *testing.T) {
	rng := newRand(2)
	for i := range 50 {
		bm := randomBitmap(rng, 1+rng.IntN(40), 1+rng.IntN(40))
		img := Encode(bm)
		assertCanonical(t, img)
		if !img.Bitmap().Equal(bm) {
			t.Fatalf("case %d: Encode(bm).Bitmap() differs from bm", i)
		}
		if img.Count() != bm.Count() {
			t.Errorf("case %d: Count() = %d, want %d", i, img.Count(), bm.Count())
		}
	}
}
