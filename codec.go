package rlemorph

import "fmt"

// EncodeRow converts one row of pixels to its run-length encoding.
// Any nonzero pixel is foreground.
func EncodeRow(row []uint8, width int) (Row, error) {
	if len(row) != width {
		return Row{}, fmt.Errorf("%w: row of %d pixels, width %d", ErrDimensionMismatch, len(row), width)
	}
	return Row{Width: width, Runs: appendRuns(nil, row)}, nil
}

// appendRuns scans row left to right, opening a run on each 0->1 transition
// and closing it on 1->0 or at the end of the row.
func appendRuns(dst []Run, row []uint8) []Run {
	start := -1
	for x, v := range row {
		switch {
		case v != 0 && start < 0:
			start = x
		case v == 0 && start >= 0:
			dst = append(dst, Run{Start: start, End: x})
			start = -1
		}
	}
	if start >= 0 {
		dst = append(dst, Run{Start: start, End: len(row)})
	}
	return dst
}

// DecodeRow expands r into width pixels of 0 and 1.
func DecodeRow(r Row, width int) ([]uint8, error) {
	if r.Width != width {
		return nil, fmt.Errorf("%w: row width %d, want %d", ErrDimensionMismatch, r.Width, width)
	}
	out := make([]uint8, width)
	fillRuns(out, r.Runs, 1)
	return out, nil
}

func fillRuns(dst []uint8, runs []Run, v uint8) {
	for _, run := range runs {
		seg := dst[run.Start:run.End]
		for i := range seg {
			seg[i] = v
		}
	}
}

// EncodeImage encodes a height x width grid given as one slice per row.
func EncodeImage(pixels [][]uint8, width, height int) (*Image, error) {
	if len(pixels) != height {
		return nil, fmt.Errorf("%w: %d rows, height %d", ErrDimensionMismatch, len(pixels), height)
	}
	rows := make([]Row, height)
	for y, p := range pixels {
		r, err := EncodeRow(p, width)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		rows[y] = r
	}
	return &Image{width: width, height: height, rows: rows}, nil
}

// DecodeImage expands img into one slice of 0 and 1 per row.
func DecodeImage(img *Image) [][]uint8 {
	out := make([][]uint8, img.height)
	for y, r := range img.rows {
		out[y] = make([]uint8, img.width)
		fillRuns(out[y], r.Runs, 1)
	}
	return out
}

// Encode run-length encodes a bitmap.
func Encode(b *Bitmap) *Image {
	rows := make([]Row, b.height)
	for y := range rows {
		rows[y] = Row{Width: b.width, Runs: appendRuns(nil, b.Row(y))}
	}
	return &Image{width: b.width, height: b.height, rows: rows}
}

// Bitmap decodes the image into a new bitmap with foreground pixels set to 1.
func (m *Image) Bitmap() *Bitmap {
	b := NewBitmap(m.width, m.height)
	for y, r := range m.rows {
		fillRuns(b.Row(y), r.Runs, 1)
	}
	return b
}
