package rlemorph

import (
	"fmt"
	"strings"
)

// Image is a binary image stored as one canonical Row per scanline.
// All rows share the image width.
//
// Images returned by this package are never modified afterwards, so they can
// be shared between goroutines.
type Image struct {
	width  int
	height int
	rows   []Row
}

// NewImage creates an all-background image.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([]Row, height)
	for y := range rows {
		rows[y].Width = width
	}
	return &Image{width: width, height: height, rows: rows}
}

// NewImageFromRows builds an image from rows that must all be width wide and
// canonical. The rows are used directly, not copied.
func NewImageFromRows(width int, rows []Row) (*Image, error) {
	for y, r := range rows {
		if r.Width != width {
			return nil, fmt.Errorf("%w: row %d has width %d, image width %d", ErrDimensionMismatch, y, r.Width, width)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
	}
	return &Image{width: width, height: len(rows), rows: rows}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Row returns row y. The returned Row shares its runs with the image and
// must not be modified.
func (m *Image) Row(y int) Row { return m.rows[y] }

// Rows returns all rows. The slice must not be modified.
func (m *Image) Rows() []Row { return m.rows }

// At reports whether pixel (x, y) is foreground.
func (m *Image) At(x, y int) bool {
	if y < 0 || y >= m.height || x < 0 || x >= m.width {
		return false
	}
	return m.rows[y].At(x)
}

// Count returns the number of foreground pixels.
func (m *Image) Count() int {
	n := 0
	for _, r := range m.rows {
		n += r.Count()
	}
	return n
}

// NumRuns returns the total number of runs over all rows.
func (m *Image) NumRuns() int {
	n := 0
	for _, r := range m.rows {
		n += len(r.Runs)
	}
	return n
}

// Equal reports whether m and o have the same size and foreground pixels.
func (m *Image) Equal(o *Image) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for y := range m.rows {
		if !m.rows[y].Equal(o.rows[y]) {
			return false
		}
	}
	return true
}

// Validate checks that every row is canonical and has the image width.
func (m *Image) Validate() error {
	if len(m.rows) != m.height {
		return fmt.Errorf("%w: %d rows, height %d", ErrDimensionMismatch, len(m.rows), m.height)
	}
	for y, r := range m.rows {
		if r.Width != m.width {
			return fmt.Errorf("%w: row %d has width %d, image width %d", ErrDimensionMismatch, y, r.Width, m.width)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
	}
	return nil
}

// String renders the image with '#' for foreground and '.' for background.
func (m *Image) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for _, r := range m.rows {
		x := 0
		for _, run := range r.Runs {
			sb.WriteString(strings.Repeat(".", run.Start-x))
			sb.WriteString(strings.Repeat("#", run.Len()))
			x = run.End
		}
		sb.WriteString(strings.Repeat(".", m.width-x))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sameSize(op string, a, b *Image) error {
	if a.width != b.width || a.height != b.height {
		return fmt.Errorf("%w: %s of %dx%d and %dx%d", ErrDimensionMismatch, op, a.width, a.height, b.width, b.height)
	}
	return nil
}
