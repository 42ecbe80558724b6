package rlemorph

// And returns the pixels set in both a and b.
func And(a, b *Image) (*Image, error) {
	if err := sameSize("and", a, b); err != nil {
		return nil, err
	}
	return combine(a, b, intersectRuns), nil
}

// Or returns the pixels set in a, b or both.
func Or(a, b *Image) (*Image, error) {
	if err := sameSize("or", a, b); err != nil {
		return nil, err
	}
	return combine(a, b, unionRuns), nil
}

// Sub returns the pixels set in a but not in b.
func Sub(a, b *Image) (*Image, error) {
	if err := sameSize("sub", a, b); err != nil {
		return nil, err
	}
	return sub(a, b), nil
}

func sub(a, b *Image) *Image {
	return combine(a, b, differenceRuns)
}

func combine(a, b *Image, op func(dst, x, y []Run) []Run) *Image {
	rows := make([]Row, a.height)
	for y := range rows {
		rows[y] = Row{Width: a.width, Runs: op(nil, a.rows[y].Runs, b.rows[y].Runs)}
	}
	return &Image{width: a.width, height: a.height, rows: rows}
}
