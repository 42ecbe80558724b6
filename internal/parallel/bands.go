package parallel

// Band is a half-open range of rows [Lo, Hi).
type Band struct {
	Lo, Hi int
}

// Len returns the number of rows in the band.
func (b Band) Len() int { return b.Hi - b.Lo }

// Split divides rows [0, n) into at most parts contiguous bands whose sizes
// differ by at most one and are never smaller than minRows, except when n
// itself is smaller.
func Split(n, parts, minRows int) []Band {
	if n <= 0 {
		return nil
	}
	minRows = max(minRows, 1)
	parts = max(min(parts, n/minRows), 1)

	bands := make([]Band, 0, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < extra {
			hi++
		}
		bands = append(bands, Band{Lo: lo, Hi: hi})
		lo = hi
	}
	return bands
}

// ForBands splits [0, n) into bands and runs fn on each band in parallel.
// Bands are sized for a few jobs per worker so stealing can balance
// uneven rows. It reports false, without calling fn, if the pool is closed.
func (p *WorkerPool) ForBands(n, minRows int, fn func(b Band)) bool {
	bands := Split(n, p.workers*4, minRows)
	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() { fn(b) }
	}
	return p.ExecuteAll(jobs)
}
