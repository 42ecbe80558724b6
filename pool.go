package rlemorph

import "github.com/gogpu/rlemorph/internal/parallel"

// minBandRows is the smallest band handed to a worker. Each vertical band
// re-primes its window with up to 2*hy rows, so tiny bands waste work.
const minBandRows = 16

// Pool is a set of worker goroutines shared by morphology calls made with
// WithPool. A Pool may be used by several calls concurrently.
type Pool struct {
	wp *parallel.WorkerPool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	return &Pool{wp: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return p.wp.Workers() }

// Close stops the workers. Calls that use a closed pool fall back to
// running on the calling goroutine. Close is safe to call multiple times.
func (p *Pool) Close() { p.wp.Close() }

// usable reports whether p can speed up an image of the given height.
func (p *Pool) usable(height int) bool {
	return p != nil && p.wp.Workers() > 1 && height >= 2*minBandRows && p.wp.IsRunning()
}

// forBands runs fn over row bands of [0, n). If the pool has been closed in
// the meantime it runs fn over the whole range on the calling goroutine.
func (p *Pool) forBands(n int, fn func(lo, hi int)) {
	ok := p.wp.ForBands(n, minBandRows, func(b parallel.Band) { fn(b.Lo, b.Hi) })
	if !ok {
		Logger().Warn("rlemorph: pool closed, running sequentially", "rows", n)
		fn(0, n)
	}
}
