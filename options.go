package rlemorph

import (
	"fmt"
	"strings"
)

// Boundary selects how pixels outside the image are treated.
//
// Whatever the policy, Erode under policy P equals Flip(Dilate(Flip(img)))
// under the dual policy, which swaps Background and Foreground.
type Boundary int

const (
	// BoundaryTruncate clips the kernel window at the image edges: pixels
	// outside the image do not take part. Dilation behaves as if the
	// outside were background and erosion as if it were foreground, so
	// objects touching the border are not eroded from that side.
	BoundaryTruncate Boundary = iota

	// BoundaryBackground treats the outside as background for both
	// operations. Erosion clears a frame of hx columns and hy rows along
	// the borders.
	BoundaryBackground

	// BoundaryForeground treats the outside as foreground for both
	// operations. Dilation fills a frame of hx columns and hy rows along
	// the borders.
	BoundaryForeground
)

func (b Boundary) String() string {
	switch b {
	case BoundaryTruncate:
		return "truncate"
	case BoundaryBackground:
		return "background"
	case BoundaryForeground:
		return "foreground"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary parses the names printed by Boundary.String.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(s) {
	case "truncate", "":
		return BoundaryTruncate, nil
	case "background", "bg":
		return BoundaryBackground, nil
	case "foreground", "fg":
		return BoundaryForeground, nil
	}
	return BoundaryTruncate, fmt.Errorf("rlemorph: unknown boundary %q", s)
}

// dual is the policy that describes the same outside pixels after the
// image has been complemented.
func (b Boundary) dual() Boundary {
	switch b {
	case BoundaryBackground:
		return BoundaryForeground
	case BoundaryForeground:
		return BoundaryBackground
	default:
		return b
	}
}

// Option configures a morphology call.
//
// Example:
//
//	pool := rlemorph.NewPool(0)
//	defer pool.Close()
//	out, err := rlemorph.Erode(img, 5, 5,
//	    rlemorph.WithBoundary(rlemorph.BoundaryBackground),
//	    rlemorph.WithPool(pool))
type Option func(*options)

type options struct {
	boundary Boundary
	pool     *Pool
	direct   bool
}

func defaultOptions() options {
	return options{boundary: BoundaryTruncate}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithBoundary sets the boundary policy. The default is BoundaryTruncate.
func WithBoundary(b Boundary) Option {
	return func(o *options) {
		o.boundary = b
	}
}

// WithPool spreads the work of large images over the pool's workers.
// A nil pool runs everything on the calling goroutine.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithDirectErosion makes Erode contract rows and intersect the vertical
// window instead of dilating the complement. Both paths give identical
// results; the direct one skips the two complement passes.
func WithDirectErosion() Option {
	return func(o *options) {
		o.direct = true
	}
}
