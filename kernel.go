package rlemorph

import "fmt"

// Kernel is an axis-aligned rectangular structuring element of
// (2*HalfWidth+1) x (2*HalfHeight+1) pixels centered on the origin.
type Kernel struct {
	HalfWidth  int
	HalfHeight int
}

// Rect returns the kernel with the given half sizes.
func Rect(hx, hy int) Kernel {
	return Kernel{HalfWidth: hx, HalfHeight: hy}
}

// Square returns the (2k+1) x (2k+1) kernel, the L-infinity ball of radius k.
func Square(k int) Kernel {
	return Kernel{HalfWidth: k, HalfHeight: k}
}

// Width returns the kernel width in pixels.
func (k Kernel) Width() int { return 2*k.HalfWidth + 1 }

// Height returns the kernel height in pixels.
func (k Kernel) Height() int { return 2*k.HalfHeight + 1 }

// IsIdentity reports whether the kernel is the single origin pixel.
func (k Kernel) IsIdentity() bool { return k.HalfWidth == 0 && k.HalfHeight == 0 }

// Validate returns an error wrapping ErrInvalidKernel for negative sizes.
func (k Kernel) Validate() error {
	if k.HalfWidth < 0 || k.HalfHeight < 0 {
		return fmt.Errorf("%w: half sizes %d x %d", ErrInvalidKernel, k.HalfWidth, k.HalfHeight)
	}
	return nil
}

func (k Kernel) String() string {
	return fmt.Sprintf("%dx%d", k.Width(), k.Height())
}
