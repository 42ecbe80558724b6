// Package rlemorph implements binary morphology on run-length-encoded images.
//
// # Overview
//
// Dilation and erosion with an axis-aligned rectangular structuring element
// are computed directly on the runs of each row, never on a pixel grid, so
// the cost follows the number of runs rather than the number of pixels.
//
// # Quick Start
//
//	bm := rlemorph.NewBitmapFromImage(src, 127)   // threshold to 0/1
//	img := rlemorph.Encode(bm)
//
//	out, err := rlemorph.Dilate(img, 5, 5)         // 11x11 rectangle
//	if err != nil {
//	    return err
//	}
//	gray := out.Bitmap().Gray(255)
//
// # Architecture
//
// A rectangle is separable, so each operation runs in two passes:
//   - Horizontal: every row is expanded (dilation) or contracted (erosion)
//     by the half width, in one sweep over its runs.
//   - Vertical: a window slides down the image holding the rows within the
//     half height. The window keeps a sparse signed delta array of run
//     boundaries, so each output row costs time proportional to the
//     boundaries in the window and not to the kernel height.
//
// Erosion is computed as Flip(Dilate(Flip(img))). WithDirectErosion selects
// the equivalent contract-and-intersect path.
//
// # Boundaries
//
// The default BoundaryTruncate clips the window at the image edges; see
// Boundary for the alternatives.
//
// # Concurrency
//
// All operations are pure functions of their arguments. Passing a Pool with
// WithPool runs the horizontal pass and bands of the vertical pass on the
// pool's workers.
package rlemorph
