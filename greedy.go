package carve

import "gonum.org/v1/gonum/mat"

// findSeamGreedy returns a vertical seam obtained by a local greedy walk.
//
// The walk starts at the lowest energy column of the first row and at every
// subsequent row moves to whichever of the up to three adjacent pixels has
// the lowest raw energy. There is no lookahead, so the produced seam is not
// guaranteed to be globally optimal, but the walk needs no auxiliary
// cumulative cost table and runs with smaller constants.
func findSeamGreedy(energy *mat.Dense) []int {
	height, width := energy.Dims()
	seam := make([]int, height)

	px := 0
	min := energy.At(0, 0)
	for x := 1; x < width; x++ {
		if e := energy.At(0, x); e < min {
			min = e
			px = x
		}
	}
	seam[0] = px

	for y := 1; y < height; y++ {
		best := energy.At(y, px)
		bx := px
		if px > 0 && energy.At(y, px-1) < best {
			best = energy.At(y, px-1)
			bx = px - 1
		}
		if px < width-1 && energy.At(y, px+1) < best {
			bx = px + 1
		}
		px = bx
		seam[y] = px
	}

	return seam
}
