package carve

import "gonum.org/v1/gonum/mat"

// dpTable holds the cumulative minimum energy level of every pixel,
// stored as a flat array indexed by x + y*width.
type dpTable struct {
	width  int
	height int
	costs  []float64
}

func newDPTable(width, height int) *dpTable {
	return &dpTable{
		width:  width,
		height: height,
		costs:  make([]float64, width*height),
	}
}

// get returns the cumulative energy value at the (x, y) position.
func (dpt *dpTable) get(x, y int) float64 {
	px := x + y*dpt.width
	return dpt.costs[px]
}

// set updates the cumulative energy value at the (x, y) position.
func (dpt *dpTable) set(x, y int, px float64) {
	idx := x + y*dpt.width
	dpt.costs[idx] = px
}

// findSeamDP returns the column index of the minimal total energy vertical
// seam for each row, computed with dynamic programming.
//
// The cumulative minimum energy table is built by traversing the grid from
// the second row to the last one and summing up the current pixel energy with
// the smallest cumulative value of the up to three connected pixels in the
// row above. The seam endpoint is the first column holding the minimum
// cumulative cost in the last row; the backtracking step walks upwards,
// preferring the straight above parent whenever the costs tie.
func findSeamDP(energy *mat.Dense) []int {
	height, width := energy.Dims()
	dpt := newDPTable(width, height)

	for x := 0; x < width; x++ {
		dpt.set(x, 0, energy.At(0, x))
	}

	for y := 1; y < height; y++ {
		for x := 0; x < width; x++ {
			min := dpt.get(x, y-1)
			// Do not compute edge cases: pixels are far left.
			if x > 0 && dpt.get(x-1, y-1) < min {
				min = dpt.get(x-1, y-1)
			}
			// Do not compute edge cases: pixels are far right.
			if x < width-1 && dpt.get(x+1, y-1) < min {
				min = dpt.get(x+1, y-1)
			}
			dpt.set(x, y, energy.At(y, x)+min)
		}
	}

	seam := make([]int, height)

	// Find the lowest cumulative energy endpoint in the last row.
	// The strict comparison keeps the first seen minimum on ties.
	px := 0
	min := dpt.get(0, height-1)
	for x := 1; x < width; x++ {
		if cost := dpt.get(x, height-1); cost < min {
			min = cost
			px = x
		}
	}
	seam[height-1] = px

	// Walk up in the cost table and follow the parent
	// which has the lowest cumulative energy.
	for y := height - 2; y >= 0; y-- {
		best := dpt.get(px, y)
		bx := px
		if px > 0 && dpt.get(px-1, y) < best {
			best = dpt.get(px-1, y)
			bx = px - 1
		}
		if px < width-1 && dpt.get(px+1, y) < best {
			bx = px + 1
		}
		px = bx
		seam[y] = px
	}

	return seam
}
