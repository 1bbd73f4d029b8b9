package carve

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// Point holds the (x, y) coordinate of a single seam pixel.
type Point struct {
	X int
	Y int
}

// Seam is a connected path of pixels crossing the whole image, holding one
// point per row for a vertical seam or one point per column for a horizontal
// one. Consecutive points never drift apart by more than one pixel.
type Seam []Point

// Carver encapsulates the seam operations over an image of a fixed size.
// Width and Height must match the image the carver is applied to;
// after a seam removal a new carver has to be created for the shrunk image.
type Carver struct {
	Width    int
	Height   int
	Strategy Strategy
}

// NewCarver returns an initialized carver for an image of the provided size.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
	}
}

// FindVerticalSeam searches the energy grid for a removable vertical seam
// using the carver's strategy. The returned seam holds one point per row.
func (c *Carver) FindVerticalSeam(energy *mat.Dense) Seam {
	cols := c.findSeam(energy)
	seam := make(Seam, len(cols))
	for y, x := range cols {
		seam[y] = Point{X: x, Y: y}
	}
	return seam
}

// FindHorizontalSeam searches the energy grid for a removable horizontal
// seam. The energy grid is transposed and the vertical search is reused, the
// result being reinterpreted as one row index per column.
func (c *Carver) FindHorizontalSeam(energy *mat.Dense) Seam {
	rows := c.findSeam(mat.DenseCopyOf(energy.T()))
	seam := make(Seam, len(rows))
	for x, y := range rows {
		seam[x] = Point{X: x, Y: y}
	}
	return seam
}

func (c *Carver) findSeam(energy *mat.Dense) []int {
	switch c.Strategy {
	case Greedy:
		return findSeamGreedy(energy)
	case GraphShortestPath:
		return findSeamGraph(energy)
	default:
		return findSeamDP(energy)
	}
}

// RemoveVerticalSeam returns a new image with the seam pixels excised, one
// column narrower than the source. The source image is left untouched.
func (c *Carver) RemoveVerticalSeam(img *image.NRGBA, seam Seam) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width-1, c.Height))

	for _, p := range seam {
		srcOff := img.PixOffset(0, p.Y)
		dstOff := dst.PixOffset(0, p.Y)

		// Pixels on the left side of the cut keep their position,
		// the ones on the right side shift one position to the left.
		copy(dst.Pix[dstOff:dstOff+p.X*4], img.Pix[srcOff:srcOff+p.X*4])
		copy(dst.Pix[dstOff+p.X*4:dstOff+(c.Width-1)*4], img.Pix[srcOff+(p.X+1)*4:srcOff+c.Width*4])
	}
	return dst
}

// RemoveHorizontalSeam returns a new image with the seam pixels excised, one
// row shorter than the source. The source image is left untouched.
func (c *Carver) RemoveHorizontalSeam(img *image.NRGBA, seam Seam) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height-1))

	for _, p := range seam {
		for y := 0; y < p.Y; y++ {
			srcOff := img.PixOffset(p.X, y)
			dstOff := dst.PixOffset(p.X, y)
			copy(dst.Pix[dstOff:dstOff+4], img.Pix[srcOff:srcOff+4])
		}
		for y := p.Y + 1; y < c.Height; y++ {
			srcOff := img.PixOffset(p.X, y)
			dstOff := dst.PixOffset(p.X, y-1)
			copy(dst.Pix[dstOff:dstOff+4], img.Pix[srcOff:srcOff+4])
		}
	}
	return dst
}
