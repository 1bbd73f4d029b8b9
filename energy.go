package carve

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"gonum.org/v1/gonum/mat"

	"github.com/contentaware/carve/utils"
)

type kernel [3][3]float64

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelEnergy computes the per pixel importance of the source image.
// The image is first reduced to a single luminance plane, then the two Sobel
// kernels approximate the intensity gradient along each axis; the energy of a
// pixel is the Euclidean magnitude of the two gradients. Flat image regions
// end up with zero energy, edges and textured areas with a high one.
// The returned matrix has one row per image row and one column per image column.
// See https://en.wikipedia.org/wiki/Sobel_operator
func SobelEnergy(img *image.NRGBA) *mat.Dense {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// The grayscale image has identical R, G, B samples, so reading
	// the red channel is enough to obtain the luminance plane.
	gray := effect.Grayscale(img)
	lum := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			lum[y*width+x] = float64(gray.Pix[gray.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)])
		}
	}

	energy := mat.NewDense(height, width, nil)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					// Boundary pixels reuse the closest in-range sample.
					sx := utils.Max(0, utils.Min(x+kx-1, width-1))
					sy := utils.Max(0, utils.Min(y+ky-1, height-1))

					px := lum[sy*width+sx]
					gx += px * kernelX[ky][kx]
					gy += px * kernelY[ky][kx]
				}
			}
			energy.Set(y, x, math.Hypot(gx, gy))
		}
	}
	return energy
}
