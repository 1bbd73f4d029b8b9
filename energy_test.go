package carve

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

func TestEnergy_UniformImageHasZeroEnergy(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff}}, image.Point{}, draw.Src)

	energy := SobelEnergy(img)
	rows, cols := energy.Dims()
	assert.Equal(imgHeight, rows)
	assert.Equal(imgWidth, cols)

	// A flat image has no intensity gradients anywhere.
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			assert.Zero(energy.At(y, x))
		}
	}
}

func TestEnergy_PeaksAroundContrastStripe(t *testing.T) {
	assert := assert.New(t)

	// Black image with a single white vertical stripe at column 2.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{A: 0xff}}, image.Point{}, draw.Src)
	for y := 0; y < 4; y++ {
		img.SetNRGBA(2, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}

	energy := SobelEnergy(img)
	for y := 0; y < 4; y++ {
		// The stripe boundaries carry the gradient magnitude, while the
		// leftmost column sits in a flat region and is free to remove.
		assert.Greater(energy.At(y, 1), 0.0)
		assert.Greater(energy.At(y, 3), 0.0)
		assert.Zero(energy.At(y, 0))
	}
}

func TestEnergy_OutputMatchesImageDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))

	energy := SobelEnergy(img)
	rows, cols := energy.Dims()

	assert.Equal(t, 5, rows)
	assert.Equal(t, 7, cols)
}
