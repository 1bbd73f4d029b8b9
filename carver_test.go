package carve

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

// coordImage encodes the pixel coordinates into the color channels so that
// every pixel of the source can be identified after a seam removal.
func coordImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

func TestCarver_RemoveVerticalSeam(t *testing.T) {
	assert := assert.New(t)

	img := coordImage(imgWidth, imgHeight)
	c := NewCarver(imgWidth, imgHeight)

	// Zigzag seam touching both image borders.
	seam := make(Seam, imgHeight)
	cols := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for y := 0; y < imgHeight; y++ {
		seam[y] = Point{X: cols[y], Y: y}
	}

	res := c.RemoveVerticalSeam(img, seam)

	assert.Equal(imgWidth-1, res.Bounds().Dx())
	assert.Equal(imgHeight, res.Bounds().Dy())

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth-1; x++ {
			want := x
			if x >= seam[y].X {
				want = x + 1
			}
			got := res.NRGBAAt(x, y)
			assert.Equal(uint8(want), got.R, "row %d column %d should hold source column %d", y, x, want)
			assert.Equal(uint8(y), got.G)
		}
	}
}

func TestCarver_RemoveVerticalSeamAtBorders(t *testing.T) {
	assert := assert.New(t)

	img := coordImage(imgWidth, imgHeight)
	c := NewCarver(imgWidth, imgHeight)

	leftmost := make(Seam, imgHeight)
	rightmost := make(Seam, imgHeight)
	for y := 0; y < imgHeight; y++ {
		leftmost[y] = Point{X: 0, Y: y}
		rightmost[y] = Point{X: imgWidth - 1, Y: y}
	}

	res := c.RemoveVerticalSeam(img, leftmost)
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth-1; x++ {
			assert.Equal(uint8(x+1), res.NRGBAAt(x, y).R)
		}
	}

	res = c.RemoveVerticalSeam(img, rightmost)
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth-1; x++ {
			assert.Equal(uint8(x), res.NRGBAAt(x, y).R)
		}
	}
}

func TestCarver_RemoveHorizontalSeam(t *testing.T) {
	assert := assert.New(t)

	img := coordImage(imgWidth, imgHeight)
	c := NewCarver(imgWidth, imgHeight)

	seam := make(Seam, imgWidth)
	rows := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	for x := 0; x < imgWidth; x++ {
		seam[x] = Point{X: x, Y: rows[x]}
	}

	res := c.RemoveHorizontalSeam(img, seam)

	assert.Equal(imgWidth, res.Bounds().Dx())
	assert.Equal(imgHeight-1, res.Bounds().Dy())

	for x := 0; x < imgWidth; x++ {
		for y := 0; y < imgHeight-1; y++ {
			want := y
			if y >= seam[x].Y {
				want = y + 1
			}
			got := res.NRGBAAt(x, y)
			assert.Equal(uint8(want), got.G, "column %d row %d should hold source row %d", x, y, want)
			assert.Equal(uint8(x), got.R)
		}
	}
}

func TestCarver_RemoveSeamKeepsSourceIntact(t *testing.T) {
	img := coordImage(imgWidth, imgHeight)
	orig := make([]uint8, len(img.Pix))
	copy(orig, img.Pix)

	c := NewCarver(imgWidth, imgHeight)
	seam := c.FindVerticalSeam(SobelEnergy(img))
	c.RemoveVerticalSeam(img, seam)

	assert.Equal(t, orig, img.Pix)
}

func TestCarver_ShrinkLoop(t *testing.T) {
	img := coordImage(imgWidth, imgHeight)
	newWidth := imgWidth / 2

	for img.Bounds().Dx() > newWidth {
		width, height := img.Bounds().Dx(), img.Bounds().Dy()
		c := NewCarver(width, height)

		seam := c.FindVerticalSeam(SobelEnergy(img))
		img = c.RemoveVerticalSeam(img, seam)
	}

	assert.Equal(t, newWidth, img.Bounds().Dx())
	assert.Equal(t, imgHeight, img.Bounds().Dy())
}

func TestCarver_DrawSeam(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{image.White}, image.Point{}, draw.Src)

	c := NewCarver(imgWidth, imgHeight)
	seam := make(Seam, imgHeight)
	for y := 0; y < imgHeight; y++ {
		seam[y] = Point{X: 4, Y: y}
	}

	res := c.DrawSeam(img, seam, "#00FF00")
	for y := 0; y < imgHeight; y++ {
		assert.Equal(color.NRGBA{G: 0xff, A: 0xff}, res.NRGBAAt(4, y))
		assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, res.NRGBAAt(5, y))
	}

	// An unparsable color string reverts to the default overlay color.
	res = c.DrawSeam(img, seam, "not-a-color")
	for y := 0; y < imgHeight; y++ {
		assert.Equal(color.NRGBA{R: 0xff, A: 0xff}, res.NRGBAAt(4, y))
	}
}
