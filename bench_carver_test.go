package carve

import (
	"image"
	"image/color"
	"testing"
)

// benchImage builds a synthetic textured image so that the seam search has a
// non trivial energy landscape to traverse.
func benchImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8((x*31 + y*17 + x*y) % 255)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v ^ 0x55, B: v ^ 0xaa, A: 0xff})
		}
	}
	return img
}

func benchmarkShrink(b *testing.B, s Strategy) {
	src := benchImage(200, 200)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		img := src
		width, height := img.Bounds().Dx(), img.Bounds().Dy()
		c := NewCarver(width, height)
		c.Strategy = s

		seam := c.FindVerticalSeam(SobelEnergy(img))
		img = c.RemoveVerticalSeam(img, seam)

		if img.Bounds().Dx() != width-1 {
			b.FailNow()
		}
	}
}

func Benchmark_CarverOptimal(b *testing.B) {
	benchmarkShrink(b, Optimal)
}

func Benchmark_CarverGreedy(b *testing.B) {
	benchmarkShrink(b, Greedy)
}

func Benchmark_CarverGraph(b *testing.B) {
	benchmarkShrink(b, GraphShortestPath)
}
