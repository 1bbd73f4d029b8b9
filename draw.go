package carve

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSeamColor is the fallback color of the seam overlay.
const DefaultSeamColor = "#FF0000"

// DrawSeam returns a copy of the image with the seam pixels painted over in
// the provided hex color. Invalid color strings revert to DefaultSeamColor.
// The overlay is meant for debugging the seam detection: it visualizes the
// path a subsequent removal would take without altering the image size.
func (c *Carver) DrawSeam(img *image.NRGBA, seam Seam, hexColor string) *image.NRGBA {
	col, err := colorful.Hex(hexColor)
	if err != nil {
		col, _ = colorful.Hex(DefaultSeamColor)
	}
	r, g, b := col.RGB255()

	dst := image.NewNRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)

	for _, p := range seam {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height {
			continue
		}
		off := dst.PixOffset(p.X, p.Y)
		dst.Pix[off+0] = r
		dst.Pix[off+1] = g
		dst.Pix[off+2] = b
		dst.Pix[off+3] = 0xff
	}
	return dst
}
