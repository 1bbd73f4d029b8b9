package carve

import (
	"image"
	"image/draw"
	"io"

	"github.com/pkg/errors"
)

// ErrInvalidTarget is returned when the requested target size is not
// positive or exceeds the source image size. Only shrinking is supported.
var ErrInvalidTarget = errors.New("target size must be positive and must not exceed the source image size")

// SeamCarver is an interface the Processor implements to run the resize operation.
// It takes the source image as parameter and returns the rescaled image.
type SeamCarver interface {
	Resize(*image.NRGBA) (image.Image, error)
}

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	NewWidth  int
	NewHeight int
	Strategy  Strategy
	SeamColor string
}

// Resize implements the Resize method of the SeamCarver interface.
func Resize(s SeamCarver, img *image.NRGBA) (image.Image, error) {
	return s.Resize(img)
}

// Resize removes the lowest energy seams from the image one by one until it
// reaches the requested width and height, then returns the rescaled image.
//
// The resize happens in two strictly sequential phases: first the vertical
// seams are removed until the target width is reached, then the horizontal
// ones until the target height. The energy map is recomputed from scratch
// before every single seam search, since removing a seam changes the pixel
// neighborhood along the cut and the previous values become stale.
//
// The source image is never mutated; the whole operation runs over an
// internal working copy.
func (p *Processor) Resize(img *image.NRGBA) (image.Image, error) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	if p.NewWidth <= 0 || p.NewWidth > width {
		return nil, errors.Wrapf(ErrInvalidTarget, "requested width %d, source width %d", p.NewWidth, width)
	}
	if p.NewHeight <= 0 || p.NewHeight > height {
		return nil, errors.Wrapf(ErrInvalidTarget, "requested height %d, source height %d", p.NewHeight, height)
	}

	work := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(work, work.Bounds(), img, img.Bounds().Min, draw.Src)

	for work.Bounds().Dx() > p.NewWidth {
		c := NewCarver(work.Bounds().Dx(), work.Bounds().Dy())
		c.Strategy = p.Strategy

		seam := c.FindVerticalSeam(SobelEnergy(work))
		work = c.RemoveVerticalSeam(work, seam)
	}

	for work.Bounds().Dy() > p.NewHeight {
		c := NewCarver(work.Bounds().Dx(), work.Bounds().Dy())
		c.Strategy = p.Strategy

		seam := c.FindHorizontalSeam(SobelEnergy(work))
		work = c.RemoveHorizontalSeam(work, seam)
	}

	return work, nil
}

// Process decodes the source image from the reader, runs the resize
// operation and encodes the result into the writer. We are using the io
// package, since we can provide different input and output types, as long as
// they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return errors.Wrap(err, "unable to decode the source image")
	}

	return encodeImg(p, w, imgToNRGBA(src))
}
