package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity keeps byte conversion below 256 for inputs at or above 1.0
var intensity = core.NewInterval(0.000, 0.999)

// ColorToByte maps a linear channel value to [0, 255]
func ColorToByte(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	return int(256 * intensity.Clamp(c))
}

// PPMWriter writes a plain-text (P3) PPM image one pixel per line
type PPMWriter struct {
	w     *bufio.Writer
	gamma float64
}

// NewPPMWriter wraps w. A gamma other than 1 is applied to every pixel before conversion.
func NewPPMWriter(w io.Writer, gamma float64) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w), gamma: gamma}
}

// WriteHeader writes the P3 magic, dimensions and maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (p *PPMWriter) WritePixel(color core.Vec3) error {
	if p.gamma > 0 && p.gamma != 1 {
		color = color.GammaCorrect(p.gamma)
	}
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", ColorToByte(color.X), ColorToByte(color.Y), ColorToByte(color.Z))
	return err
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}

// Image is an in-memory linear color raster stored row-major
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the color of pixel (i, j)
func (img *Image) At(i, j int) core.Vec3 {
	return img.Pixels[j*img.Width+i]
}

// Set sets the color of pixel (i, j)
func (img *Image) Set(i, j int, color core.Vec3) {
	img.Pixels[j*img.Width+i] = color
}

// WritePPM encodes the image as a P3 PPM stream
func (img *Image) WritePPM(w io.Writer, gamma float64) error {
	ppm := NewPPMWriter(w, gamma)
	if err := ppm.WriteHeader(img.Width, img.Height); err != nil {
		return err
	}
	for _, color := range img.Pixels {
		if err := ppm.WritePixel(color); err != nil {
			return err
		}
	}
	return ppm.Flush()
}
