package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	TotalSamples      int           // Total number of samples taken
	SamplesPerPixel   int           // Samples taken for every pixel
	Duration          time.Duration // Wall time spent rendering
	MeanLuminance     float64       // Mean pixel luminance
	LuminanceVariance float64       // Variance of pixel luminance across the image
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// statsCollector gathers per-pixel luminance during a render
type statsCollector struct {
	samplesPerPixel int
	luminance       []float64
}

func newStatsCollector(pixels, samplesPerPixel int) *statsCollector {
	return &statsCollector{
		samplesPerPixel: samplesPerPixel,
		luminance:       make([]float64, 0, pixels),
	}
}

func (sc *statsCollector) add(color core.Vec3) {
	sc.luminance = append(sc.luminance, color.Luminance())
}

func (sc *statsCollector) finish(elapsed time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels:     len(sc.luminance),
		TotalSamples:    len(sc.luminance) * sc.samplesPerPixel,
		SamplesPerPixel: sc.samplesPerPixel,
		Duration:        elapsed,
	}
	switch len(sc.luminance) {
	case 0:
	case 1:
		stats.MeanLuminance = sc.luminance[0]
	default:
		stats.MeanLuminance, stats.LuminanceVariance = stat.MeanVariance(sc.luminance, nil)
	}
	return stats
}
