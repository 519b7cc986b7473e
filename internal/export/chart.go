package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/quarkviz/internal/quantum"
)

const (
	WalkTitle  = "Neutrino Transport Simulation"
	FieldTitle = "Dark Matter Interaction Simulation"

	ChartWidth  = 640
	ChartHeight = 640
)

var (
	walkColor  = drawing.Color{R: 128, G: 0, B: 128, A: 255}
	dotColor   = drawing.Color{R: 0, G: 0, B: 0, A: 178}
	gridColor  = drawing.Color{R: 220, G: 220, B: 220, A: 255}
	frameColor = drawing.Color{R: 160, G: 160, B: 160, A: 255}
)

// WalkChart plots the path as a connected line with point markers,
// labelled axes and major grid lines.
func WalkChart(p quantum.Path) chart.Chart {
	xs, ys := p.Floats()
	minX, maxX, minY, maxY := p.Bounds()
	gridStyle := chart.Style{StrokeColor: gridColor, StrokeWidth: 1.0}

	return chart.Chart{
		Title:  WalkTitle,
		Width:  ChartWidth,
		Height: ChartHeight,
		XAxis: chart.XAxis{
			Name:           "X Position",
			Range:          &chart.ContinuousRange{Min: float64(minX) - 1, Max: float64(maxX) + 1},
			ValueFormatter: intFormatter,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Y Position",
			Range:          &chart.ContinuousRange{Min: float64(minY) - 1, Max: float64(maxY) + 1},
			ValueFormatter: intFormatter,
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "path",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: walkColor,
					StrokeWidth: 1.0,
					DotColor:    walkColor,
					DotWidth:    2.0,
				},
			},
		},
	}
}

// FieldChart plots one animation frame as a scatter over the fixed box.
func FieldChart(fr quantum.Frame) chart.Chart {
	ext := fr.Field.Extent
	series := []chart.Series{
		// box outline; also keeps the chart renderable with zero particles
		chart.ContinuousSeries{
			Name:    "box",
			XValues: []float64{0, ext, ext, 0, 0},
			YValues: []float64{0, 0, ext, ext, 0},
			Style:   chart.Style{StrokeColor: frameColor, StrokeWidth: 1.0},
		},
	}
	if n := len(fr.Field.Positions); n > 0 {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i, pt := range fr.Field.Positions {
			xs[i], ys[i] = pt.X, pt.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "particles",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotColor:    dotColor,
				DotWidth:    3.0,
			},
		})
	}

	return chart.Chart{
		Title:  FieldTitle,
		Width:  ChartWidth,
		Height: ChartHeight,
		XAxis:  chart.XAxis{Range: &chart.ContinuousRange{Min: 0, Max: ext}},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: ext}},
		Series: series,
	}
}

// RenderPNG writes the chart as PNG.
func RenderPNG(c chart.Chart, w io.Writer) error {
	if err := c.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", c.Title, err)
	}
	return nil
}

// RenderImage rasterises the chart.
func RenderImage(c chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := RenderPNG(c, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", c.Title, err)
	}
	return img, nil
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
