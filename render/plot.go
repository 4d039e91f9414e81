package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot defaults.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch

	// maxLabelledTicks is the widest domain that still gets one tick per total.
	maxLabelledTicks = 30
)

var plotFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// PlotRenderer draws a series as a line with point markers using gonum/plot.
// It writes either to a file (format from the extension) or to an io.Writer.
type PlotRenderer struct {
	path   string
	w      io.Writer
	format string
	width  vg.Length
	height vg.Length
}

// PlotOption customizes a PlotRenderer.
type PlotOption func(*PlotRenderer)

// WithSize sets the canvas size. Panics on non-positive lengths.
func WithSize(width, height vg.Length) PlotOption {
	if width <= 0 || height <= 0 {
		panic("render: WithSize requires positive dimensions")
	}
	return func(r *PlotRenderer) {
		r.width, r.height = width, height
	}
}

// NewPlotFile returns a renderer that saves to path. The extension picks the
// format.
//
// Errors:
//   - ErrUnsupportedFormat: the extension is not a gonum/plot format.
func NewPlotFile(path string, opts ...PlotOption) (*PlotRenderer, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !plotFormats[format] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return newPlot(&PlotRenderer{path: path, format: format}, opts), nil
}

// NewPlotWriter returns a renderer that encodes to w in the given format.
//
// Errors:
//   - ErrUnsupportedFormat: format is not a gonum/plot format.
func NewPlotWriter(w io.Writer, format string, opts ...PlotOption) (*PlotRenderer, error) {
	format = strings.ToLower(format)
	if !plotFormats[format] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return newPlot(&PlotRenderer{w: w, format: format}, opts), nil
}

func newPlot(r *PlotRenderer, opts []PlotOption) *PlotRenderer {
	r.width, r.height = DefaultWidth, DefaultHeight
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render draws s and writes the image.
func (r *PlotRenderer) Render(s Series) error {
	p, err := buildPlot(s)
	if err != nil {
		return err
	}

	if r.w == nil {
		if err := p.Save(r.width, r.height, r.path); err != nil {
			return fmt.Errorf("render: save %s: %w", r.path, err)
		}
		return nil
	}

	wt, err := p.WriterTo(r.width, r.height, r.format)
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", r.format, err)
	}
	if _, err := wt.WriteTo(r.w); err != nil {
		return fmt.Errorf("render: write %s: %w", r.format, err)
	}
	return nil
}

// buildPlot lays out axes, grid, line and markers for s.
func buildPlot(s Series) (*plot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = float64(s.X[i])
		pts[i].Y = s.Y[i]
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("render: build line: %w", err)
	}
	p.Add(line, points)

	// Integer totals read better with one tick each on small domains.
	if len(s.X) <= maxLabelledTicks {
		ticks := make([]plot.Tick, len(s.X))
		for i, x := range s.X {
			ticks[i] = plot.Tick{Value: float64(x), Label: strconv.Itoa(x)}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}
	return p, nil
}
