// Package tsplot renders time-series line plots, singly or in
// multi-panel grids, to PNG files.
//
// It wraps gonum.org/v1/plot with the few conventions this project
// needs: time on the x axis in seconds, one trace per panel, and a
// grid whose panel order follows band-registry iteration order.
package tsplot

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrLengthMismatch is returned when a time axis and sample slice
// differ in length.
var ErrLengthMismatch = errors.New("tsplot: time axis and samples differ in length")

type settings struct {
	title  string
	xLabel string
	yLabel string

	xLim, yLim       [2]float64
	hasXLim, hasYLim bool
}

func defaultSettings() settings {
	return settings{
		xLabel: "Time (s)",
	}
}

// Option adjusts one plot panel.
type Option func(*settings)

// WithTitle sets the panel title.
func WithTitle(title string) Option {
	return func(s *settings) { s.title = title }
}

// WithXLabel sets the x-axis label. An empty string clears it.
func WithXLabel(label string) Option {
	return func(s *settings) { s.xLabel = label }
}

// WithYLabel sets the y-axis label.
func WithYLabel(label string) Option {
	return func(s *settings) { s.yLabel = label }
}

// WithXLimits fixes the x-axis range.
func WithXLimits(min, max float64) Option {
	return func(s *settings) {
		s.xLim = [2]float64{min, max}
		s.hasXLim = true
	}
}

// WithYLimits fixes the y-axis range.
func WithYLimits(min, max float64) Option {
	return func(s *settings) {
		s.yLim = [2]float64{min, max}
		s.hasYLim = true
	}
}

// Line draws one trace onto an axis handle. The times and samples
// slices must have the same nonzero length.
func Line(p *plot.Plot, times, samples []float64, opts ...Option) error {
	if len(times) != len(samples) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(times), len(samples))
	}
	if len(times) == 0 {
		return errors.New("tsplot: empty trace")
	}

	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	xys := make(plotter.XYs, len(times))
	for i := range times {
		xys[i].X = times[i]
		xys[i].Y = samples[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("tsplot: failed to build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(0.75)
	p.Add(line)

	p.Title.Text = s.title
	p.X.Label.Text = s.xLabel
	p.Y.Label.Text = s.yLabel
	if s.hasXLim {
		p.X.Min, p.X.Max = s.xLim[0], s.xLim[1]
	}
	if s.hasYLim {
		p.Y.Min, p.Y.Max = s.yLim[0], s.yLim[1]
	}
	return nil
}

// Grid is a pre-allocated rows x cols arrangement of axis handles,
// rendered as one PNG. Panels are created lazily by At; untouched
// panels stay blank.
type Grid struct {
	rows, cols    int
	width, height vg.Length
	plots         [][]*plot.Plot
}

// GridOption adjusts grid geometry.
type GridOption func(*Grid)

// WithSize sets the overall image size. Defaults to 12x2.5 inches per
// panel row.
func WithSize(width, height vg.Length) GridOption {
	return func(g *Grid) {
		if width > 0 && height > 0 {
			g.width = width
			g.height = height
		}
	}
}

// NewGrid allocates a grid of axis handles.
func NewGrid(rows, cols int, opts ...GridOption) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("tsplot: invalid grid %dx%d", rows, cols)
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		width:  12 * vg.Inch * vg.Length(cols),
		height: 2.5 * vg.Inch * vg.Length(rows),
		plots:  make([][]*plot.Plot, rows),
	}
	for r := range g.plots {
		g.plots[r] = make([]*plot.Plot, cols)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// Rows returns the number of panel rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of panel columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the axis handle of the given panel, creating it on first
// use. Panels are addressed top-to-bottom, left-to-right.
func (g *Grid) At(row, col int) *plot.Plot {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	if g.plots[row][col] == nil {
		g.plots[row][col] = plot.New()
	}
	return g.plots[row][col]
}

// SavePNG renders all panels into a tiled canvas and writes it to path.
func (g *Grid) SavePNG(path string) error {
	img := vgimg.New(g.width, g.height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: g.rows,
		Cols: g.cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	canvases := plot.Align(g.plots, tiles, dc)
	for r := range g.plots {
		for c := range g.plots[r] {
			if g.plots[r][c] != nil {
				g.plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tsplot: failed to create %s: %w", path, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("tsplot: failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("tsplot: failed to close %s: %w", path, err)
	}
	return nil
}

// Single renders one trace to a standalone PNG.
func Single(times, samples []float64, path string, opts ...Option) error {
	p := plot.New()
	if err := Line(p, times, samples, opts...); err != nil {
		return err
	}
	if err := p.Save(12*vg.Inch, 2.5*vg.Inch, path); err != nil {
		return fmt.Errorf("tsplot: failed to save %s: %w", path, err)
	}
	return nil
}
