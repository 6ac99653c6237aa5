package render

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/VHeusinkveld/small-investigations/pkg/core"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	// DefaultPointRadius draws a marker of roughly one square point.
	DefaultPointRadius = 0.5
)

// DefaultColor is the first colour of the usual categorical palette.
var DefaultColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Options controls the scatter markers. Zero values select the defaults.
type Options struct {
	Title       string
	PointRadius float64 // in points
	Color       color.Color
}

// NewScatter builds a plot of the rows of an n x 2 matrix. Axes keep the
// library defaults. NaN or infinite coordinates are an error.
func NewScatter(m *core.Matrix, opts Options) (*plot.Plot, error) {
	if m.R > 0 && m.C != 2 {
		return nil, fmt.Errorf("scatter needs 2 columns, got %d", m.C)
	}

	p := plot.New()
	p.Title.Text = opts.Title

	s, err := plotter.NewScatter(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %w", err)
	}
	s.GlyphStyle = glyphStyle(opts)
	p.Add(s)
	return p, nil
}

func glyphStyle(opts Options) draw.GlyphStyle {
	radius := opts.PointRadius
	if radius <= 0 {
		radius = DefaultPointRadius
	}
	style := draw.GlyphStyle{
		Shape:  draw.CircleGlyph{},
		Radius: vg.Points(radius),
		Color:  DefaultColor,
	}
	if opts.Color != nil {
		style.Color = opts.Color
	}
	return style
}

// Render rasterises p into a width x height pixel image.
func Render(p *plot.Plot, width, height int) image.Image {
	c := vgimg.New(pixels(width), pixels(height))
	p.Draw(draw.New(c))
	return c.Image()
}

// Save writes p to path; the extension picks the format (png, svg, pdf, ...).
func Save(p *plot.Plot, path string, width, height int) error {
	if err := p.Save(pixels(width), pixels(height), path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", path, err)
	}
	return nil
}

// pixels converts a pixel count to the length that vgimg rasterises to
// exactly that many pixels at its default resolution.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / vgimg.DefaultDPI
}
