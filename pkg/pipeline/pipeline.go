package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/VHeusinkveld/small-investigations/pkg/data"
	"github.com/VHeusinkveld/small-investigations/pkg/render"
	"github.com/VHeusinkveld/small-investigations/pkg/stats"
)

// Config selects the input, the coordinate columns and the output surface.
type Config struct {
	Input       string
	Comma       rune
	XCol        string
	YCol        string
	PointRadius float64
	Width       int
	Height      int

	// Output is a file path; empty means show a window.
	Output string
	Title  string
}

// Pipeline runs load, project and render in sequence.
type Pipeline struct {
	log *slog.Logger

	// Show displays the rendered plot and blocks until it is dismissed.
	Show func(img image.Image, title string) error
	// Report receives the coordinate summary when set.
	Report func(stats.Summary)
}

func NewPipeline(log *slog.Logger, show func(image.Image, string) error) *Pipeline {
	return &Pipeline{log: log, Show: show}
}

func (p *Pipeline) Run(cfg Config) error {
	tbl, err := data.LoadWithOptions(cfg.Input, data.Options{Comma: cfg.Comma})
	if err != nil {
		return err
	}
	p.log.Info("loaded table", "path", cfg.Input, "rows", tbl.Nrow(), "columns", tbl.Ncol())
	p.log.Debug("table schema", "schema", SchemaOf(tbl).String())

	coords, err := data.Project(tbl, cfg.XCol, cfg.YCol)
	if err != nil {
		return fmt.Errorf("failed to project coordinates: %w", err)
	}
	p.log.Debug("projected coordinates", "x", cfg.XCol, "y", cfg.YCol, "points", coords.R)

	if p.Report != nil {
		p.Report(stats.Summarize(coords, cfg.XCol, cfg.YCol))
	}

	plt, err := render.NewScatter(coords, render.Options{Title: cfg.Title, PointRadius: cfg.PointRadius})
	if err != nil {
		return err
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = render.DefaultWidth
	}
	if height <= 0 {
		height = render.DefaultHeight
	}

	if cfg.Output != "" {
		if err := render.Save(plt, cfg.Output, width, height); err != nil {
			return err
		}
		p.log.Info("saved plot", "path", cfg.Output)
		return nil
	}

	if p.Show == nil {
		return errors.New("no output file and no display configured")
	}
	title := cfg.Title
	if title == "" {
		title = cfg.Input
	}
	return p.Show(render.Render(plt, width, height), title)
}
