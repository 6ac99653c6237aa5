package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/VHeusinkveld/small-investigations/pkg/pipeline"
	"github.com/VHeusinkveld/small-investigations/pkg/stats"
	"github.com/VHeusinkveld/small-investigations/pkg/window"
)

const (
	defaultInput = "data.csv"
	defaultXCol  = "X_COORD"
	defaultYCol  = "Y_COORD"

	exitCodeSuccess = 0
	exitCodeError   = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; flags and defaults still apply.
	_ = godotenv.Load()

	if err := newRootCmd(window.Show).Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

// newRootCmd reads env defaults at construction, so load .env before calling it.
func newRootCmd(show func(image.Image, string) error) *cobra.Command {
	var (
		cfg     pipeline.Config
		comma   string
		summary bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "accidentplot",
		Short: "Scatter plot of accident coordinates from a CSV file",
		Long: `accidentplot loads a CSV of traffic-accident records, takes the X and Y
coordinate columns and draws them as a scatter plot, either in a window or to a file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			c, err := parseDelimiter(comma)
			if err != nil {
				return err
			}
			cfg.Comma = c

			p := pipeline.NewPipeline(log, show)
			if summary {
				p.Report = func(s stats.Summary) { s.Print(os.Stdout) }
			}
			return p.Run(cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.Input, "input", "i", envOr("ACCIDENTPLOT_INPUT", defaultInput), "path to the CSV file")
	flags.StringVar(&comma, "delimiter", ",", "field delimiter")
	flags.StringVar(&cfg.XCol, "x-col", envOr("ACCIDENTPLOT_X_COL", defaultXCol), "column holding X coordinates")
	flags.StringVar(&cfg.YCol, "y-col", envOr("ACCIDENTPLOT_Y_COL", defaultYCol), "column holding Y coordinates")
	flags.Float64Var(&cfg.PointRadius, "point-size", 0, "marker radius in points (0 for the default)")
	flags.StringVarP(&cfg.Output, "output", "o", "", "write the plot to this file (png, svg, pdf) instead of opening a window")
	flags.IntVar(&cfg.Width, "width", 0, "plot width in pixels (0 for the default)")
	flags.IntVar(&cfg.Height, "height", 0, "plot height in pixels (0 for the default)")
	flags.StringVar(&cfg.Title, "title", "", "plot title")
	flags.BoolVar(&summary, "summary", false, "print coordinate statistics before plotting")
	flags.BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")

	return rootCmd
}

func parseDelimiter(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
