// splitview shows a tree of resizable panes in the terminal. Drag a sash
// with the mouse to resize the panes on either side of it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/drake/splitview/config"
	"github.com/drake/splitview/debug"
	"github.com/drake/splitview/geometry"
	"github.com/drake/splitview/splitview"
	"github.com/drake/splitview/telemetry"
	"github.com/drake/splitview/ui/layout"
	"github.com/drake/splitview/ui/tui"
)

type options struct {
	layout      string
	orientation string
	minSize     float64
	unclamped   bool
	logFile     string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load(opts.layout)
	if err != nil {
		return err
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	var observers []splitview.Observer

	logPath := opts.logFile
	if logPath == "" && debug.Enabled() {
		logPath = "splitview.log"
	}
	if logPath != "" {
		logger, f, err := debug.OpenLog(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger.Printf("[DEBUG] layout loaded (%s)", describe(opts.layout))
		observers = append(observers, debug.NewDragLogger(logger))
	}

	ctx := context.Background()
	tracer, err := telemetry.NewTracer(ctx)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	if tracer != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := tracer.Shutdown(shutdownCtx); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
		observers = append(observers, tracer)
	}

	return tui.Run(*cfg.Root, tui.Settings{
		MinSize:   opts.minSize,
		Unclamped: opts.unclamped,
		Observer:  splitview.NewMultiObserver(observers...),
	})
}

func parseFlags(args []string) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("splitview", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.layout, "layout", "l", "", "layout file (.lua, .yaml, .yml); default: init.lua in the config dir")
	flagSet.StringVarP(&opts.orientation, "orientation", "o", "", "override the root split orientation (horizontal, vertical)")
	flagSet.Float64Var(&opts.minSize, "min-size", 0, "minimum pane size in cells for splits that set none")
	flagSet.BoolVar(&opts.unclamped, "unclamped", false, "let sashes be dragged past neighbours and the container edge")
	flagSet.StringVar(&opts.logFile, "log", "", "write drag diagnostics to this file")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if opts.minSize < 0 {
		return opts, fmt.Errorf("--min-size must not be negative, got %v", opts.minSize)
	}
	if _, err := geometry.ParseAxis(opts.orientation); err != nil {
		return opts, fmt.Errorf("--orientation: %w", err)
	}
	return opts, nil
}

// applyOverrides applies command line settings that change the layout tree.
func applyOverrides(cfg *layout.Config, opts options) error {
	if cfg.Root == nil {
		return layout.ErrEmptyLayout
	}
	if opts.orientation != "" && cfg.Root.IsSplit() {
		cfg.Root.Orientation = opts.orientation
	}
	return cfg.Validate()
}

func describe(path string) string {
	if path == "" {
		return "default"
	}
	return path
}
