package main

import (
	"io"

	"github.com/alexisbeaulieu97/boxlab/internal/config"
	"github.com/alexisbeaulieu97/boxlab/internal/logger"
	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/tui"
	"github.com/alexisbeaulieu97/boxlab/internal/ui/components"
)

// appContext carries what every command needs: the loaded configuration
// and a logger that never writes to the terminal the TUI owns.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	closers []io.Closer
}

func loadApp(flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(flags.configPath, flags.configPath != "")
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err,
			"Check the file's keys and values against the documented configuration.")
	}

	app := &appContext{cfg: cfg}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	path := cfg.Logging.File
	if flags.logFile != "" {
		path = flags.logFile
	}

	var writer io.Writer = io.Discard
	if path != "" {
		file, err := logger.OpenFile(path)
		if err != nil {
			return nil, newCommandError("open log file", path, err, "Choose a writable location with --log-file.")
		}
		writer = file
		app.closers = append(app.closers, file)
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: writer})
	if err != nil {
		app.Close()
		return nil, newCommandError("create logger", level, err, "Use one of debug, info, warn or error.")
	}
	app.log = log
	return app, nil
}

// Close releases the log file, if any.
func (a *appContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *appContext) tuiOptions() tui.Options {
	opts := tui.DefaultOptions()
	opts.Scale = components.Scale{
		PxPerColumn: a.cfg.Preview.PxPerColumn,
		PxPerRow:    a.cfg.Preview.PxPerRow,
	}
	opts.Animate = a.cfg.Preview.AnimationEnabled()
	opts.Transition = a.cfg.Preview.Transition()
	opts.Shadow = a.cfg.Preview.ShadowEnabled()
	opts.Layout = tui.Layout(a.cfg.UI.Layout)
	opts.Logger = a.log
	return opts
}

// watchSheet logs the full record of an element every time it changes.
func watchSheet(sheet *style.Sheet, log *logger.Logger) {
	for _, role := range style.Roles() {
		role := role
		cell := sheet.Cell(role)
		cell.Subscribe(func(rec style.Record) {
			log.WithFields(map[string]any{
				"role":       role.String(),
				"revision":   cell.Revision(),
				"padding":    rec.Padding.String(),
				"margin":     rec.Margin.String(),
				"width":      rec.Width.String(),
				"height":     rec.Height.String(),
				"position":   rec.Position.String(),
				"display":    rec.Display.String(),
				"background": rec.Background.String(),
			}).Debug("record changed")
		})
	}
}
