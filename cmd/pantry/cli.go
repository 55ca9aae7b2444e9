package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cognicore/pantry/pkg/pantry/config"
	"github.com/cognicore/pantry/pkg/pantry/store"
	"github.com/cognicore/pantry/pkg/pantry/store/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    zerolog.Logger

	// OpenStore is replaced in tests.
	OpenStore func(ctx context.Context, path string) (store.Store, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse  ParseCmd  `cmd:"" help:"Parse ingredient lines and print JSON"`
	Import ImportCmd `cmd:"" help:"Parse a file of ingredient lines and store the results"`
	Show   ShowCmd   `cmd:"" help:"Print stored records of a source"`
	Units  UnitsCmd  `cmd:"" help:"List recognized unit spellings"`
	Stats  StatsCmd  `cmd:"" help:"Count stored records per unit"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Lines       []string `arg:"" optional:"" help:"Ingredient lines (read from stdin when omitted)"`
	Vocab       string   `help:"YAML vocabulary extension"`
	Pretty      bool     `help:"Indent JSON output"`
	Concurrency int      `short:"c" default:"4" help:"Parse workers"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File        string `arg:"" type:"existingfile" help:"File with one ingredient per line, or recipe HTML with --html"`
	DB          string `required:"" help:"SQLite database path"`
	Source      string `help:"Source name stored with each line (defaults to the file path)"`
	HTML        bool   `name:"html" help:"Treat the file as recipe HTML"`
	Vocab       string `help:"YAML vocabulary extension"`
	MetricsFile string `help:"Write parse metrics in Prometheus textfile format"`
	Concurrency int    `short:"c" default:"4" help:"Parse workers"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	DB     string `required:"" help:"SQLite database path"`
	Source string `arg:"" help:"Source name"`
	Pretty bool   `help:"Indent JSON output"`
}

// UnitsCmd is the "units" subcommand.
type UnitsCmd struct {
	Vocab string `help:"YAML vocabulary extension"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	DB string `required:"" help:"SQLite database path"`
}

func (d *Dependencies) openStore(path string) (store.Store, error) {
	open := d.OpenStore
	if open == nil {
		open = sqlite.OpenSQLite
	}
	s, err := open(d.Ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %q", path)
	}
	return s, nil
}

func (d *Dependencies) loadComponents(vocabPath string) (*config.Components, error) {
	loader := &config.Loader{VocabularyPath: vocabPath, Logger: &d.Log}
	return loader.Load()
}
