package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/cognicore/pantry/pkg/pantry/ingest"
	"github.com/cognicore/pantry/pkg/pantry/metrics"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	comp, err := deps.loadComponents(c.Vocab)
	if err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	var lines []string
	if c.HTML {
		lines, err = ingest.ExtractHTMLLines(f)
	} else {
		lines, err = ingest.ReadLines(f)
	}
	if err != nil {
		return err
	}

	s, err := deps.openStore(c.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	collector := metrics.New()
	pipeline := ingest.NewPipeline(ingest.Options{
		Parser:      comp.Parser,
		Store:       s,
		Metrics:     collector,
		Logger:      deps.Log,
		Concurrency: c.Concurrency,
	})

	source := c.Source
	if source == "" {
		source = c.File
	}
	result, err := pipeline.Process(deps.Ctx, ingest.Batch{Source: source, Lines: lines})
	if err != nil {
		return err
	}

	if c.MetricsFile != "" {
		if err := collector.WriteTextfile(c.MetricsFile); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d of %d lines from %s (%d duplicates)\n",
		result.Stored, result.Lines, result.Source, result.Duplicates)
	return nil
}
