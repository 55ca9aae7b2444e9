package main

import (
	"encoding/json"

	"github.com/cognicore/pantry/pkg/pantry/ingest"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	comp, err := deps.loadComponents(c.Vocab)
	if err != nil {
		return err
	}

	lines := c.Lines
	if len(lines) == 0 {
		lines, err = ingest.ReadLines(deps.Stdin)
		if err != nil {
			return err
		}
	}

	parsed, err := comp.Parser.ParseAll(deps.Ctx, lines, c.Concurrency)
	if err != nil {
		return err
	}

	return writeJSON(deps, parsed, c.Pretty)
}

func writeJSON(deps *Dependencies, v any, pretty bool) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
