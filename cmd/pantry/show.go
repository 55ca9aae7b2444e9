package main

import (
	"fmt"

	"github.com/cognicore/pantry/pkg/pantry/parser"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	s, err := deps.openStore(c.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.ListBySource(deps.Ctx, c.Source)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No records for %s. Use 'pantry import' to add some.\n", c.Source)
		return nil
	}

	out := make([]recordView, 0, len(records))
	for _, r := range records {
		out = append(out, recordView{ID: r.ID, Position: r.Position, Ingredient: r.Ingredient})
	}
	return writeJSON(deps, out, c.Pretty)
}

type recordView struct {
	ID         string            `json:"id"`
	Position   int               `json:"position"`
	Ingredient parser.Ingredient `json:"ingredient"`
}
