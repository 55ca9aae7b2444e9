package main

import (
	"fmt"
	"sort"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	s, err := deps.openStore(c.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	counts, err := s.UnitCounts(deps.Ctx)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'pantry import' to add some.")
		return nil
	}

	unitNames := make([]string, 0, len(counts))
	for u := range counts {
		unitNames = append(unitNames, u)
	}
	sort.Slice(unitNames, func(i, j int) bool {
		if counts[unitNames[i]] != counts[unitNames[j]] {
			return counts[unitNames[i]] > counts[unitNames[j]]
		}
		return unitNames[i] < unitNames[j]
	})

	for _, u := range unitNames {
		label := u
		if label == "" {
			label = "(none)"
		}
		fmt.Fprintf(deps.Stdout, "%-14s %d\n", label, counts[u])
	}
	return nil
}
