package main

import "fmt"

// Run executes the units command.
func (c *UnitsCmd) Run(deps *Dependencies) error {
	comp, err := deps.loadComponents(c.Vocab)
	if err != nil {
		return err
	}

	for _, surface := range comp.Units.Supported() {
		d, _ := comp.Units.Canonicalize(surface)
		fmt.Fprintf(deps.Stdout, "%-16s %-14s %s\n", surface, d.Canonical, d.Class)
	}
	return nil
}
