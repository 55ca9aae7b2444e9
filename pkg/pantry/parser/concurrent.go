package parser

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used by ParseAll when concurrency <= 0.
const DefaultConcurrency = 4

// ParseAll parses lines on up to concurrency goroutines. Results keep input
// order. A nil slice yields nil. The only error is ctx.Err().
func (p *Parser) ParseAll(ctx context.Context, lines []string, concurrency int) ([]Ingredient, error) {
	if lines == nil {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	out := make([]Ingredient, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.Parse(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
