package ingest

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cognicore/pantry/pkg/pantry/metrics"
	"github.com/cognicore/pantry/pkg/pantry/parser"
	"github.com/cognicore/pantry/pkg/pantry/store"
)

// Pipeline orchestrates the full ingestion flow:
// lines → dedup → parse → metrics → store
//
// A Pipeline is not safe for concurrent use; parsing within a batch is
// parallel.
type Pipeline struct {
	parser      *parser.Parser
	store       store.Store
	metrics     *metrics.Collector
	dedup       *Deduper
	log         zerolog.Logger
	concurrency int
}

// Options configures a Pipeline. Metrics may be nil.
type Options struct {
	Parser      *parser.Parser
	Store       store.Store
	Metrics     *metrics.Collector
	Logger      zerolog.Logger
	Concurrency int
	// ExpectedLines sizes the dedup filter.
	ExpectedLines uint
}

// NewPipeline creates an ingestion pipeline with the given components
func NewPipeline(opts Options) *Pipeline {
	if opts.Parser == nil {
		opts.Parser = parser.Default()
	}
	if opts.ExpectedLines == 0 {
		opts.ExpectedLines = 10_000
	}
	return &Pipeline{
		parser:      opts.Parser,
		store:       opts.Store,
		metrics:     opts.Metrics,
		dedup:       NewDeduper(opts.Store, opts.ExpectedLines, 0.01),
		log:         opts.Logger,
		concurrency: opts.Concurrency,
	}
}

// Result summarizes one processed batch.
type Result struct {
	Source     string
	Lines      int
	Stored     int
	Duplicates int
	Records    []store.Record
}

type pendingLine struct {
	position    int
	line        string
	fingerprint uint64
}

// Process parses and stores a batch. Lines already stored for the same source,
// or repeated within the batch, are skipped.
func (p *Pipeline) Process(ctx context.Context, b Batch) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	result := Result{Source: b.Source, Lines: len(b.Lines)}

	if b.Lines == nil {
		p.log.Warn().Str("source", b.Source).Msg("source has no ingredient list")
		return result, nil
	}

	if err := p.dedup.Warm(ctx, b.Source); err != nil {
		return result, errors.Wrap(err, "warm dedup filter")
	}

	// 1. Dedup against the store and within the batch
	pending := make([]pendingLine, 0, len(b.Lines))
	inBatch := make(map[uint64]bool, len(b.Lines))
	for pos, line := range b.Lines {
		fp := store.Fingerprint(line)
		if inBatch[fp] {
			result.Duplicates++
			continue
		}
		seen, err := p.dedup.Seen(ctx, b.Source, fp)
		if err != nil {
			return result, errors.Wrap(err, "dedup lookup")
		}
		inBatch[fp] = true
		if seen {
			result.Duplicates++
			continue
		}
		pending = append(pending, pendingLine{position: pos, line: line, fingerprint: fp})
	}

	// 2. Parse, keeping order
	texts := make([]string, len(pending))
	for i, pl := range pending {
		texts[i] = pl.line
	}
	parsed, err := p.parser.ParseAll(ctx, texts, p.concurrency)
	if err != nil {
		return result, errors.Wrap(err, "parse batch")
	}

	// 3. Observe and store
	for i, ing := range parsed {
		if p.metrics != nil {
			p.metrics.Observe(ing)
		}
		rec, err := p.store.PutRecord(ctx, store.Record{
			Source:      b.Source,
			Position:    pending[i].position,
			Fingerprint: pending[i].fingerprint,
			Ingredient:  ing,
		})
		if err != nil {
			return result, errors.Wrapf(err, "store line %d", pending[i].position)
		}
		p.dedup.Mark(b.Source, rec.Fingerprint)
		result.Records = append(result.Records, rec)
		result.Stored++
	}

	p.log.Info().
		Str("source", b.Source).
		Int("lines", result.Lines).
		Int("stored", result.Stored).
		Int("duplicates", result.Duplicates).
		Msg("batch ingested")

	return result, nil
}
