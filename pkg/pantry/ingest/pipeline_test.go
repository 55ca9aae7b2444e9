package ingest_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/pantry/pkg/pantry/ingest"
	"github.com/cognicore/pantry/pkg/pantry/internalerr"
	"github.com/cognicore/pantry/pkg/pantry/metrics"
	"github.com/cognicore/pantry/pkg/pantry/store/memstore"
)

func newPipeline(s *memstore.Store, c *metrics.Collector) *ingest.Pipeline {
	return ingest.NewPipeline(ingest.Options{
		Store:       s,
		Metrics:     c,
		Logger:      zerolog.Nop(),
		Concurrency: 2,
	})
}

func counterTotal(t *testing.T, g prometheus.Gatherer, name string) float64 {
	t.Helper()
	families, err := g.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestPipeline_Process(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memstore.New()
	c := metrics.New()

	result, err := newPipeline(s, c).Process(ctx, ingest.Batch{
		Source: "limonade",
		Lines:  []string{"Zitronen 5 St.", "Zucker 300 g", "Wasser 100 ml", "Eiswürfel"},
	})
	require.NoError(t, err)

	assert.Equal(t, "limonade", result.Source)
	assert.Equal(t, 4, result.Lines)
	assert.Equal(t, 4, result.Stored)
	assert.Equal(t, 0, result.Duplicates)
	require.Len(t, result.Records, 4)

	for i, r := range result.Records {
		assert.Equal(t, i, r.Position)
		assert.NotEmpty(t, r.ID)
	}
	assert.Equal(t, "Zucker", result.Records[1].Ingredient.Name)
	assert.Equal(t, "gram", result.Records[1].Unit())

	stored, err := s.ListBySource(ctx, "limonade")
	require.NoError(t, err)
	assert.Len(t, stored, 4)

	assert.Equal(t, float64(4), counterTotal(t, c.Gatherer(), "pantry_lines_parsed_total"))
	assert.Equal(t, float64(3), counterTotal(t, c.Gatherer(), "pantry_units_total"))
}

func TestPipeline_DuplicatesWithinBatch(t *testing.T) {
	t.Parallel()

	result, err := newPipeline(memstore.New(), nil).Process(context.Background(), ingest.Batch{
		Source: "recipe-1",
		Lines:  []string{"Salz", "Zucker 300 g", " Salz "},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stored)
	assert.Equal(t, 1, result.Duplicates)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 0, result.Records[0].Position)
	assert.Equal(t, 1, result.Records[1].Position)
}

func TestPipeline_DuplicatesAcrossRuns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memstore.New()
	batch := ingest.Batch{Source: "recipe-1", Lines: []string{"2 cups flour", "1/2 tsp salt"}}

	_, err := newPipeline(s, nil).Process(ctx, batch)
	require.NoError(t, err)

	// a fresh pipeline warms its filter from the store
	result, err := newPipeline(s, nil).Process(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stored)
	assert.Equal(t, 2, result.Duplicates)

	// new lines for the same source are still stored
	batch.Lines = append(batch.Lines, "3-4 large eggs, beaten")
	result, err = newPipeline(s, nil).Process(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stored)
	assert.Equal(t, 2, result.Duplicates)
	assert.Equal(t, 2, result.Records[0].Position)
}

func TestPipeline_NoIngredientList(t *testing.T) {
	t.Parallel()
	s := memstore.New()

	result, err := newPipeline(s, nil).Process(context.Background(), ingest.Batch{Source: "story-page"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Lines)
	assert.Equal(t, 0, result.Stored)
	assert.Nil(t, result.Records)

	result, err = newPipeline(s, nil).Process(context.Background(), ingest.Batch{Source: "empty-list", Lines: []string{}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stored)
}

func TestPipeline_RequiresSource(t *testing.T) {
	t.Parallel()

	_, err := newPipeline(memstore.New(), nil).Process(context.Background(), ingest.Batch{Lines: []string{"Salz"}})
	assert.Equal(t, internalerr.ErrInvalidInput, errors.Cause(err))
}

func TestPipeline_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPipeline(memstore.New(), nil).Process(ctx, ingest.Batch{Source: "recipe-1", Lines: []string{"Salz"}})
	assert.ErrorIs(t, err, context.Canceled)
}
