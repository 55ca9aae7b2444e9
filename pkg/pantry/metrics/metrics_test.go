package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/pantry/pkg/pantry/parser"
)

func TestCollector_Observe(t *testing.T) {
	t.Parallel()
	c := New()

	for _, line := range []string{
		"2 cups flour",
		"3-4 large eggs, beaten",
		"milk (whole)",
		"Zucker 300 g",
		"Salz",
	} {
		c.Observe(parser.Parse(line))
	}

	assert.Equal(t, float64(5), testutil.ToFloat64(c.lines))
	assert.Equal(t, float64(3), testutil.ToFloat64(c.fields.WithLabelValues(FieldAmount)))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.fields.WithLabelValues(FieldUnit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.fields.WithLabelValues(FieldSize)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.fields.WithLabelValues(FieldPreparation)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.fields.WithLabelValues(FieldComment)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.fields.WithLabelValues(FieldNameOnly)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.units.WithLabelValues("cup", "volume")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.units.WithLabelValues("gram", "weight")))
}

func TestCollector_SeparateRegistries(t *testing.T) {
	t.Parallel()
	a, b := New(), New()

	a.Observe(parser.Parse("Salz"))

	assert.Equal(t, float64(1), testutil.ToFloat64(a.lines))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.lines))
}

func TestCollector_WriteTextfile(t *testing.T) {
	t.Parallel()
	c := New()
	c.Observe(parser.Parse("2 cups flour"))

	path := filepath.Join(t.TempDir(), "pantry.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, "pantry_lines_parsed_total 1"), text)
	assert.True(t, strings.Contains(text, `pantry_units_total{class="volume",unit="cup"} 1`), text)
}
