// Package metrics counts what the parser recognizes, for spotting vocabulary
// gaps across a corpus of recipe pages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognicore/pantry/pkg/pantry/parser"
)

// Field labels for pantry_fields_extracted_total.
const (
	FieldAmount      = "amount"
	FieldUnit        = "unit"
	FieldSize        = "size"
	FieldPreparation = "preparation"
	FieldComment     = "comment"
	FieldNameOnly    = "name_only"
)

// Collector owns a private registry so several collectors can coexist in tests.
type Collector struct {
	registry *prometheus.Registry
	lines    prometheus.Counter
	fields   *prometheus.CounterVec
	units    *prometheus.CounterVec
}

// New creates a collector with its metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pantry_lines_parsed_total",
			Help: "Ingredient lines parsed",
		}),
		fields: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantry_fields_extracted_total",
				Help: "Ingredient fields recognized, by field",
			},
			[]string{"field"},
		),
		units: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantry_units_total",
				Help: "Recognized units, by canonical unit and class",
			},
			[]string{"unit", "class"},
		),
	}
	c.registry.MustRegister(c.lines, c.fields, c.units)
	return c
}

// Observe records one parse result.
func (c *Collector) Observe(ing parser.Ingredient) {
	c.lines.Inc()

	found := false
	if ing.Amount != nil {
		found = true
		c.fields.WithLabelValues(FieldAmount).Inc()
		if ing.Amount.Unit != "" {
			c.fields.WithLabelValues(FieldUnit).Inc()
			c.units.WithLabelValues(ing.Amount.Unit, string(ing.Amount.UnitClass)).Inc()
		}
	}
	if ing.Size != "" {
		found = true
		c.fields.WithLabelValues(FieldSize).Inc()
	}
	if ing.Preparation != "" {
		found = true
		c.fields.WithLabelValues(FieldPreparation).Inc()
	}
	if ing.Comment != "" {
		found = true
		c.fields.WithLabelValues(FieldComment).Inc()
	}
	if !found {
		c.fields.WithLabelValues(FieldNameOnly).Inc()
	}
}

// Gatherer exposes the registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes the metrics in the node-exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
