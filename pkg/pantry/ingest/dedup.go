package ingest

import (
	"context"
	"strconv"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/cognicore/pantry/pkg/pantry/store"
)

// Deduper answers "was this line already stored for this source?" with a
// Bloom filter in front of the store. Negatives are answered from memory;
// positives are confirmed against the store.
type Deduper struct {
	filter *bloom.BloomFilter
	store  store.Store
	warmed map[string]bool
}

// NewDeduper creates a deduper sized for n expected lines with the given
// false positive rate.
func NewDeduper(s store.Store, n uint, fpRate float64) *Deduper {
	return &Deduper{
		filter: bloom.NewWithEstimates(n, fpRate),
		store:  s,
		warmed: make(map[string]bool),
	}
}

// Warm loads the fingerprints already stored for source. It runs once per
// source.
func (d *Deduper) Warm(ctx context.Context, source string) error {
	if d.warmed[source] {
		return nil
	}
	records, err := d.store.ListBySource(ctx, source)
	if err != nil {
		return err
	}
	for _, r := range records {
		d.Mark(source, r.Fingerprint)
	}
	d.warmed[source] = true
	return nil
}

// Seen reports whether fp was stored (or marked) for source.
func (d *Deduper) Seen(ctx context.Context, source string, fp uint64) (bool, error) {
	if !d.filter.TestString(key(source, fp)) {
		return false, nil
	}
	return d.store.HasFingerprint(ctx, source, fp)
}

// Mark records fp for source.
func (d *Deduper) Mark(source string, fp uint64) {
	d.filter.AddString(key(source, fp))
}

// EstimatedCount returns the approximate number of marked lines.
func (d *Deduper) EstimatedCount() uint {
	return uint(d.filter.ApproximatedSize())
}

func key(source string, fp uint64) string {
	return source + "\x00" + strconv.FormatUint(fp, 16)
}
