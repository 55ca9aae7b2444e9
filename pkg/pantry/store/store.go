package store

import (
	"context"
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/pantry/pkg/pantry/parser"
)

// Store persists parsed ingredient lines.
type Store interface {
	Close() error

	// PutRecord inserts or updates a record keyed by (Source, Fingerprint) and
	// returns the stored version. A record without ID gets a new one.
	PutRecord(ctx context.Context, r Record) (Record, error)
	GetRecord(ctx context.Context, id string) (Record, error)
	ListBySource(ctx context.Context, source string) ([]Record, error)
	HasFingerprint(ctx context.Context, source string, fp uint64) (bool, error)

	// UnitCounts returns canonical unit -> number of records. Records without
	// a unit are counted under "".
	UnitCounts(ctx context.Context) (map[string]int64, error)
}

// Record is one parsed ingredient line and where it came from.
type Record struct {
	ID          string
	Source      string // recipe URL or file name
	Position    int    // index of the line in its source
	Fingerprint uint64
	Ingredient  parser.Ingredient
	CreatedAt   time.Time
}

// Unit returns the record's canonical unit, or "".
func (r Record) Unit() string {
	if r.Ingredient.Amount == nil {
		return ""
	}
	return r.Ingredient.Amount.Unit
}

// Fingerprint hashes a raw line after trimming and NFC normalization, so the
// same line typed with decomposed umlauts dedups against the precomposed one.
func Fingerprint(line string) uint64 {
	return xxhash.Sum64String(norm.NFC.String(strings.TrimSpace(line)))
}

var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a new lexically sortable record ID.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Now(), idEntropy).String()
}
