package ingest

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cognicore/pantry/pkg/pantry/internalerr"
)

// Batch is the ordered ingredient list of one source, as produced by a site
// adapter. Lines is nil when the source had no ingredient list at all, and
// empty when the list was present but had no entries.
type Batch struct {
	Source string
	Lines  []string
}

// Validate checks if the batch has required fields
func (b *Batch) Validate() error {
	if strings.TrimSpace(b.Source) == "" {
		return errors.Wrap(internalerr.ErrInvalidInput, "batch source is required")
	}
	return nil
}
