package ports

import (
	"github.com/Arhan13/codegen/internal/domain"
)

// Extractor finds localization call sites in generated component source.
// Implementations must return references in first-seen order with
// duplicate keys removed (first occurrence wins), and an empty slice for
// source without call sites. Pure: no I/O.
type Extractor interface {
	Name() string
	Extract(source string) []domain.ExtractedReference
}
