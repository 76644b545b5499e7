// Package errors wraps github.com/cockroachdb/errors and holds the sentinel
// errors shared by the traitgen packages.
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Construction and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	Mark         = crdb.Mark
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	FlattenHints = crdb.FlattenHints
	GetAllHints  = crdb.GetAllHints
)

// Inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for common failure scenarios
var (
	// Catalog lookups
	ErrUnknownValue     = New("unknown basic value")
	ErrUnknownDimension = New("unknown higher-order dimension")
	ErrUnknownCategory  = New("unknown archetype category")
	ErrEmptyCategory    = New("archetype category has no entries")
	ErrInvalidCatalog   = New("invalid archetype catalog")

	// Score input
	ErrInvalidScores     = New("invalid score mapping")
	ErrUnsupportedFormat = New("unsupported score file format")
)

// CatalogError reports a broken entry in the embedded archetype catalog.
type CatalogError struct {
	Archetype string // Display name of the offending entry
	Field     string // "primary_values", "secondary_pattern", "category"
	Err       error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("archetype %q: invalid %s: %v", e.Archetype, e.Field, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a catalog error that also matches ErrInvalidCatalog.
func NewCatalogError(archetype, field string, err error) error {
	return Mark(&CatalogError{
		Archetype: archetype,
		Field:     field,
		Err:       err,
	}, ErrInvalidCatalog)
}

// IsNotFound checks if error indicates an unknown catalog key
func IsNotFound(err error) bool {
	return IsAny(err, ErrUnknownValue, ErrUnknownDimension, ErrUnknownCategory)
}

// IsInputError checks if error was caused by caller-supplied scores
func IsInputError(err error) bool {
	return IsAny(err, ErrInvalidScores, ErrUnsupportedFormat)
}
