package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrapf(ErrUnknownValue, "code %q", "XYZ")

	assert.Contains(t, wrapped.Error(), `code "XYZ"`)
	assert.True(t, Is(wrapped, ErrUnknownValue))
	assert.False(t, Is(wrapped, ErrUnknownCategory))
}

func TestCatalogError(t *testing.T) {
	err := NewCatalogError("Batman", "primary_values", Wrapf(ErrUnknownValue, "code %q", "SEO"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `archetype "Batman"`)
	assert.Contains(t, err.Error(), "primary_values")
	assert.True(t, Is(err, ErrInvalidCatalog))
	assert.True(t, Is(err, ErrUnknownValue))

	var ce *CatalogError
	require.True(t, As(err, &ce))
	assert.Equal(t, "Batman", ce.Archetype)
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
		inputErr bool
	}{
		{"unknown value", Wrap(ErrUnknownValue, "lookup"), true, false},
		{"unknown category", ErrUnknownCategory, true, false},
		{"invalid scores", Wrap(ErrInvalidScores, "decode"), false, true},
		{"unsupported format", ErrUnsupportedFormat, false, true},
		{"empty category", ErrEmptyCategory, false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.inputErr, IsInputError(tt.err))
		})
	}
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrUnknownCategory, "run 'traitgen categories'")

	assert.True(t, Is(err, ErrUnknownCategory))
	assert.Contains(t, FlattenHints(err), "traitgen categories")
}
