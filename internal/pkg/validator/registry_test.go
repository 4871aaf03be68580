package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	Register(registry, testItemSchema)
	Register(registry, testTagSchema)

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"item", "tag"}, registry.Names())
	})

	t.Run("returns the typed record", func(t *testing.T) {
		rec, err := registry.Validate(map[string]any{"label": "solo"}, "tag")
		require.NoError(t, err)

		tag, ok := rec.(testTag)
		require.True(t, ok)
		assert.Equal(t, "solo", tag.Label)
	})

	t.Run("returns the report on failure", func(t *testing.T) {
		rec, err := registry.Validate(map[string]any{}, "tag")
		require.Error(t, err)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Equal(t, "tag", ExtractReport(err).Schema)
	})

	t.Run("unknown schema", func(t *testing.T) {
		rec, err := registry.Validate(map[string]any{}, "widget")
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, ErrUnknownSchema)
		assert.Nil(t, ExtractReport(err))
	})
}
