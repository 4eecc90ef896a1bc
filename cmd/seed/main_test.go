package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogue(t *testing.T) {
	t.Run("Built-in catalogue", func(t *testing.T) {
		passages, err := loadCatalogue("")
		require.NoError(t, err)
		require.NotEmpty(t, passages)

		seen := map[string]bool{}
		for _, p := range passages {
			assert.NotEmpty(t, p.ID)
			assert.NotEmpty(t, p.Text)
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("Missing ids are derived from text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"text":"Presión: 32 PSI"},{"id":"x","text":"y"}]`), 0o644))

		passages, err := loadCatalogue(path)
		require.NoError(t, err)
		require.Len(t, passages, 2)
		assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceURL, []byte("Presión: 32 PSI")).String(), passages[0].ID)
		assert.Equal(t, "x", passages[1].ID)
	})

	t.Run("Bad JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

		_, err := loadCatalogue(path)
		assert.Error(t, err)
	})
}
