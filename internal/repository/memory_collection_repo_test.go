package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCollectionRepo(t *testing.T) {
	repo := NewMemoryCollectionRepo()

	t.Run("missing collection loads as nil", func(t *testing.T) {
		payload, err := repo.Load("products")
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("save then load", func(t *testing.T) {
		require.NoError(t, repo.Save("products", []byte(`[{"id":"a"}]`)))

		payload, err := repo.Load("products")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a"}]`, string(payload))
	})

	t.Run("save rewrites the whole collection", func(t *testing.T) {
		require.NoError(t, repo.Save("products", []byte(`[]`)))

		payload, err := repo.Load("products")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(payload))
	})

	t.Run("stored blob is isolated from caller buffers", func(t *testing.T) {
		buf := []byte(`[1]`)
		require.NoError(t, repo.Save("categories", buf))
		buf[1] = '9'

		payload, err := repo.Load("categories")
		require.NoError(t, err)
		assert.Equal(t, "[1]", string(payload))
	})

	t.Run("names are sorted", func(t *testing.T) {
		names, err := repo.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"categories", "products"}, names)
	})
}
