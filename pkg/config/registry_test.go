package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRegistry_Order(t *testing.T) {
	r := &Registry{}
	for _, cat := range []string{"cs.AI", "68Q25", "math.CO", "cs.LG"} {
		assert.True(t, r.AddCategory(cat))
		assert.True(t, r.AddQuery(cat, "query for "+cat))
	}

	entries := r.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "cs.AI", entries[0].Category)
	assert.Equal(t, "68Q25", entries[1].Category)
	assert.Equal(t, "math.CO", entries[2].Category)
	assert.Equal(t, "cs.LG", entries[3].Category)
}

func TestRegistry_CaseInsensitiveCategories(t *testing.T) {
	r := &Registry{}
	assert.True(t, r.AddCategory("cs.AI"))
	assert.False(t, r.AddCategory("CS.ai"), "same category in different casing")

	assert.True(t, r.AddQuery("CS.AI", "transformers"))
	assert.True(t, r.Has("cs.ai"))
	assert.True(t, r.HasQuery("Cs.Ai", "transformers"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_AddQuery(t *testing.T) {
	r := &Registry{}
	r.AddCategory("cs.AI")

	assert.True(t, r.AddQuery("cs.AI", "transformers"))
	assert.False(t, r.AddQuery("cs.AI", "transformers"), "duplicate")
	assert.False(t, r.AddQuery("cs.AI", ""), "empty query")
	assert.False(t, r.AddQuery("cs.LG", "anything"), "category not present")
}

func TestRegistry_RemoveQuery(t *testing.T) {
	r := &Registry{}
	r.AddCategory("cs.AI")
	r.AddQuery("cs.AI", "transformers")
	r.AddQuery("cs.AI", "attention")

	removed, categoryRemoved := r.RemoveQuery("cs.AI", "transformers")
	assert.True(t, removed)
	assert.False(t, categoryRemoved)

	removed, categoryRemoved = r.RemoveQuery("cs.AI", "attention")
	assert.True(t, removed)
	assert.True(t, categoryRemoved, "last query drops the category")
	assert.False(t, r.Has("cs.AI"))

	removed, categoryRemoved = r.RemoveQuery("cs.AI", "attention")
	assert.False(t, removed)
	assert.False(t, categoryRemoved)
}

func TestRegistry_YAML(t *testing.T) {
	t.Run("round trip keeps order", func(t *testing.T) {
		in := "zz.ZZ:\n  - last alphabetically but first in file\ncs.AI:\n  - transformers\n"
		var r Registry
		require.NoError(t, yaml.Unmarshal([]byte(in), &r))

		entries := r.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "zz.ZZ", entries[0].Category)
		assert.Equal(t, "cs.AI", entries[1].Category)

		out, err := yaml.Marshal(&r)
		require.NoError(t, err)
		var r2 Registry
		require.NoError(t, yaml.Unmarshal(out, &r2))
		assert.Equal(t, r.Entries(), r2.Entries())
	})

	t.Run("null is empty", func(t *testing.T) {
		var r Registry
		require.NoError(t, yaml.Unmarshal([]byte("~"), &r))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("duplicate categories rejected", func(t *testing.T) {
		var r Registry
		err := yaml.Unmarshal([]byte("cs.AI:\n  - a\ncs.AI:\n  - b\n"), &r)
		require.Error(t, err)
	})

	t.Run("empty query list not retained", func(t *testing.T) {
		var r Registry
		require.NoError(t, yaml.Unmarshal([]byte("cs.AI: []\n68Q25:\ncs.LG:\n  - kept\n"), &r))
		entries := r.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "cs.LG", entries[0].Category)
	})

	t.Run("empty query string rejected", func(t *testing.T) {
		var r Registry
		err := yaml.Unmarshal([]byte("cs.AI:\n  - transformers\n  - ''\n"), &r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty query")
	})

	t.Run("duplicate queries rejected", func(t *testing.T) {
		var r Registry
		err := yaml.Unmarshal([]byte("cs.AI:\n  - transformers\n  - transformers\n"), &r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate query")
	})

	t.Run("non-mapping rejected", func(t *testing.T) {
		var r Registry
		err := yaml.Unmarshal([]byte("- not\n- a\n- mapping\n"), &r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a mapping")
	})
}

func TestRegistry_JSON(t *testing.T) {
	r := &Registry{}
	r.AddCategory("cs.AI")
	r.AddQuery("cs.AI", "transformers")
	r.AddCategory("68Q25")
	r.AddQuery("68Q25", "circuit complexity")
	r.AddQuery("68Q25", "lower bounds")

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"cs.AI":["transformers"],"68Q25":["circuit complexity","lower bounds"]}`, string(data))
}
