package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		st, err := Load(writeConfig(t, testConfig))
		require.NoError(t, err)
		cfg := st.Snapshot()
		assert.NoError(t, VerifyAgainstEmbeddedSchema(&cfg))
	})

	t.Run("missing required fields", func(t *testing.T) {
		cfg := Config{Search: &Registry{}, KnownPapers: paperList{}}
		err := VerifyAgainstEmbeddedSchema(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hotword is required")
	})

	t.Run("key never leaks into json", func(t *testing.T) {
		st, err := Load(writeConfig(t, testConfig))
		require.NoError(t, err)
		cfg := st.Snapshot()
		require.Equal(t, "test-secret", cfg.Key)

		// the schema verification path serializes the config, the credential
		// must stay out of that representation
		data, err := json.Marshal(&cfg)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "test-secret")
	})
}
