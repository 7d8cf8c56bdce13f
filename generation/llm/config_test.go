package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "OPENAI_API_KEY", cfg.TokenEnv)
}

func TestConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://localhost:9100"),
		WithModel("gpt-4o-mini"),
		WithTokenEnv("ANSWERIT_LLM_TOKEN"),
		WithTemperature(0.2),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:9100/v1", cfg.Host, "Normalize appends /v1")
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "ANSWERIT_LLM_TOKEN", cfg.TokenEnv)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := NewConfig(WithTemperature(3.5))
		assert.Error(t, cfg.Validate())
	})
}

func TestTokenResolution(t *testing.T) {
	cfg := NewConfig(WithTokenEnv("ANSWERIT_TEST_TOKEN"))

	t.Run("unset env falls back to none", func(t *testing.T) {
		assert.Equal(t, "none", cfg.token())
	})

	t.Run("env value used when set", func(t *testing.T) {
		t.Setenv("ANSWERIT_TEST_TOKEN", "sk-test")
		assert.Equal(t, "sk-test", cfg.token())
	})
}
