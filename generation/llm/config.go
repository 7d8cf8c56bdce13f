// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package llm

import (
	"errors"
	"os"
	"strings"
)

// Config holds configuration for the LLM generation service.
type Config struct {
	// Host is the base URL for the chat completion API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	Host string

	// Model is the model identifier to use for answer generation.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string

	// TokenEnv names the environment variable holding the API token.
	// When the variable is unset or empty, "none" is sent, which local
	// OpenAI-compatible services (Ollama, LocalAI, vLLM) accept.
	// Default: "OPENAI_API_KEY"
	TokenEnv string

	// Temperature for generation. Default: 0 (deterministic as far as the
	// service allows).
	Temperature float64

	// Fallback is the answer returned when retrieval produced no texts.
	// Empty means generation.DefaultFallbackMessage.
	Fallback string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat completion service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the generation model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithTokenEnv sets the environment variable consulted for the API token.
func WithTokenEnv(env string) ConfigOption {
	return func(c *Config) {
		c.TokenEnv = env
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// WithFallback sets the answer returned when retrieval produced no texts.
func WithFallback(fallback string) ConfigOption {
	return func(c *Config) {
		c.Fallback = fallback
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		Host:     "http://localhost:11434/v1",
		Model:    "qwen2.5:3b",
		TokenEnv: "OPENAI_API_KEY",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which is required by most
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
	if c.TokenEnv == "" {
		c.TokenEnv = "OPENAI_API_KEY"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("llm config: Host is required")
	}
	if c.Model == "" {
		return errors.New("llm config: Model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("llm config: Temperature must be between 0 and 2")
	}
	return nil
}

// token resolves the API token from the configured environment variable.
func (c *Config) token() string {
	if tok := os.Getenv(c.TokenEnv); tok != "" {
		return tok
	}
	return "none"
}
