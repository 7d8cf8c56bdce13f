package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LLMConfig contains connection details for the LLM generation service.
type LLMConfig struct {
	Host        string  `yaml:"host"`
	Model       string  `yaml:"model"`
	TokenEnv    string  `yaml:"token_env"`
	Temperature float64 `yaml:"temperature"`
	TimeoutSecs int     `yaml:"timeout_secs"`
}

// GeneratorConfig selects and configures the answer generator.
// Type is "composer" (deterministic formatter) or "llm".
type GeneratorConfig struct {
	Type string     `yaml:"type"`
	LLM  *LLMConfig `yaml:"llm,omitempty"`
}

// Config is the root application configuration structure.
type Config struct {
	DBPath          string          `yaml:"db_path"`
	TopK            int             `yaml:"top_k"`
	FallbackMessage string          `yaml:"fallback_message"`
	Generator       GeneratorConfig `yaml:"generator"`
}

// Load reads a config from the specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		DBPath:    "./corpus_db",
		TopK:      2,
		Generator: GeneratorConfig{Type: "composer"},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		cfg.DBPath = "./corpus_db"
	}
	if cfg.TopK == 0 {
		cfg.TopK = 2
	}
	if cfg.Generator.Type == "" {
		cfg.Generator.Type = "composer"
	}
	if cfg.Generator.Type == "llm" && cfg.Generator.LLM != nil {
		if cfg.Generator.LLM.Host == "" {
			cfg.Generator.LLM.Host = "http://localhost:11434/v1"
		}
		if cfg.Generator.LLM.TokenEnv == "" {
			cfg.Generator.LLM.TokenEnv = "OPENAI_API_KEY"
		}
		if cfg.Generator.LLM.TimeoutSecs == 0 {
			cfg.Generator.LLM.TimeoutSecs = 30
		}
	}
}

func validate(cfg *Config) error {
	if cfg.TopK < 1 {
		return fmt.Errorf("config: top_k must be at least 1, got %d", cfg.TopK)
	}
	switch cfg.Generator.Type {
	case "composer":
	case "llm":
		if cfg.Generator.LLM == nil {
			return errors.New("config: generator.llm section required when generator.type is llm")
		}
		if cfg.Generator.LLM.Model == "" {
			return errors.New("config: generator.llm.model is required")
		}
	default:
		return fmt.Errorf("config: unknown generator type %q", cfg.Generator.Type)
	}
	return nil
}
