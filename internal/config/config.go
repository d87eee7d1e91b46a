/*
Package config implements TOML config file handling for the codegen service.

Normally it will be used by simply passing a config file name to the Load
function to obtain a Config struct.
*/
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the parsed configuration for the service.
type Config struct {
	DB       DbConfig       `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Provider ProviderConfig `toml:"provider"`
	Pipeline PipelineConfig `toml:"pipeline"`
}

// DbConfig contains database configuration.
type DbConfig struct {
	// Path to the SQLite database file.
	File string `toml:"file"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `toml:"port"`
}

// ProviderConfig describes the LLM provider used for both component
// generation and batch translation.
type ProviderConfig struct {
	// Must be 'openrouter' or 'ollama'.
	Type    string `toml:"type"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
}

// PipelineConfig tunes the localization pipeline.
type PipelineConfig struct {
	// Seconds allowed for the single batch translation call before it
	// degrades to fallback text.
	TranslateTimeoutSeconds int `toml:"translate_timeout_seconds"`
	// Seconds allowed for a component generation call.
	GenerateTimeoutSeconds int `toml:"generate_timeout_seconds"`
}

var supportedProviders = []string{"openrouter", "ollama"}

// valid checks if the Config is valid in its current state.
func (c *Config) valid() error {
	ok := false
	for _, p := range supportedProviders {
		if c.Provider.Type == p {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("config: invalid provider.type value. (Must be one of: '%v')", strings.Join(supportedProviders, ", "))
	}
	if len(c.DB.File) == 0 {
		return errors.New("config: missing database.file value")
	}
	if c.Server.Port < 0 {
		return errors.New("config: server.port is invalid")
	}
	if c.Pipeline.TranslateTimeoutSeconds <= 0 {
		return errors.New("config: pipeline.translate_timeout_seconds must be positive")
	}
	if c.Pipeline.GenerateTimeoutSeconds <= 0 {
		return errors.New("config: pipeline.generate_timeout_seconds must be positive")
	}
	return nil
}

// Default returns a Config with usable default values.
func Default() Config {
	return Config{
		DB: DbConfig{
			File: filepath.FromSlash("data/codegen.db"),
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Provider: ProviderConfig{
			Type:    "ollama",
			BaseURL: "",
			Model:   "llama3.1",
		},
		Pipeline: PipelineConfig{
			TranslateTimeoutSeconds: 30,
			GenerateTimeoutSeconds:  120,
		},
	}
}

// Load reads config from a TOML file and checks its validity.
func Load(file string) (Config, error) {
	conf := Default()
	_, err := toml.DecodeFile(file, &conf)
	if err != nil {
		return conf, err
	}

	if err = conf.valid(); err != nil {
		return conf, err
	}

	return conf, nil
}
