package factory

import (
	"github.com/Arhan13/codegen/internal/adapters/llm/httpclient"
	"github.com/Arhan13/codegen/internal/config"
	"github.com/Arhan13/codegen/internal/ports"
)

// FromConfig returns an HTTP-backed provider for the configured service.
func FromConfig(p config.ProviderConfig) (ports.Provider, bool) {
	switch p.Type {
	case "openrouter", "ollama":
		return httpclient.New(p.Type, p.APIKey, p.BaseURL, p.Model), true
	}
	return nil, false
}
