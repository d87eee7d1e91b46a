package ports

import (
	"context"

	"github.com/Arhan13/codegen/internal/domain"
)

// TranslateItem is one key sent to the translation service, with its
// advisory context label.
type TranslateItem struct {
	Key     string
	Context string
}

type TranslateParams struct {
	Model        string
	Temperature  float64
	SystemPrompt string
	UserPrompt   string
}

// TranslateBatchResult maps each requested key to a full six-locale set.
// Keys absent from the map are treated as not available by the caller.
type TranslateBatchResult struct {
	Translations map[string]domain.TranslationSet
	Raw          string
}

type GenerateParams struct {
	Model        string
	Temperature  float64
	SystemPrompt string
	UserPrompt   string
}

type GenerateResult struct {
	Source string
	Raw    string
}

type ModelInfo struct {
	Name          string
	Description   string
	ContextTokens int
}

// Provider represents a single LLM provider implementation. One batch call
// translates all new keys of a component together; failure fails the whole
// batch and the caller degrades to fallback text.
type Provider interface {
	TranslateBatch(ctx context.Context, items []TranslateItem, p TranslateParams) (TranslateBatchResult, error)
	Generate(ctx context.Context, p GenerateParams) (GenerateResult, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
	Test(ctx context.Context) error
}
