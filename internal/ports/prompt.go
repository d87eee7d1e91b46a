package ports

import "context"

type PromptData struct {
	Prompt  string          // user request for component generation
	Name    string          // component name
	Source  string          // current source when regenerating
	Items   []TranslateItem // keys + contexts for batch translation
	Locales []string        // target locale codes
}

type PromptRenderer interface {
	Render(ctx context.Context, scope string, refID *int64, typ, role string, data PromptData) (string, error)
}
