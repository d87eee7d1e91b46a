package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/domain"
	"github.com/Arhan13/codegen/internal/ports"
)

type noTemplates struct{}

func (noTemplates) GetEffective(ctx context.Context, scope string, refID *int64, typ, role string) (*domain.Template, error) {
	return nil, nil
}
func (noTemplates) Upsert(ctx context.Context, t *domain.Template) error { return nil }

type fixedTemplate struct{ body string }

func (f fixedTemplate) GetEffective(ctx context.Context, scope string, refID *int64, typ, role string) (*domain.Template, error) {
	return &domain.Template{Body: f.body}, nil
}
func (fixedTemplate) Upsert(ctx context.Context, t *domain.Template) error { return nil }

func TestRenderBuiltinTranslateBatch(t *testing.T) {
	r := New(noTemplates{})
	data := ports.PromptData{
		Items:   []ports.TranslateItem{{Key: "save_btn", Context: "button"}, {Key: "hint", Context: "content"}},
		Locales: domain.SupportedLocales,
	}

	system, err := r.Render(context.Background(), "global", nil, "translate_batch", "system", data)
	require.NoError(t, err)
	require.Contains(t, system, "Return only JSON")

	user, err := r.Render(context.Background(), "global", nil, "translate_batch", "user", data)
	require.NoError(t, err)
	require.Contains(t, user, "key: save_btn context: button")
	require.Contains(t, user, "key: hint context: content")
	for _, l := range domain.SupportedLocales {
		require.Contains(t, user, l)
	}
}

func TestRenderBuiltinGenerate(t *testing.T) {
	r := New(noTemplates{})
	data := ports.PromptData{Name: "LoginForm", Prompt: "a login form", Source: "old source"}

	user, err := r.Render(context.Background(), "global", nil, "generate_component", "user", data)
	require.NoError(t, err)
	require.Contains(t, user, "a login form")
	require.Contains(t, user, "old source")

	// Without existing source the modify section is omitted.
	user, err = r.Render(context.Background(), "global", nil, "generate_component", "user", ports.PromptData{Prompt: "x"})
	require.NoError(t, err)
	require.NotContains(t, user, "current source")
}

func TestRenderTemplateOverride(t *testing.T) {
	r := New(fixedTemplate{body: "custom: {{.Prompt}}"})
	out, err := r.Render(context.Background(), "global", nil, "generate_component", "user", ports.PromptData{Prompt: "hi"})
	require.NoError(t, err)
	require.Equal(t, "custom: hi", out)
}
