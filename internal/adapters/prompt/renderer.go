package prompt

import (
	"bytes"
	"context"
	"text/template"

	"github.com/Arhan13/codegen/internal/ports"
)

type Renderer struct {
	Templates ports.TemplateRepository
}

func New(templates ports.TemplateRepository) *Renderer { return &Renderer{Templates: templates} }

func (r *Renderer) Render(ctx context.Context, scope string, refID *int64, typ, role string, data ports.PromptData) (string, error) {
	// Load effective template from repository; if none, fallback to builtins.
	t, _ := r.Templates.GetEffective(ctx, scope, refID, typ, role)
	body := builtinTemplate(typ, role)
	if t != nil && t.Body != "" {
		body = t.Body
	}
	tpl, err := template.New("prompt").Parse(body)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func builtinTemplate(typ, role string) string {
	if typ == "translate_batch" && role == "system" {
		return "You are a professional UI localization translator. Translate each English key into every requested locale. Use the context label (button, placeholder, heading, label, content, general) to choose appropriate tone and length. Keys are snake_case identifiers; translate their natural-language meaning, not the identifier itself. Return only JSON: an object mapping every key to {\"en\":\"...\",\"es\":\"...\",\"fr\":\"...\",\"de\":\"...\",\"ja\":\"...\",\"zh\":\"...\"}. Include every key exactly once."
	}
	if typ == "translate_batch" && role == "user" {
		return "locales: {{range .Locales}}{{.}} {{end}}\nkeys:\n{{range .Items}}- key: {{.Key}} context: {{.Context}}\n{{end}}"
	}
	if typ == "generate_component" && role == "system" {
		return "You are an expert React developer. Generate a single self-contained functional React component for the user's request. Wrap every piece of user-facing text in a call to the translation function t('snake_case_key') instead of hardcoding it. Use plain JSX with inline styles, no external imports beyond React. Return only the component source code."
	}
	if typ == "generate_component" && role == "user" {
		return "component name: {{.Name}}\nrequest: {{.Prompt}}{{if .Source}}\n\ncurrent source to modify:\n{{.Source}}{{end}}"
	}
	return ""
}
