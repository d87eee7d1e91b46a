package httpclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/domain"
)

const setJSON = `{"save_btn":{"en":"Save","es":"Guardar","fr":"Enregistrer","de":"Speichern","ja":"保存","zh":"保存"}}`

func TestParseTranslations(t *testing.T) {
	want := map[string]domain.TranslationSet{
		"save_btn": {EN: "Save", ES: "Guardar", FR: "Enregistrer", DE: "Speichern", JA: "保存", ZH: "保存"},
	}

	tests := []struct {
		name    string
		content string
	}{
		{"bare object", setJSON},
		{"translations wrapper", `{"translations":` + setJSON + `}`},
		{"fenced code block", "```json\n" + setJSON + "\n```"},
		{"surrounding prose", "Here are the translations:\n" + setJSON + "\nLet me know if you need more."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranslations(tt.content)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestParseTranslationsInvalid(t *testing.T) {
	for _, content := range []string{"", "not json at all", "[1,2,3]"} {
		_, err := parseTranslations(content)
		require.Error(t, err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no fence", "const A = () => <div/>;", "const A = () => <div/>;"},
		{"fence with language", "```jsx\nconst A = () => <div/>;\n```", "const A = () => <div/>;"},
		{"fence without language", "```\nconst A = 1;\n```", "const A = 1;"},
		{"prose stays when not fenced at start", "see below\n```jsx\ncode\n```", "see below\n```jsx\ncode\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripCodeFence(tt.content))
		})
	}
}

func TestOpenRouterURL(t *testing.T) {
	require.Equal(t, "https://openrouter.ai/api/v1/models", openRouterURL("https://openrouter.ai", "/models"))
	require.Equal(t, "https://openrouter.ai/api/v1/models", openRouterURL("https://openrouter.ai/api/v1/", "/models"))
	require.Equal(t, "https://proxy.example.com/api/v1/chat/completions", openRouterURL("https://proxy.example.com/api/v1", "/chat/completions"))
}
