package tcall

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"button markup", "<button>{t('save')}</button>", domain.ContextButton},
		{"click handler", "<div onClick={submit}>{t('go')}</div>", domain.ContextButton},
		{"placeholder attr", `<input placeholder={t('enter_name')} />`, domain.ContextPlaceholder},
		{"heading h1", "<h1>{t('welcome_title')}</h1>", domain.ContextHeading},
		{"heading h3", "<h3 className=\"sub\">{t('section')}</h3>", domain.ContextHeading},
		{"label markup", "<label htmlFor=\"x\">{t('email')}</label>", domain.ContextLabel},
		{"paragraph", "<p>{t('body_text')}</p>", domain.ContextContent},
		{"span", "<span>{t('inline')}</span>", domain.ContextContent},
		{"no markers", "const x = t('misc_value');", domain.ContextGeneral},
		// Priority: button wins over placeholder when both are in the window.
		{"button beats placeholder", `<button placeholder="x">{t('k')}</button>`, domain.ContextButton},
		// Heuristic over raw text: the word button in an unrelated string
		// still classifies as button.
		{"marker word inside string", `const msg = "press the button"; t('k')`, domain.ContextButton},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := strings.Index(tt.source, "t('")
			if offset < 0 {
				offset = strings.Index(tt.source, "t(")
			}
			require.Equal(t, tt.want, Classify(tt.source, offset))
		})
	}
}

func TestClassifyWindowBounds(t *testing.T) {
	// Offsets at the edges of the source must not panic and must still
	// classify from the partial window.
	require.Equal(t, domain.ContextGeneral, Classify("t('k')", 0))
	long := strings.Repeat("x", 200) + "<button>" + "t('k')"
	require.Equal(t, domain.ContextButton, Classify(long, len(long)-6))

	// Marker outside the 50-char window is not seen.
	far := "<button></button>" + strings.Repeat(" ", 80) + "t('k')"
	require.Equal(t, domain.ContextGeneral, Classify(far, len(far)-6))
}

func TestClassifyDeterministic(t *testing.T) {
	src := "<label>{t('a')}</label>"
	offset := strings.Index(src, "t('")
	first := Classify(src, offset)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Classify(src, offset))
	}
}
