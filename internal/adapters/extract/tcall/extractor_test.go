package tcall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/domain"
)

func keysOf(refs []domain.ExtractedReference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Key)
	}
	return out
}

func TestExtract(t *testing.T) {
	e := New()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "single quoted",
			source: "<button>{t('save_document')}</button>",
			want:   []string{"save_document"},
		},
		{
			name:   "double quoted",
			source: `<h1>{t("page_title")}</h1>`,
			want:   []string{"page_title"},
		},
		{
			name:   "backtick quoted",
			source: "<span>{t(`greeting_text`)}</span>",
			want:   []string{"greeting_text"},
		},
		{
			name:   "mixed styles and whitespace",
			source: "t('a') t( \"b\" ) t( `c` )",
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "duplicates keep first occurrence only",
			source: "t('save_btn') <p>{t('note')}</p> t('save_btn') t(\"save_btn\")",
			want:   []string{"save_btn", "note"},
		},
		{
			name:   "keys with spaces and punctuation accepted as-is",
			source: "t('Hello, world!')",
			want:   []string{"Hello, world!"},
		},
		{
			name:   "no call sites",
			source: "<div>plain text, no translation calls</div>",
			want:   []string{},
		},
		{
			name:   "empty source",
			source: "",
			want:   []string{},
		},
		{
			name:   "unbalanced call ignored",
			source: "t('missing_close",
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := e.Extract(tt.source)
			require.Equal(t, tt.want, keysOf(refs))
			for _, r := range refs {
				require.Equal(t, r.Key, r.Fallback)
				require.NotEmpty(t, r.Context)
			}
		})
	}
}

func TestExtractOrderPreserved(t *testing.T) {
	e := New()
	src := "t('third_seen_later') t('first') t('second') t('first')"
	require.Equal(t, []string{"third_seen_later", "first", "second"}, keysOf(e.Extract(src)))
}

// The scanner stops at the first matching quote character, so an escaped
// quote of the same style truncates the key. Locked in deliberately.
func TestExtractNaiveQuoteTruncation(t *testing.T) {
	e := New()
	refs := e.Extract(`t('can\'t_stop')`)
	require.Equal(t, []string{`can\`}, keysOf(refs))

	// A different quoting style around the same text is unaffected.
	refs = e.Extract(`t("can't_stop")`)
	require.Equal(t, []string{"can't_stop"}, keysOf(refs))
}

func TestExtractDeterministic(t *testing.T) {
	e := New()
	src := "<button onClick={h}>{t('a')}</button> <input placeholder={t('b')} />"
	first := e.Extract(src)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, e.Extract(src))
	}
}
