package tcall

import (
	"regexp"

	"github.com/Arhan13/codegen/internal/domain"
)

// Extractor scans raw source text for t('...') call sites. It is a regex
// scanner, not a parser: the literal ends at the first matching quote
// character, so a key containing an escaped quote of the same style is
// truncated. Known limitation, kept on purpose.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Name() string { return "tcall" }

// callRE matches t(<quoted-string>) with single, double, or backtick
// quoting. One capture group per quoting style. The literal ends at the
// first quote of the same style, so the closing paren is not required;
// this is what truncates keys containing an escaped same-style quote.
var callRE = regexp.MustCompile(`t\(\s*(?:'([^']+)'|"([^"]+)"|` + "`([^`]+)`" + `)`)

// Extract returns the deduplicated references in first-seen order. Any
// captured string is accepted as a key, including ones with spaces or
// punctuation; zero matches yields an empty slice.
func (e *Extractor) Extract(source string) []domain.ExtractedReference {
	matches := callRE.FindAllStringSubmatchIndex(source, -1)
	refs := make([]domain.ExtractedReference, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		key := capturedKey(source, m)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		refs = append(refs, domain.ExtractedReference{
			Key:      key,
			Fallback: key,
			Context:  Classify(source, m[0]),
		})
	}
	return refs
}

// capturedKey picks whichever quoting-style group matched.
func capturedKey(source string, m []int) string {
	for g := 1; g <= 3; g++ {
		if m[2*g] >= 0 {
			return source[m[2*g]:m[2*g+1]]
		}
	}
	return ""
}
