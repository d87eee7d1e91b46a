package tcall

import (
	"strings"

	"github.com/Arhan13/codegen/internal/domain"
)

// contextWindow is the number of characters inspected on each side of a
// call site when guessing its context.
const contextWindow = 50

// Classify infers a context label from the textual neighborhood of the
// call site at offset. Markers are tested in fixed priority order on the
// lowercased window, so the result is deterministic for a given source and
// offset. It is a heuristic over raw text: the word "button" inside an
// unrelated string still classifies as button. Accepted imprecision; the
// label only steers translation tone.
func Classify(source string, offset int) string {
	start := offset - contextWindow
	if start < 0 {
		start = 0
	}
	end := offset + contextWindow
	if end > len(source) {
		end = len(source)
	}
	window := strings.ToLower(source[start:end])

	switch {
	case strings.Contains(window, "button") || strings.Contains(window, "onclick"):
		return domain.ContextButton
	case strings.Contains(window, "placeholder"):
		return domain.ContextPlaceholder
	case containsHeading(window):
		return domain.ContextHeading
	case strings.Contains(window, "label"):
		return domain.ContextLabel
	case strings.Contains(window, "<p") || strings.Contains(window, "<span"):
		return domain.ContextContent
	default:
		return domain.ContextGeneral
	}
}

func containsHeading(window string) bool {
	for _, tag := range []string{"<h1", "<h2", "<h3", "<h4", "<h5", "<h6"} {
		if strings.Contains(window, tag) {
			return true
		}
	}
	return false
}
