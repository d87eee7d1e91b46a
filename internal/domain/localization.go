package domain

import "time"

// Supported locale codes. The set is fixed: every localization record
// carries exactly one text column per code.
const (
	LocaleEN = "en"
	LocaleES = "es"
	LocaleFR = "fr"
	LocaleDE = "de"
	LocaleJA = "ja"
	LocaleZH = "zh"
)

// SupportedLocales lists all locale codes in canonical order.
var SupportedLocales = []string{LocaleEN, LocaleES, LocaleFR, LocaleDE, LocaleJA, LocaleZH}

// ValidLocale reports whether code is one of the supported locales.
func ValidLocale(code string) bool {
	for _, l := range SupportedLocales {
		if l == code {
			return true
		}
	}
	return false
}

// Context labels attached to extracted keys. Advisory metadata for
// translation quality only.
const (
	ContextButton      = "button"
	ContextPlaceholder = "placeholder"
	ContextHeading     = "heading"
	ContextLabel       = "label"
	ContextContent     = "content"
	ContextGeneral     = "general"
)

// TranslationSet holds one text per supported locale. Empty string is a
// valid degraded value; a field is never absent.
type TranslationSet struct {
	EN string `json:"en"`
	ES string `json:"es"`
	FR string `json:"fr"`
	DE string `json:"de"`
	JA string `json:"ja"`
	ZH string `json:"zh"`
}

// ForLocale returns the text for the given locale code.
func (s TranslationSet) ForLocale(code string) (string, bool) {
	switch code {
	case LocaleEN:
		return s.EN, true
	case LocaleES:
		return s.ES, true
	case LocaleFR:
		return s.FR, true
	case LocaleDE:
		return s.DE, true
	case LocaleJA:
		return s.JA, true
	case LocaleZH:
		return s.ZH, true
	}
	return "", false
}

// FallbackSet builds the degraded translation set that shows the key text
// itself in every locale.
func FallbackSet(key string) TranslationSet {
	return TranslationSet{EN: key, ES: key, FR: key, DE: key, JA: key, ZH: key}
}

// LocalizationRecord is the durable record for one translation key. Created
// once when a key is first seen anywhere in the system; later sightings are
// no-ops and never overwrite it.
type LocalizationRecord struct {
	ID        int64          `json:"id"`
	Key       string         `json:"key"`
	Texts     TranslationSet `json:"texts"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ExtractedReference is one localization call site found in generated
// source. Ephemeral: produced per extraction run, never persisted directly.
type ExtractedReference struct {
	Key          string          `json:"key"`
	Fallback     string          `json:"fallback"`
	Context      string          `json:"context"`
	Translations *TranslationSet `json:"translations,omitempty"`
}
