package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arhan13/codegen/internal/domain"
)

type previewResponse struct {
	ID           string            `json:"id"`
	Source       string            `json:"source"`
	Locale       string            `json:"locale"`
	Messages     map[string]string `json:"messages"`
	DemoPropsRaw string            `json:"demo_props_json"`
}

// previewHandler returns the component source and a total key -> text map
// for its manifest. Every manifest key gets an entry: unresolved or empty
// translations fall back to the key itself, so the renderer's lookup never
// fails.
func (s *Server) previewHandler(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = domain.LocaleEN
	}
	if !domain.ValidLocale(locale) {
		writeError(w, domain.ErrInvalidLocale)
		return
	}
	c, err := s.Components.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	texts, err := s.Localizations.GetByLocale(r.Context(), locale)
	if err != nil {
		writeError(w, err)
		return
	}
	messages := make(map[string]string, len(c.Keys))
	for _, k := range c.Keys {
		if v, ok := texts[k]; ok && v != "" {
			messages[k] = v
		} else {
			messages[k] = k
		}
	}
	writeJSON(w, http.StatusOK, previewResponse{
		ID:           c.ID,
		Source:       c.Source,
		Locale:       locale,
		Messages:     messages,
		DemoPropsRaw: c.DemoPropsRaw,
	})
}
