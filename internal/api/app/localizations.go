package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) listLocalizationsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := s.Localizations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) localeMapHandler(w http.ResponseWriter, r *http.Request) {
	texts, err := s.Localizations.GetByLocale(r.Context(), mux.Vars(r)["locale"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, texts)
}

func (s *Server) deleteKeyHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Localizations.DeleteByKey(r.Context(), mux.Vars(r)["key"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
