package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "i18njson"
	}
	res, err := s.Exporter.ExportLocale(r.Context(), mux.Vars(r)["locale"], format)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+res.Filename+"\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Content)
}
