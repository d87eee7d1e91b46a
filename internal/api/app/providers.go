package app

import "net/http"

func (s *Server) listModelsHandler(w http.ResponseWriter, r *http.Request) {
	models, err := s.Provider.ListModels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "provider": "ok"}
	if err := s.Provider.Test(r.Context()); err != nil {
		status["provider"] = err.Error()
	}
	writeJSON(w, http.StatusOK, status)
}
