package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) getConversationHandler(w http.ResponseWriter, r *http.Request) {
	c, err := s.Conversations.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if c == nil {
		writeJSON(w, http.StatusOK, map[string]any{"component_id": mux.Vars(r)["id"], "messages_json": "[]"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) putConversationHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MessagesRaw string `json:"messages_json"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not decode request: " + err.Error()})
		return
	}
	if err := s.Generator.SaveConversation(r.Context(), mux.Vars(r)["id"], req.MessagesRaw); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
