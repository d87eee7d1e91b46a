package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arhan13/codegen/internal/usecase/generator"
)

type generateRequest struct {
	Name         string `json:"name"`
	Prompt       string `json:"prompt"`
	Model        string `json:"model"`
	DemoPropsRaw string `json:"demo_props_json"`
}

func (s *Server) createComponentHandler(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not decode request: " + err.Error()})
		return
	}
	res, err := s.Generator.Generate(r.Context(), generator.GenerateArgs{
		Name:         req.Name,
		Prompt:       req.Prompt,
		Model:        req.Model,
		DemoPropsRaw: req.DemoPropsRaw,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) regenerateComponentHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not decode request: " + err.Error()})
		return
	}
	res, err := s.Generator.Generate(r.Context(), generator.GenerateArgs{
		ComponentID:  id,
		Name:         req.Name,
		Prompt:       req.Prompt,
		Model:        req.Model,
		DemoPropsRaw: req.DemoPropsRaw,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) listComponentsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := s.Components.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getComponentHandler(w http.ResponseWriter, r *http.Request) {
	c, err := s.Components.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) deleteComponentHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Components.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
