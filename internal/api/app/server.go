package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	logging "github.com/ipfs/go-log/v2"

	"github.com/Arhan13/codegen/internal/domain"
	"github.com/Arhan13/codegen/internal/ports"
	"github.com/Arhan13/codegen/internal/usecase/exporter"
	"github.com/Arhan13/codegen/internal/usecase/generator"
)

var log = logging.Logger("api")

type Server struct {
	Generator     *generator.Service
	Exporter      *exporter.Service
	Components    ports.ComponentRepository
	Localizations ports.LocalizationRepository
	Conversations ports.ConversationRepository
	Provider      ports.Provider
}

func NewServer(gen *generator.Service, exp *exporter.Service, components ports.ComponentRepository, localizations ports.LocalizationRepository, conversations ports.ConversationRepository, provider ports.Provider) *Server {
	return &Server{
		Generator:     gen,
		Exporter:      exp,
		Components:    components,
		Localizations: localizations,
		Conversations: conversations,
		Provider:      provider,
	}
}

// Router builds the full route table under /api.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/components", s.createComponentHandler).Methods("POST")
	api.HandleFunc("/components", s.listComponentsHandler).Methods("GET")
	api.HandleFunc("/components/{id}", s.getComponentHandler).Methods("GET")
	api.HandleFunc("/components/{id}", s.deleteComponentHandler).Methods("DELETE")
	api.HandleFunc("/components/{id}/regenerate", s.regenerateComponentHandler).Methods("POST")
	api.HandleFunc("/components/{id}/preview", s.previewHandler).Methods("GET")
	api.HandleFunc("/components/{id}/conversation", s.getConversationHandler).Methods("GET")
	api.HandleFunc("/components/{id}/conversation", s.putConversationHandler).Methods("PUT")

	api.HandleFunc("/localizations", s.listLocalizationsHandler).Methods("GET")
	api.HandleFunc("/localizations/{locale}", s.localeMapHandler).Methods("GET")
	api.HandleFunc("/localizations/key/{key}", s.deleteKeyHandler).Methods("DELETE")

	api.HandleFunc("/export/{locale}", s.exportHandler).Methods("GET")

	api.HandleFunc("/models", s.listModelsHandler).Methods("GET")
	api.HandleFunc("/health", s.healthHandler).Methods("GET")

	return r
}

// Serve starts the HTTP server on the given port and blocks.
func (s *Server) Serve(port int) error {
	h := handlers.CombinedLoggingHandler(logWriter{}, setJSONHeaders(s.Router()))
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      h,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}
	log.Infof("listening on %s", srv.Addr)
	return srv.ListenAndServe()
}

type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	log.Debug(string(p))
	return len(p), nil
}

func setJSONHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		h.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to statuses and hides internal detail for
// not-found rows.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		msg = "not found"
	case errors.Is(err, domain.ErrInvalidLocale):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
