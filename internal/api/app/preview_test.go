package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/domain"
)

type fakeComponents struct{ byID map[string]*domain.Component }

func (f fakeComponents) Create(ctx context.Context, c *domain.Component) error { return nil }
func (f fakeComponents) Get(ctx context.Context, id string) (*domain.Component, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}
func (f fakeComponents) List(ctx context.Context) ([]*domain.Component, error) { return nil, nil }
func (f fakeComponents) Update(ctx context.Context, c *domain.Component) error { return nil }
func (f fakeComponents) Delete(ctx context.Context, id string) error           { return nil }

type fakeLocalizations struct{ recs map[string]domain.TranslationSet }

func (f fakeLocalizations) CreateIfAbsent(ctx context.Context, rec *domain.LocalizationRecord) (bool, error) {
	return false, nil
}
func (f fakeLocalizations) GetByKey(ctx context.Context, key string) (*domain.LocalizationRecord, error) {
	return nil, nil
}
func (f fakeLocalizations) List(ctx context.Context) ([]*domain.LocalizationRecord, error) {
	return nil, nil
}
func (f fakeLocalizations) GetByLocale(ctx context.Context, locale string) (map[string]string, error) {
	if !domain.ValidLocale(locale) {
		return nil, domain.ErrInvalidLocale
	}
	out := map[string]string{}
	for k, set := range f.recs {
		v, _ := set.ForLocale(locale)
		out[k] = v
	}
	return out, nil
}
func (f fakeLocalizations) DeleteByKey(ctx context.Context, key string) error { return nil }

func previewServer() *Server {
	return &Server{
		Components: fakeComponents{byID: map[string]*domain.Component{
			"c1": {
				ID:     "c1",
				Name:   "Nav",
				Source: "<button>{t('nav_home')}</button>",
				Keys:   []string{"nav_home", "nav_missing"},
			},
		}},
		Localizations: fakeLocalizations{recs: map[string]domain.TranslationSet{
			"nav_home": {EN: "Home", ES: "Inicio"},
		}},
	}
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestPreviewHandler(t *testing.T) {
	s := previewServer()
	rec := doRequest(t, s, http.MethodGet, "/api/components/c1/preview?locale=es")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "es", resp.Locale)
	require.Equal(t, "Inicio", resp.Messages["nav_home"])
	// Lookup is total: unresolved keys fall back to the key itself.
	require.Equal(t, "nav_missing", resp.Messages["nav_missing"])
}

func TestPreviewHandlerDefaultsToEnglish(t *testing.T) {
	s := previewServer()
	rec := doRequest(t, s, http.MethodGet, "/api/components/c1/preview")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "en", resp.Locale)
	require.Equal(t, "Home", resp.Messages["nav_home"])
}

func TestPreviewHandlerInvalidLocale(t *testing.T) {
	s := previewServer()
	rec := doRequest(t, s, http.MethodGet, "/api/components/c1/preview?locale=xx")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewHandlerUnknownComponent(t *testing.T) {
	s := previewServer()
	rec := doRequest(t, s, http.MethodGet, "/api/components/nope/preview?locale=en")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocaleMapHandlerInvalidLocale(t *testing.T) {
	s := previewServer()
	rec := doRequest(t, s, http.MethodGet, "/api/localizations/xx")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
