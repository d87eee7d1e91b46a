package i18njson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/ports"
)

func TestExport(t *testing.T) {
	e := New()
	out, err := e.Export("es", []ports.ExportItem{
		{Key: "nav_home", Text: "Inicio"},
		{Key: "untranslated_key", Text: ""},
	})
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(out, &m))
	require.Equal(t, "Inicio", m["nav_home"])
	// Empty translations fall back to the key text.
	require.Equal(t, "untranslated_key", m["untranslated_key"])
}
