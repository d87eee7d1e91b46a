package i18njson

import (
	"encoding/json"

	"github.com/Arhan13/codegen/internal/ports"
)

// Exporter writes a flat key -> text JSON object, the shape i18next-style
// runtimes load per locale.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "i18njson" }

func (e *Exporter) Export(locale string, items []ports.ExportItem) ([]byte, error) {
	out := make(map[string]string, len(items))
	for _, it := range items {
		v := it.Text
		if v == "" {
			v = it.Key
		}
		out[it.Key] = v
	}
	return json.MarshalIndent(out, "", "  ")
}
