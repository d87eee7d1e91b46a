package csv

import (
	"bytes"
	"encoding/csv"

	"github.com/Arhan13/codegen/internal/ports"
)

type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "csv" }

func (e *Exporter) Export(locale string, items []ports.ExportItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"key", "locale", "text"})
	for _, it := range items {
		v := it.Text
		if v == "" {
			v = it.Key
		}
		_ = w.Write([]string{it.Key, locale, v})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
