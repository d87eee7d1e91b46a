package exporter

import (
	"context"
	"errors"
	"sort"

	exreg "github.com/Arhan13/codegen/internal/adapters/exporter/registry"
	"github.com/Arhan13/codegen/internal/ports"
)

type Service struct {
	Localizations ports.LocalizationRepository
	Reg           *exreg.Registry
}

func New(localizations ports.LocalizationRepository, reg *exreg.Registry) *Service {
	return &Service{Localizations: localizations, Reg: reg}
}

type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportLocale renders every stored key for one locale in the requested
// format. Empty translations fall back to the key text in the exporters.
func (s *Service) ExportLocale(ctx context.Context, locale, format string) (ExportResult, error) {
	exp, ok := s.Reg.Get(format)
	if !ok {
		return ExportResult{}, errors.New("no exporter for format: " + format)
	}
	texts, err := s.Localizations.GetByLocale(ctx, locale)
	if err != nil {
		return ExportResult{}, err
	}
	keys := make([]string, 0, len(texts))
	for k := range texts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]ports.ExportItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, ports.ExportItem{Key: k, Text: texts[k]})
	}
	content, err := exp.Export(locale, items)
	if err != nil {
		return ExportResult{}, err
	}
	res := ExportResult{Content: content}
	switch format {
	case "csv":
		res.Filename = locale + ".csv"
		res.ContentType = "text/csv"
	default:
		res.Filename = locale + ".json"
		res.ContentType = "application/json"
	}
	return res, nil
}
