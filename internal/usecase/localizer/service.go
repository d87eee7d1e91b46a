package localizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/Arhan13/codegen/internal/domain"
	"github.com/Arhan13/codegen/internal/ports"
)

var log = logging.Logger("localizer")

type Deps struct {
	Extractor     ports.Extractor
	Localizations ports.LocalizationRepository
	Prompt        ports.PromptRenderer
	Provider      ports.Provider
	// Model overrides the provider default when set.
	Model string
	// TranslateTimeout bounds the single batch translation call. Zero
	// means no extra bound beyond the caller's context.
	TranslateTimeout time.Duration
}

// Service runs the localization pipeline over generated component source:
// extract call sites, reconcile against the store, translate only the keys
// the store has never seen, persist them, and return the full manifest.
type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

// Result is the manifest of one pipeline run.
type Result struct {
	// Keys is every key the source depends on, pre-existing and new, in
	// first-seen order.
	Keys []string `json:"keys"`
	// NewKeys are the keys persisted by this run.
	NewKeys []string `json:"new_keys"`
	// Degraded is set when translation was unavailable or incomplete and
	// fallback text was persisted for some keys. Non-fatal by contract.
	Degraded bool `json:"degraded"`
	// References carries the extracted call sites with their resolved
	// translation sets.
	References []domain.ExtractedReference `json:"references"`
}

// Process executes the pipeline stages strictly in order. Extraction
// failure aborts the whole call; translation failure degrades to fallback
// text for the missing keys only and never fails the run.
func (s *Service) Process(ctx context.Context, source string) (Result, error) {
	if s.d.Extractor == nil {
		return Result{}, errors.New("extractor is required")
	}
	refs := s.d.Extractor.Extract(source)
	res := Result{Keys: make([]string, 0, len(refs)), NewKeys: []string{}, References: refs}
	if len(refs) == 0 {
		// Zero call sites is a valid terminal state, not an error.
		return res, nil
	}

	// Reconcile: split first-seen keys into known and missing.
	missing := make([]int, 0, len(refs))
	for i := range refs {
		rec, err := s.d.Localizations.GetByKey(ctx, refs[i].Key)
		if err != nil {
			return Result{}, fmt.Errorf("reconcile %q: %w", refs[i].Key, err)
		}
		if rec != nil {
			t := rec.Texts
			refs[i].Translations = &t
		} else {
			missing = append(missing, i)
		}
		res.Keys = append(res.Keys, refs[i].Key)
	}

	if len(missing) == 0 {
		return res, nil
	}

	// TranslateMissing: one batch call covering every unseen key. The
	// whole batch fails together; per-key absence degrades that key only.
	sets, err := s.translateBatch(ctx, refs, missing)
	if err != nil {
		log.Warnw("translation unavailable, falling back to key text", "keys", len(missing), "error", err)
		res.Degraded = true
	}

	// Persist new keys only. The atomic create-if-absent absorbs races
	// with concurrent runs: whoever loses keeps the winner's record.
	for _, i := range missing {
		ref := &refs[i]
		set, ok := sets[ref.Key]
		if !ok {
			set = domain.FallbackSet(ref.Fallback)
			if err == nil {
				log.Warnw("translation response missing key, falling back", "key", ref.Key)
				res.Degraded = true
			}
		}
		rec := &domain.LocalizationRecord{Key: ref.Key, Texts: set}
		created, perr := s.d.Localizations.CreateIfAbsent(ctx, rec)
		if perr != nil {
			return Result{}, fmt.Errorf("persist %q: %w", ref.Key, perr)
		}
		if created {
			res.NewKeys = append(res.NewKeys, ref.Key)
		}
		t := rec.Texts
		ref.Translations = &t
	}
	return res, nil
}

func (s *Service) translateBatch(ctx context.Context, refs []domain.ExtractedReference, missing []int) (map[string]domain.TranslationSet, error) {
	if s.d.Provider == nil {
		return nil, errors.New("translation provider not configured")
	}
	items := make([]ports.TranslateItem, 0, len(missing))
	for _, i := range missing {
		items = append(items, ports.TranslateItem{Key: refs[i].Key, Context: refs[i].Context})
	}
	data := ports.PromptData{Items: items, Locales: domain.SupportedLocales}
	system, err := s.d.Prompt.Render(ctx, "global", nil, "translate_batch", "system", data)
	if err != nil {
		return nil, err
	}
	user, err := s.d.Prompt.Render(ctx, "global", nil, "translate_batch", "user", data)
	if err != nil {
		return nil, err
	}
	if s.d.TranslateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.d.TranslateTimeout)
		defer cancel()
	}
	// At most one attempt per batch; failure degrades, never retries.
	out, err := s.d.Provider.TranslateBatch(ctx, items, ports.TranslateParams{
		Model:        s.d.Model,
		Temperature:  0.0,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return nil, err
	}
	return out.Translations, nil
}
