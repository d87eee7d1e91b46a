package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"

	"github.com/Arhan13/codegen/internal/domain"
	"github.com/Arhan13/codegen/internal/ports"
	"github.com/Arhan13/codegen/internal/usecase/localizer"
)

var log = logging.Logger("generator")

type Deps struct {
	Components    ports.ComponentRepository
	Conversations ports.ConversationRepository
	Prompt        ports.PromptRenderer
	Provider      ports.Provider
	Localizer     *localizer.Service
	Settings      ports.SettingsRepository
	// GenerateTimeout bounds the LLM generation call.
	GenerateTimeout time.Duration
}

// Service turns a natural language request into a persisted component:
// LLM generation, then the localization pipeline, then the manifest saved
// on the component record.
type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

type GenerateArgs struct {
	// ComponentID regenerates an existing component when set.
	ComponentID  string
	Name         string
	Prompt       string
	Model        string
	DemoPropsRaw string
}

type GenerateResult struct {
	Component *domain.Component `json:"component"`
	NewKeys   []string          `json:"new_keys"`
	// Degraded mirrors the pipeline flag: translations fell back to key
	// text for some of the component's keys.
	Degraded bool `json:"degraded"`
}

func (s *Service) Generate(ctx context.Context, a GenerateArgs) (GenerateResult, error) {
	if strings.TrimSpace(a.Prompt) == "" {
		return GenerateResult{}, errors.New("prompt is required")
	}

	var existing *domain.Component
	if a.ComponentID != "" {
		c, err := s.d.Components.Get(ctx, a.ComponentID)
		if err != nil {
			return GenerateResult{}, err
		}
		existing = c
	}

	source, err := s.generateSource(ctx, a, existing)
	if err != nil {
		return GenerateResult{}, err
	}

	pr, err := s.d.Localizer.Process(ctx, source)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Infow("component localized", "keys", len(pr.Keys), "new", len(pr.NewKeys), "degraded", pr.Degraded)

	c := existing
	if c == nil {
		name := a.Name
		if name == "" {
			name = "Untitled component"
		}
		c = &domain.Component{ID: uuid.NewString(), Name: name}
	}
	c.Prompt = a.Prompt
	c.Source = source
	c.Keys = pr.Keys
	if a.DemoPropsRaw != "" {
		c.DemoPropsRaw = a.DemoPropsRaw
	}
	if existing == nil {
		if err := s.d.Components.Create(ctx, c); err != nil {
			return GenerateResult{}, err
		}
	} else {
		if err := s.d.Components.Update(ctx, c); err != nil {
			return GenerateResult{}, err
		}
	}

	if s.d.Settings != nil && a.Model != "" {
		_ = s.d.Settings.Set(ctx, "last_model", a.Model)
	}
	return GenerateResult{Component: c, NewKeys: pr.NewKeys, Degraded: pr.Degraded}, nil
}

func (s *Service) generateSource(ctx context.Context, a GenerateArgs, existing *domain.Component) (string, error) {
	if s.d.Provider == nil {
		return "", errors.New("generation provider not configured")
	}
	data := ports.PromptData{Prompt: a.Prompt, Name: a.Name}
	if existing != nil {
		data.Source = existing.Source
		if data.Name == "" {
			data.Name = existing.Name
		}
	}
	system, err := s.d.Prompt.Render(ctx, "global", nil, "generate_component", "system", data)
	if err != nil {
		return "", err
	}
	user, err := s.d.Prompt.Render(ctx, "global", nil, "generate_component", "user", data)
	if err != nil {
		return "", err
	}
	if s.d.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.d.GenerateTimeout)
		defer cancel()
	}
	out, err := s.d.Provider.Generate(ctx, ports.GenerateParams{
		Model:        a.Model,
		Temperature:  0.2,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Source) == "" {
		return "", errors.New("provider returned empty component source")
	}
	return out.Source, nil
}

// SaveConversation upserts the opaque chat history for a component. The
// client decides when to call it (debounced autosave lives there).
func (s *Service) SaveConversation(ctx context.Context, componentID, messagesRaw string) error {
	if _, err := s.d.Components.Get(ctx, componentID); err != nil {
		return err
	}
	return s.d.Conversations.Upsert(ctx, &domain.Conversation{ComponentID: componentID, MessagesRaw: messagesRaw})
}
