package ports

import (
	"context"

	"github.com/Arhan13/codegen/internal/domain"
)

// LocalizationRepository is the process-wide store of translation keys.
// CreateIfAbsent must be a single atomic check-and-insert: concurrent
// attempts for the same key yield exactly one record, and an existing
// record is never overwritten through this path.
type LocalizationRepository interface {
	// CreateIfAbsent inserts rec unless a record with rec.Key exists.
	// Returns true when a new record was created. On false, rec is
	// populated with the existing record's values.
	CreateIfAbsent(ctx context.Context, rec *domain.LocalizationRecord) (bool, error)
	// GetByKey returns nil, nil when the key is unknown.
	GetByKey(ctx context.Context, key string) (*domain.LocalizationRecord, error)
	List(ctx context.Context) ([]*domain.LocalizationRecord, error)
	// GetByLocale returns a key -> text mapping for one locale and
	// domain.ErrInvalidLocale for codes outside the supported set.
	GetByLocale(ctx context.Context, locale string) (map[string]string, error)
	DeleteByKey(ctx context.Context, key string) error
}

type ComponentRepository interface {
	Create(ctx context.Context, c *domain.Component) error
	Get(ctx context.Context, id string) (*domain.Component, error)
	List(ctx context.Context) ([]*domain.Component, error)
	Update(ctx context.Context, c *domain.Component) error
	Delete(ctx context.Context, id string) error
}

type ConversationRepository interface {
	Upsert(ctx context.Context, c *domain.Conversation) error
	// Get returns nil, nil when no conversation has been saved yet.
	Get(ctx context.Context, componentID string) (*domain.Conversation, error)
}

type TemplateRepository interface {
	GetEffective(ctx context.Context, scope string, refID *int64, typ, role string) (*domain.Template, error)
	Upsert(ctx context.Context, t *domain.Template) error
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
