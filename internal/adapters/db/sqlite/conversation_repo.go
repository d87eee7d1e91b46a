package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Arhan13/codegen/internal/domain"
)

type ConversationRepo struct{ *Repo }

func NewConversationRepo(db *sql.DB) *ConversationRepo { return &ConversationRepo{NewRepo(db)} }

func (r *ConversationRepo) Upsert(ctx context.Context, c *domain.Conversation) error {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("conversations").Columns("component_id", "messages_json", "updated_at").
		Values(c.ComponentID, c.MessagesRaw, now).
		Suffix("ON CONFLICT(component_id) DO UPDATE SET messages_json=excluded.messages_json, updated_at=excluded.updated_at")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *ConversationRepo) Get(ctx context.Context, componentID string) (*domain.Conversation, error) {
	q := r.SQ.Select("component_id", "messages_json", "updated_at").From("conversations").
		Where(sq.Eq{"component_id": componentID}).Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var c domain.Conversation
	var updated string
	if err := row.Scan(&c.ComponentID, &c.MessagesRaw, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &c, nil
}
