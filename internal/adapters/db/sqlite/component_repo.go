package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Arhan13/codegen/internal/domain"
)

type ComponentRepo struct{ *Repo }

func NewComponentRepo(db *sql.DB) *ComponentRepo { return &ComponentRepo{NewRepo(db)} }

var componentColumns = []string{"id", "name", "prompt", "source", "keys_json", "demo_props_json", "created_at", "updated_at"}

func (r *ComponentRepo) Create(ctx context.Context, c *domain.Component) error {
	now := time.Now().UTC().Format(time.RFC3339)
	keysJSON, err := marshalKeys(c.Keys)
	if err != nil {
		return err
	}
	props := c.DemoPropsRaw
	if props == "" {
		props = "{}"
	}
	q := r.SQ.Insert("components").Columns(componentColumns...).
		Values(c.ID, c.Name, c.Prompt, c.Source, keysJSON, props, now, now)
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, now)
	c.UpdatedAt = c.CreatedAt
	return nil
}

func (r *ComponentRepo) Get(ctx context.Context, id string) (*domain.Component, error) {
	q := r.SQ.Select(componentColumns...).From("components").Where(sq.Eq{"id": id}).Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ComponentRepo) List(ctx context.Context) ([]*domain.Component, error) {
	q := r.SQ.Select(componentColumns...).From("components").OrderBy("updated_at DESC")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ComponentRepo) Update(ctx context.Context, c *domain.Component) error {
	now := time.Now().UTC().Format(time.RFC3339)
	keysJSON, err := marshalKeys(c.Keys)
	if err != nil {
		return err
	}
	props := c.DemoPropsRaw
	if props == "" {
		props = "{}"
	}
	q := r.SQ.Update("components").
		Set("name", c.Name).Set("prompt", c.Prompt).Set("source", c.Source).
		Set("keys_json", keysJSON).Set("demo_props_json", props).Set("updated_at", now).
		Where(sq.Eq{"id": c.ID})
	sqlStr, args, _ := q.ToSql()
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	c.UpdatedAt, _ = time.Parse(time.RFC3339, now)
	return nil
}

func (r *ComponentRepo) Delete(ctx context.Context, id string) error {
	q := r.SQ.Delete("components").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func marshalKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	b, err := json.Marshal(keys)
	return string(b), err
}

func scanComponent(row rowScanner) (*domain.Component, error) {
	var c domain.Component
	var keysJSON, created, updated string
	if err := row.Scan(&c.ID, &c.Name, &c.Prompt, &c.Source, &keysJSON, &c.DemoPropsRaw, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keysJSON), &c.Keys); err != nil {
		return nil, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, created)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &c, nil
}
