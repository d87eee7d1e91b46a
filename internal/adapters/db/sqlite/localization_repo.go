package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Arhan13/codegen/internal/domain"
)

type LocalizationRepo struct{ *Repo }

func NewLocalizationRepo(db *sql.DB) *LocalizationRepo { return &LocalizationRepo{NewRepo(db)} }

var recordColumns = []string{"id", "key", "en", "es", "fr", "de", "ja", "zh", "created_at", "updated_at"}

// CreateIfAbsent inserts the record unless one with the same key exists.
// The UNIQUE constraint plus DO NOTHING makes the check-and-insert a single
// atomic statement, so concurrent pipeline runs seeing the same new key
// produce exactly one row. Returns true when a row was inserted; on false,
// rec is filled from the already-persisted record, which is never modified.
func (r *LocalizationRepo) CreateIfAbsent(ctx context.Context, rec *domain.LocalizationRecord) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("localization_keys").
		Columns("key", "en", "es", "fr", "de", "ja", "zh", "created_at", "updated_at").
		Values(rec.Key, rec.Texts.EN, rec.Texts.ES, rec.Texts.FR, rec.Texts.DE, rec.Texts.JA, rec.Texts.ZH, now, now).
		Suffix("ON CONFLICT(key) DO NOTHING")
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		existing, err := r.GetByKey(ctx, rec.Key)
		if err != nil {
			return false, err
		}
		if existing != nil {
			*rec = *existing
		}
		return false, nil
	}
	id, _ := res.LastInsertId()
	rec.ID = id
	rec.CreatedAt, _ = time.Parse(time.RFC3339, now)
	rec.UpdatedAt = rec.CreatedAt
	return true, nil
}

func (r *LocalizationRepo) GetByKey(ctx context.Context, key string) (*domain.LocalizationRecord, error) {
	q := r.SQ.Select(recordColumns...).From("localization_keys").Where(sq.Eq{"key": key}).Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *LocalizationRepo) List(ctx context.Context) ([]*domain.LocalizationRecord, error) {
	q := r.SQ.Select(recordColumns...).From("localization_keys").OrderBy("id")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.LocalizationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByLocale returns the key -> text mapping for one locale. The locale
// doubles as a column name, so it is validated against the fixed set
// before any SQL is built.
func (r *LocalizationRepo) GetByLocale(ctx context.Context, locale string) (map[string]string, error) {
	if !domain.ValidLocale(locale) {
		return nil, domain.ErrInvalidLocale
	}
	q := r.SQ.Select("key", locale).From("localization_keys")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, text string
		if err := rows.Scan(&key, &text); err != nil {
			return nil, err
		}
		out[key] = text
	}
	return out, rows.Err()
}

func (r *LocalizationRepo) DeleteByKey(ctx context.Context, key string) error {
	q := r.SQ.Delete("localization_keys").Where(sq.Eq{"key": key})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.LocalizationRecord, error) {
	var rec domain.LocalizationRecord
	var created, updated string
	if err := row.Scan(&rec.ID, &rec.Key, &rec.Texts.EN, &rec.Texts.ES, &rec.Texts.FR, &rec.Texts.DE, &rec.Texts.JA, &rec.Texts.ZH, &created, &updated); err != nil {
		return nil, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &rec, nil
}
