package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SavedResultRepository defines the interface for saved result persistence
type SavedResultRepository interface {
	Create(ctx context.Context, result entity.SavedResult) (*entity.SavedResult, error)
	Get(ctx context.Context, id string) (*entity.SavedResult, error)
	List(ctx context.Context, skip, limit int) ([]*entity.SavedResult, error)
	Delete(ctx context.Context, id string) error
}

var _ SavedResultRepository = &SavedResultPostgres{}

const (
	savedResultColumns = `id, title, template, query, summary, model, created_at`

	createSavedResultSQL = `
		INSERT INTO saved_results (id, title, template, query, summary, model)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + savedResultColumns

	getSavedResultSQL = `SELECT ` + savedResultColumns + ` FROM saved_results WHERE id = $1`

	listSavedResultsSQL = `
		SELECT ` + savedResultColumns + `
		FROM saved_results
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	deleteSavedResultSQL = `DELETE FROM saved_results WHERE id = $1`
)

// SavedResultPostgres implements SavedResultRepository using PostgreSQL
type SavedResultPostgres struct {
	db *pgxpool.Pool
}

func NewSavedResultPostgres(db *pgxpool.Pool) *SavedResultPostgres {
	return &SavedResultPostgres{db: db}
}

func (r *SavedResultPostgres) Create(ctx context.Context, result entity.SavedResult) (*entity.SavedResult, error) {
	id, err := parseID(result.ID)
	if err != nil {
		return nil, err
	}

	var query []byte
	if result.Query != nil {
		query, err = json.Marshal(result.Query)
		if err != nil {
			return nil, fmt.Errorf("marshal query: %w", err)
		}
	}

	row := r.db.QueryRow(ctx, createSavedResultSQL,
		id,
		result.Title,
		string(result.Template),
		query,
		result.Summary,
		result.Model,
	)

	saved, err := scanSavedResult(row)
	if err != nil {
		return nil, fmt.Errorf("create saved result: %w", err)
	}

	return saved, nil
}

func (r *SavedResultPostgres) Get(ctx context.Context, id string) (*entity.SavedResult, error) {
	resultID, err := lookupID(id)
	if err != nil {
		return nil, err
	}

	saved, err := scanSavedResult(r.db.QueryRow(ctx, getSavedResultSQL, resultID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSavedResultNotFound
		}
		return nil, fmt.Errorf("get saved result: %w", err)
	}

	return saved, nil
}

func (r *SavedResultPostgres) List(ctx context.Context, skip, limit int) ([]*entity.SavedResult, error) {
	rows, err := r.db.Query(ctx, listSavedResultsSQL, int32(limit), int32(skip))
	if err != nil {
		return nil, fmt.Errorf("list saved results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.SavedResult, 0, limit)
	for rows.Next() {
		saved, err := scanSavedResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved result: %w", err)
		}
		results = append(results, saved)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved results: %w", err)
	}

	return results, nil
}

func (r *SavedResultPostgres) Delete(ctx context.Context, id string) error {
	resultID, err := lookupID(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, deleteSavedResultSQL, resultID)
	if err != nil {
		return fmt.Errorf("delete saved result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSavedResultNotFound
	}

	return nil
}

func parseID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: saved result id %q", entity.ErrInvalidParameter, id)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

// lookupID parses an id used to find a stored result. An id that is not a UUID
// cannot name one, so it is reported as not found.
func lookupID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, entity.ErrSavedResultNotFound
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func scanSavedResult(row pgx.Row) (*entity.SavedResult, error) {
	var (
		id        pgtype.UUID
		template  string
		query     []byte
		createdAt pgtype.Timestamptz
		saved     entity.SavedResult
	)

	if err := row.Scan(&id, &saved.Title, &template, &query, &saved.Summary, &saved.Model, &createdAt); err != nil {
		return nil, err
	}

	saved.ID = uuid.UUID(id.Bytes).String()
	saved.Template = entity.Template(template)
	saved.CreatedAt = createdAt.Time

	if len(query) > 0 {
		var q entity.StructuredQuery
		if err := json.Unmarshal(query, &q); err != nil {
			return nil, fmt.Errorf("%w: decode query: %v", entity.ErrInvalidSavedResult, err)
		}
		saved.Query = &q
	}

	return &saved, nil
}
