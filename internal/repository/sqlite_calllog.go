package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/puravida/internal/db"
	"github.com/alexanderramin/puravida/internal/domain"
)

// SQLiteCallLogRepo implements CallLogRepo using a SQLite database.
type SQLiteCallLogRepo struct {
	db db.DBTX
}

// NewSQLiteCallLogRepo creates a new SQLiteCallLogRepo.
func NewSQLiteCallLogRepo(db db.DBTX) *SQLiteCallLogRepo {
	return &SQLiteCallLogRepo{db: db}
}

const callColumns = `id, session_id, task, provider, model, latency_ms, success, error_code, error_class, created_at`

func (r *SQLiteCallLogRepo) Create(ctx context.Context, c *domain.ProviderCall) error {
	query := `INSERT INTO llm_calls (` + callColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.SessionID,
		c.Task,
		c.Provider,
		c.Model,
		c.LatencyMs,
		successFlag(c.Success),
		c.ErrorCode,
		c.ErrorClass,
		formatTimestamp(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting provider call: %w", err)
	}
	return nil
}

func (r *SQLiteCallLogRepo) GetByID(ctx context.Context, id string) (*domain.ProviderCall, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+callColumns+` FROM llm_calls WHERE id = ?`, id)
	c, err := scanCall(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("provider call: %w", ErrNotFound)
	}
	return c, err
}

func (r *SQLiteCallLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ProviderCall, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+callColumns+` FROM llm_calls ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent provider calls: %w", err)
	}
	defer rows.Close()
	return scanCalls(rows)
}

func (r *SQLiteCallLogRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.ProviderCall, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+callColumns+` FROM llm_calls WHERE session_id = ? ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing provider calls by session: %w", err)
	}
	defer rows.Close()
	return scanCalls(rows)
}

func (r *SQLiteCallLogRepo) Stats(ctx context.Context) (CallStats, error) {
	var s CallStats
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			AVG(latency_ms)
		FROM llm_calls`).Scan(&s.Total, &s.Failed, &avg)
	if err != nil {
		return CallStats{}, fmt.Errorf("aggregating provider calls: %w", err)
	}
	if avg.Valid {
		s.AvgLatencyMs = int64(avg.Float64 + 0.5)
	}
	return s, nil
}

func (r *SQLiteCallLogRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM llm_calls WHERE id NOT IN (
			SELECT id FROM llm_calls ORDER BY created_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning provider calls: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned provider calls: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCall(s scanner) (*domain.ProviderCall, error) {
	var (
		c         domain.ProviderCall
		success   int
		createdAt string
	)
	if err := s.Scan(
		&c.ID,
		&c.SessionID,
		&c.Task,
		&c.Provider,
		&c.Model,
		&c.LatencyMs,
		&success,
		&c.ErrorCode,
		&c.ErrorClass,
		&createdAt,
	); err != nil {
		return nil, err
	}
	c.Success = success != 0
	t, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = t
	return &c, nil
}

func scanCalls(rows *sql.Rows) ([]*domain.ProviderCall, error) {
	var out []*domain.ProviderCall
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning provider call: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
