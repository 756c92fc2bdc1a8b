package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) monitoring.EntryRepository {
	return &entryRepository{db: db}
}

// Create implements monitoring.EntryRepository. The unique index on
// (scholar_id, date) rejects a second monitoring check the same day.
func (r *entryRepository) Create(ctx context.Context, entry monitoring.Entry) (monitoring.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monitoring_entries (
			scholar_id, semester_id, date,
			has_violation, violation_reason, violation_count, session_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ScholarID,
		entry.SemesterID,
		entry.Date,
		entry.HasViolation,
		entry.ViolationReason,
		entry.ViolationCount,
		entry.SessionID,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return monitoring.Entry{}, monitoring.ErrAlreadyMonitoredToday
		}
		return monitoring.Entry{}, fmt.Errorf("failed to create monitoring entry: %w", err)
	}

	return entry, nil
}

// GetByID implements monitoring.EntryRepository.
func (r *entryRepository) GetByID(ctx context.Context, id string) (monitoring.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, scholar_id, semester_id, date,
			   has_violation, violation_reason, violation_count, session_id,
			   created_at, updated_at
		FROM monitoring_entries
		WHERE id = $1
	`

	var e monitoring.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ScholarID, &e.SemesterID, &e.Date,
		&e.HasViolation, &e.ViolationReason, &e.ViolationCount, &e.SessionID,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return monitoring.Entry{}, monitoring.ErrEntryNotFound
		}
		return monitoring.Entry{}, fmt.Errorf("failed to get monitoring entry by ID: %w", err)
	}

	return e, nil
}

// Update implements monitoring.EntryRepository.
func (r *entryRepository) Update(ctx context.Context, entry monitoring.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monitoring_entries
		SET has_violation = $1,
		    violation_reason = $2,
		    violation_count = $3,
		    updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		entry.HasViolation,
		entry.ViolationReason,
		entry.ViolationCount,
		time.Now(),
		entry.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return monitoring.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update monitoring entry: %w", err)
	}

	return nil
}

// SumViolations implements monitoring.EntryRepository.
func (r *entryRepository) SumViolations(ctx context.Context, scholarID, semesterID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(violation_count), 0)
		FROM monitoring_entries
		WHERE scholar_id = $1 AND semester_id = $2
	`

	var total int
	if err := q.QueryRow(ctx, query, scholarID, semesterID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum violations: %w", err)
	}

	return total, nil
}

// ListByScholar implements monitoring.EntryRepository.
func (r *entryRepository) ListByScholar(ctx context.Context, scholarID, semesterID string) ([]monitoring.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, scholar_id, semester_id, date,
			   has_violation, violation_reason, violation_count, session_id,
			   created_at, updated_at
		FROM monitoring_entries
		WHERE scholar_id = $1 AND semester_id = $2
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, scholarID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query monitoring entries: %w", err)
	}
	defer rows.Close()

	var entries []monitoring.Entry
	for rows.Next() {
		var e monitoring.Entry
		err := rows.Scan(
			&e.ID, &e.ScholarID, &e.SemesterID, &e.Date,
			&e.HasViolation, &e.ViolationReason, &e.ViolationCount, &e.SessionID,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monitoring entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

type blockRepository struct {
	db *database.DB
}

func NewBlockRepository(db *database.DB) monitoring.BlockRepository {
	return &blockRepository{db: db}
}

// GetByScholar implements monitoring.BlockRepository.
func (r *blockRepository) GetByScholar(ctx context.Context, scholarID, semesterID string) (*monitoring.Block, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, scholar_id, semester_id, date_blocked
		FROM block_records
		WHERE scholar_id = $1 AND semester_id = $2
		LIMIT 1
	`

	var b monitoring.Block
	err := q.QueryRow(ctx, query, scholarID, semesterID).Scan(
		&b.ID, &b.ScholarID, &b.SemesterID, &b.DateBlocked,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get block record: %w", err)
	}

	return &b, nil
}

// Create implements monitoring.BlockRepository.
func (r *blockRepository) Create(ctx context.Context, block monitoring.Block) (monitoring.Block, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO block_records (scholar_id, semester_id, date_blocked)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		block.ScholarID,
		block.SemesterID,
		block.DateBlocked,
	).Scan(&block.ID)

	if err != nil {
		return monitoring.Block{}, fmt.Errorf("failed to create block record: %w", err)
	}

	return block, nil
}

// DeleteByScholar implements monitoring.BlockRepository.
func (r *blockRepository) DeleteByScholar(ctx context.Context, scholarID, semesterID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM block_records WHERE scholar_id = $1 AND semester_id = $2`

	commandTag, err := q.Exec(ctx, query, scholarID, semesterID)
	if err != nil {
		return false, fmt.Errorf("failed to delete block record: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}
