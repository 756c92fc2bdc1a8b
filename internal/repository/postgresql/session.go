package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
)

const pgUniqueViolation = "23505"

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) duty.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	s.id, s.scholar_id, s.semester_id, s.date,
	s.time_in, s.time_out, s.adjusted_time_in, s.adjusted_time_out,
	s.duty_minutes, s.status, s.cumulative_hours,
	s.created_at, s.updated_at
`

func scanSession(row pgx.Row) (duty.Session, error) {
	var s duty.Session
	err := row.Scan(
		&s.ID, &s.ScholarID, &s.SemesterID, &s.Date,
		&s.TimeIn, &s.TimeOut, &s.AdjustedTimeIn, &s.AdjustedTimeOut,
		&s.DutyMinutes, &s.Status, &s.CumulativeHours,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements duty.SessionRepository. The partial unique index on
// (scholar_id, date) WHERE time_out IS NULL turns a concurrent duplicate
// check-in into a unique violation, which maps to ErrDuplicateOpenSession.
func (r *sessionRepository) Create(ctx context.Context, session duty.Session) (duty.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO duty_sessions (
			scholar_id, semester_id, date,
			time_in, adjusted_time_in, duty_minutes, status, cumulative_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.ScholarID,
		session.SemesterID,
		session.Date,
		session.TimeIn,
		session.AdjustedTimeIn,
		session.DutyMinutes,
		session.Status,
		session.CumulativeHours,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return duty.Session{}, duty.ErrDuplicateOpenSession
		}
		return duty.Session{}, fmt.Errorf("failed to create duty session: %w", err)
	}

	return session, nil
}

// GetByID implements duty.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (duty.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM duty_sessions s
		WHERE s.id = $1
		FOR UPDATE OF s
	`

	s, err := scanSession(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.Session{}, duty.ErrSessionNotFound
		}
		return duty.Session{}, fmt.Errorf("failed to get duty session by ID: %w", err)
	}

	return s, nil
}

// GetOpenSession implements duty.SessionRepository.
func (r *sessionRepository) GetOpenSession(ctx context.Context, scholarID string, date time.Time) (*duty.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM duty_sessions s
		WHERE s.scholar_id = $1
		  AND s.date = $2
		  AND s.time_out IS NULL
		  AND s.status <> $3
		LIMIT 1
	`

	s, err := scanSession(q.QueryRow(ctx, query, scholarID, date, duty.StatusAbsent))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &s, nil
}

// Update implements duty.SessionRepository.
func (r *sessionRepository) Update(ctx context.Context, session duty.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE duty_sessions
		SET time_out = $1,
		    adjusted_time_out = $2,
		    duty_minutes = $3,
		    status = $4,
		    cumulative_hours = $5,
		    updated_at = $6
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		session.TimeOut,
		session.AdjustedTimeOut,
		session.DutyMinutes,
		session.Status,
		session.CumulativeHours,
		time.Now(),
		session.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ErrSessionNotFound
		}
		return fmt.Errorf("failed to update duty session: %w", err)
	}

	return nil
}

// ListOpenByDate implements duty.SessionRepository.
func (r *sessionRepository) ListOpenByDate(ctx context.Context, date time.Time) ([]duty.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM duty_sessions s
		WHERE s.date = $1
		  AND s.time_out IS NULL
		  AND s.status <> $2
		ORDER BY s.time_in
	`

	rows, err := q.Query(ctx, query, date, duty.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []duty.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// SumDutyMinutes implements duty.SessionRepository.
func (r *sessionRepository) SumDutyMinutes(ctx context.Context, scholarID, semesterID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(duty_minutes), 0)
		FROM duty_sessions
		WHERE scholar_id = $1 AND semester_id = $2
	`

	var total int
	if err := q.QueryRow(ctx, query, scholarID, semesterID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum duty minutes: %w", err)
	}

	return total, nil
}

// SetCumulativeHours implements duty.SessionRepository.
func (r *sessionRepository) SetCumulativeHours(ctx context.Context, scholarID, semesterID string, hours int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE duty_sessions
		SET cumulative_hours = $1, updated_at = $2
		WHERE scholar_id = $3 AND semester_id = $4
	`

	if _, err := q.Exec(ctx, query, hours, time.Now(), scholarID, semesterID); err != nil {
		return fmt.Errorf("failed to set cumulative hours: %w", err)
	}

	return nil
}

// List implements duty.SessionRepository.
func (r *sessionRepository) List(ctx context.Context, filter duty.SessionFilter) ([]duty.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.ScholarID != nil && *filter.ScholarID != "" {
		baseWhere += fmt.Sprintf(" AND s.scholar_id = $%d", argIdx)
		args = append(args, *filter.ScholarID)
		argIdx++
	}

	if filter.SemesterID != nil && *filter.SemesterID != "" {
		baseWhere += fmt.Sprintf(" AND s.semester_id = $%d", argIdx)
		args = append(args, *filter.SemesterID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND s.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND s.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND s.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM duty_sessions s WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count duty sessions: %w", err)
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT `+sessionColumns+`,
			sc.full_name AS scholar_name
		FROM duty_sessions s
		LEFT JOIN scholars sc ON sc.id = s.scholar_id
		WHERE %s
		ORDER BY s.date DESC, s.time_in DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query duty sessions: %w", err)
	}
	defer rows.Close()

	var sessions []duty.Session
	for rows.Next() {
		var s duty.Session
		err := rows.Scan(
			&s.ID, &s.ScholarID, &s.SemesterID, &s.Date,
			&s.TimeIn, &s.TimeOut, &s.AdjustedTimeIn, &s.AdjustedTimeOut,
			&s.DutyMinutes, &s.Status, &s.CumulativeHours,
			&s.CreatedAt, &s.UpdatedAt,
			&s.ScholarName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan duty session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, nil
}
