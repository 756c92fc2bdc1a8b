package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
)

type slotRepository struct {
	db *database.DB
}

func NewSlotRepository(db *database.DB) schedule.SlotRepository {
	return &slotRepository{db: db}
}

// GetByID implements schedule.SlotRepository.
func (r *slotRepository) GetByID(ctx context.Context, id string) (schedule.DutySlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, weekday, kind, start_minute, end_minute
		FROM duty_slots
		WHERE id = $1
	`

	var s schedule.DutySlot
	var weekday int
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &weekday, &s.Kind, &s.StartMinute, &s.EndMinute)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.DutySlot{}, schedule.ErrSlotNotFound
		}
		return schedule.DutySlot{}, fmt.Errorf("failed to get duty slot by ID: %w", err)
	}
	s.Weekday = time.Weekday(weekday)

	return s, nil
}

// GetByIDs implements schedule.SlotRepository.
func (r *slotRepository) GetByIDs(ctx context.Context, ids []string) ([]schedule.DutySlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, weekday, kind, start_minute, end_minute
		FROM duty_slots
		WHERE id = ANY($1)
		ORDER BY weekday, start_minute
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty slots: %w", err)
	}
	defer rows.Close()

	slots, err := scanSlots(rows)
	if err != nil {
		return nil, err
	}
	if len(slots) != len(ids) {
		return nil, schedule.ErrSlotNotFound
	}

	return slots, nil
}

// List implements schedule.SlotRepository.
func (r *slotRepository) List(ctx context.Context) ([]schedule.DutySlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, weekday, kind, start_minute, end_minute
		FROM duty_slots
		ORDER BY weekday, start_minute
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty slots: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func scanSlots(rows pgx.Rows) ([]schedule.DutySlot, error) {
	var slots []schedule.DutySlot
	for rows.Next() {
		var s schedule.DutySlot
		var weekday int
		if err := rows.Scan(&s.ID, &weekday, &s.Kind, &s.StartMinute, &s.EndMinute); err != nil {
			return nil, fmt.Errorf("failed to scan duty slot: %w", err)
		}
		s.Weekday = time.Weekday(weekday)
		slots = append(slots, s)
	}
	return slots, nil
}
