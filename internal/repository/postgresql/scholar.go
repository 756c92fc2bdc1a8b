package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
)

type scholarRepository struct {
	db *database.DB
}

func NewScholarRepository(db *database.DB) scholar.ScholarRepository {
	return &scholarRepository{db: db}
}

// GetByID implements scholar.ScholarRepository.
func (r *scholarRepository) GetByID(ctx context.Context, id string) (scholar.Scholar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.full_name, s.semester_id,
			   COALESCE(array_agg(sa.slot_id) FILTER (WHERE sa.slot_id IS NOT NULL), '{}') AS slot_ids,
			   s.created_at, s.updated_at
		FROM scholars s
		LEFT JOIN scholar_slot_assignments sa ON sa.scholar_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var sc scholar.Scholar
	err := q.QueryRow(ctx, query, id).Scan(
		&sc.ID, &sc.FullName, &sc.SemesterID, &sc.SlotIDs,
		&sc.CreatedAt, &sc.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scholar.Scholar{}, scholar.ErrScholarNotFound
		}
		return scholar.Scholar{}, fmt.Errorf("failed to get scholar by ID: %w", err)
	}

	return sc, nil
}
