package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
)

type entryRepository struct {
	store *Store
}

func (s *Store) EntryRepository() monitoring.EntryRepository {
	return &entryRepository{store: s}
}

// Create implements monitoring.EntryRepository.
func (r *entryRepository) Create(ctx context.Context, entry monitoring.Entry) (monitoring.Entry, error) {
	defer r.store.lock(ctx)()

	for _, existing := range r.store.entries {
		if existing.ScholarID == entry.ScholarID && sameDate(existing.Date, entry.Date) {
			return monitoring.Entry{}, monitoring.ErrAlreadyMonitoredToday
		}
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	r.store.entries[entry.ID] = entry
	return entry, nil
}

// GetByID implements monitoring.EntryRepository.
func (r *entryRepository) GetByID(ctx context.Context, id string) (monitoring.Entry, error) {
	defer r.store.lock(ctx)()

	entry, ok := r.store.entries[id]
	if !ok {
		return monitoring.Entry{}, monitoring.ErrEntryNotFound
	}
	return entry, nil
}

// Update implements monitoring.EntryRepository.
func (r *entryRepository) Update(ctx context.Context, entry monitoring.Entry) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.entries[entry.ID]; !ok {
		return monitoring.ErrEntryNotFound
	}
	entry.UpdatedAt = time.Now()
	r.store.entries[entry.ID] = entry
	return nil
}

// SumViolations implements monitoring.EntryRepository.
func (r *entryRepository) SumViolations(ctx context.Context, scholarID, semesterID string) (int, error) {
	defer r.store.lock(ctx)()

	total := 0
	for _, entry := range r.store.entries {
		if entry.ScholarID == scholarID && entry.SemesterID == semesterID {
			total += entry.ViolationCount
		}
	}
	return total, nil
}

// ListByScholar implements monitoring.EntryRepository.
func (r *entryRepository) ListByScholar(ctx context.Context, scholarID, semesterID string) ([]monitoring.Entry, error) {
	defer r.store.lock(ctx)()

	var entries []monitoring.Entry
	for _, entry := range r.store.entries {
		if entry.ScholarID == scholarID && entry.SemesterID == semesterID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

type blockRepository struct {
	store *Store
}

func (s *Store) BlockRepository() monitoring.BlockRepository {
	return &blockRepository{store: s}
}

// GetByScholar implements monitoring.BlockRepository.
func (r *blockRepository) GetByScholar(ctx context.Context, scholarID, semesterID string) (*monitoring.Block, error) {
	defer r.store.lock(ctx)()

	for _, block := range r.store.blocks {
		if block.ScholarID == scholarID && block.SemesterID == semesterID {
			found := block
			return &found, nil
		}
	}
	return nil, nil
}

// Create implements monitoring.BlockRepository.
func (r *blockRepository) Create(ctx context.Context, block monitoring.Block) (monitoring.Block, error) {
	defer r.store.lock(ctx)()

	block.ID = uuid.NewString()
	r.store.blocks[block.ID] = block
	return block, nil
}

// DeleteByScholar implements monitoring.BlockRepository.
func (r *blockRepository) DeleteByScholar(ctx context.Context, scholarID, semesterID string) (bool, error) {
	defer r.store.lock(ctx)()

	removed := false
	for id, block := range r.store.blocks {
		if block.ScholarID == scholarID && block.SemesterID == semesterID {
			delete(r.store.blocks, id)
			removed = true
		}
	}
	return removed, nil
}
