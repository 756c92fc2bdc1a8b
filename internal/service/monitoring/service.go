package monitoring

import (
	"context"
	"fmt"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
)

type MonitoringServiceImpl struct {
	txm       database.TxManager
	clk       clock.Clock
	threshold int
	monitoring.EntryRepository
	monitoring.BlockRepository
	scholar.ScholarRepository
}

func NewMonitoringService(
	txm database.TxManager,
	clk clock.Clock,
	threshold int,
	entryRepo monitoring.EntryRepository,
	blockRepo monitoring.BlockRepository,
	scholarRepo scholar.ScholarRepository,
) monitoring.MonitoringService {
	return &MonitoringServiceImpl{
		txm:               txm,
		clk:               clk,
		threshold:         threshold,
		EntryRepository:   entryRepo,
		BlockRepository:   blockRepo,
		ScholarRepository: scholarRepo,
	}
}

// RecordMonitoring implements monitoring.MonitoringService.
func (s *MonitoringServiceImpl) RecordMonitoring(ctx context.Context, req monitoring.RecordRequest) (monitoring.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return monitoring.RecordResponse{}, err
	}

	sc, err := s.ScholarRepository.GetByID(ctx, req.ScholarID)
	if err != nil {
		return monitoring.RecordResponse{}, err
	}

	if sc.SemesterID != req.SemesterID {
		return monitoring.RecordResponse{}, duty.ErrSemesterMismatch
	}

	now := s.clk.Now()

	entry := monitoring.Entry{
		ScholarID:    sc.ID,
		SemesterID:   req.SemesterID,
		Date:         clock.DateOf(now),
		HasViolation: req.HasViolation,
		SessionID:    req.SessionID,
	}
	if req.HasViolation {
		entry.ViolationReason = req.ViolationReason
		entry.ViolationCount = 1
	}

	var resp monitoring.RecordResponse
	err = s.txm.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.EntryRepository.Create(ctx, entry)
		if err != nil {
			return err
		}

		total, err := s.EntryRepository.SumViolations(ctx, sc.ID, req.SemesterID)
		if err != nil {
			return fmt.Errorf("failed to sum violations: %w", err)
		}

		block, err := s.BlockRepository.GetByScholar(ctx, sc.ID, req.SemesterID)
		if err != nil {
			return err
		}

		blocked := block != nil
		if !blocked && total >= s.threshold {
			if _, err := s.BlockRepository.Create(ctx, monitoring.Block{
				ScholarID:   sc.ID,
				SemesterID:  req.SemesterID,
				DateBlocked: clock.DateOf(now),
			}); err != nil {
				return err
			}
			blocked = true
		}

		resp = monitoring.RecordResponse{
			EntryID:         created.ID,
			TotalViolations: total,
			Blocked:         blocked,
		}
		return nil
	})
	if err != nil {
		return monitoring.RecordResponse{}, err
	}

	return resp, nil
}

// RevertViolation implements monitoring.MonitoringService.
func (s *MonitoringServiceImpl) RevertViolation(ctx context.Context, req monitoring.RevertRequest) (monitoring.RevertResponse, error) {
	if err := req.Validate(); err != nil {
		return monitoring.RevertResponse{}, err
	}

	var resp monitoring.RevertResponse
	err := s.txm.WithTx(ctx, func(ctx context.Context) error {
		entry, err := s.EntryRepository.GetByID(ctx, req.EntryID)
		if err != nil {
			return err
		}

		entry.HasViolation = false
		entry.ViolationReason = nil
		entry.ViolationCount = 0
		if err := s.EntryRepository.Update(ctx, entry); err != nil {
			return err
		}

		// The unblock is unconditional: any block for the scholar goes away
		// on revert even when other violations still stand.
		removed, err := s.BlockRepository.DeleteByScholar(ctx, entry.ScholarID, entry.SemesterID)
		if err != nil {
			return err
		}

		resp = monitoring.RevertResponse{
			EntryID:      entry.ID,
			BlockRemoved: removed,
		}
		return nil
	})
	if err != nil {
		return monitoring.RevertResponse{}, err
	}

	return resp, nil
}

// ListEntries implements monitoring.MonitoringService.
func (s *MonitoringServiceImpl) ListEntries(ctx context.Context, scholarID, semesterID string) ([]monitoring.EntryResponse, error) {
	entries, err := s.EntryRepository.ListByScholar(ctx, scholarID, semesterID)
	if err != nil {
		return nil, err
	}

	responses := make([]monitoring.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, monitoring.EntryResponse{
			ID:              entry.ID,
			ScholarID:       entry.ScholarID,
			SemesterID:      entry.SemesterID,
			Date:            entry.Date.Format("2006-01-02"),
			HasViolation:    entry.HasViolation,
			ViolationReason: entry.ViolationReason,
			SessionID:       entry.SessionID,
		})
	}

	return responses, nil
}
