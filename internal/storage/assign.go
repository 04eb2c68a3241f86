package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GauravSharma9258/DBMS-Project/internal/geo"
	"github.com/GauravSharma9258/DBMS-Project/internal/matching"
	"github.com/GauravSharma9258/DBMS-Project/internal/metrics"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

// AutoAssignCandidates computes a donation's candidate list right after
// creation: resolve the pickup location, rank eligible agents by
// distance and persist the top entries in pending state. Every
// missing-data path is a silent no-op; the donation simply stays
// pending without candidates and waits for manual assignment. Re-runs
// recompute and fully replace the previous list.
func (s *DonationStorage) AutoAssignCandidates(ctx context.Context, donationID string) error {
	donation, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			// Deleted in the meantime, nothing to assign.
			return nil
		}
		return fmt.Errorf("failed to load donation %s: %w", donationID, err)
	}

	origin, err := s.resolveOrigin(ctx, donation)
	if err != nil {
		return err
	}
	if !origin.Complete() {
		return nil
	}

	agents, err := s.userRepo.GetEligibleAgents(ctx)
	if err != nil {
		return fmt.Errorf("failed to query eligible agents: %w", err)
	}
	if len(agents) == 0 {
		return nil
	}

	ranked := matching.Rank(origin, agents, s.config.CandidateLimit)
	if len(ranked) == 0 {
		return nil
	}

	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.candidateRepo.DeleteForDonationTx(ctx, tx, donationID); err != nil {
		return fmt.Errorf("failed to clear previous candidates: %w", err)
	}
	for i, entry := range ranked {
		candidate := &repository.DonationCandidate{
			DonationID: donationID,
			AgentID:    entry.AgentID,
			Position:   i + 1,
			DistanceKm: matching.RoundKm(entry.DistanceKm),
			Status:     repository.CandidatePending,
		}
		if err := s.candidateRepo.CreateTx(ctx, tx, candidate); err != nil {
			return fmt.Errorf("failed to store candidate %s: %w", entry.AgentID, err)
		}
	}
	if err := s.donationRepo.SetAssignmentAuditTx(ctx, tx, donationID, now, repository.AssignmentAuto); err != nil {
		return fmt.Errorf("failed to record assignment audit: %w", err)
	}
	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:      eventCandidatesAssigned,
		DonationID: donationID,
		DonorID:    donation.DonorID,
		Status:     string(donation.Status),
		Candidates: len(ranked),
		OccurredAt: now,
	}); err != nil {
		return fmt.Errorf("failed to enqueue assignment event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit candidate list: %w", err)
	}

	// Cached reads must see the committed audit stamp.
	donation.AutoAssignmentRunAt = &now
	donation.AssignmentMethod = repository.AssignmentAuto
	s.cacheSet(donation)

	metrics.AssignmentsComputedTotal.Inc()
	return nil
}

// resolveOrigin prefers the donation's own coordinates and falls back
// to the donor's profile. Inherited coordinates are written back so the
// donation carries its own location of record from then on.
func (s *DonationStorage) resolveOrigin(ctx context.Context, donation *repository.Donation) (geo.Point, error) {
	origin := geo.Point{Lat: donation.Latitude, Lng: donation.Longitude}
	if origin.Complete() {
		return origin, nil
	}

	donor, err := s.userRepo.GetByID(ctx, donation.DonorID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return geo.Point{}, nil
		}
		return geo.Point{}, fmt.Errorf("failed to load donor %s: %w", donation.DonorID, err)
	}

	origin = geo.Point{Lat: donor.Latitude, Lng: donor.Longitude}
	if !origin.Complete() {
		return geo.Point{}, nil
	}

	if err := s.donationRepo.SetCoordinates(ctx, donation.ID, *origin.Lat, *origin.Lng); err != nil {
		return geo.Point{}, fmt.Errorf("failed to persist inherited coordinates: %w", err)
	}
	donation.Latitude = origin.Lat
	donation.Longitude = origin.Lng
	s.cacheSet(donation)
	return origin, nil
}
