package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GauravSharma9258/DBMS-Project/internal/metrics"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

// MarkPickedUp confirms the assigned agent has taken the food from the
// donor. Only the donation's owner may confirm, and only while the
// donation is assigned.
func (s *DonationStorage) MarkPickedUp(ctx context.Context, donationID string, actor *repository.User) (*Donation, error) {
	return s.transition(ctx, donationID, actor, transitionPickup)
}

// MarkCollected confirms the food reached the agent's organization.
// Driven by the assigned agent (or the donor closing it out on their
// behalf) once the donation is assigned or picked up.
func (s *DonationStorage) MarkCollected(ctx context.Context, donationID string, actor *repository.User) (*Donation, error) {
	return s.transition(ctx, donationID, actor, transitionCollect)
}

// RejectDonation is the administrative gate: a pending donation is
// taken out of circulation before any candidate accepts it.
func (s *DonationStorage) RejectDonation(ctx context.Context, donationID string, actor *repository.User) (*Donation, error) {
	if actor.Role != repository.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may reject donations", ErrForbidden)
	}

	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	donation, err := s.donationRepo.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load donation: %w", err)
	}

	rejected, err := s.donationRepo.RejectTx(ctx, tx, donationID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to reject donation: %w", err)
	}
	if !rejected {
		return nil, fmt.Errorf("%w: donation is no longer pending", ErrStateConflict)
	}

	if err := s.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		DonationID: donationID,
		Status:     repository.DonationRejected,
		ChangedBy:  &actor.ID,
		ChangedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}
	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:      eventDonationRejected,
		DonationID: donationID,
		DonorID:    donation.DonorID,
		Status:     string(repository.DonationRejected),
		OccurredAt: now,
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue reject event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}

	donation.Status = repository.DonationRejected
	donation.UpdatedAt = now
	if s.cache != nil {
		s.cache.Delete(donationID)
	}
	return toDonation(donation, nil), nil
}

type transitionKind int

const (
	transitionPickup transitionKind = iota
	transitionCollect
)

func (s *DonationStorage) transition(ctx context.Context, donationID string, actor *repository.User, kind transitionKind) (*Donation, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	donation, err := s.donationRepo.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load donation: %w", err)
	}

	var (
		newStatus repository.DonationStatus
		event     string
	)
	switch kind {
	case transitionPickup:
		if actor.ID != donation.DonorID {
			return nil, fmt.Errorf("%w: only the donor may confirm pickup", ErrForbidden)
		}
		if donation.Status != repository.DonationAssigned {
			return nil, fmt.Errorf("%w: donation is not awaiting pickup", ErrStateConflict)
		}
		if err := s.donationRepo.MarkPickedUpTx(ctx, tx, donationID, now); err != nil {
			return nil, fmt.Errorf("failed to mark picked up: %w", err)
		}
		newStatus, event = repository.DonationPickedUp, eventDonationPickedUp

	case transitionCollect:
		assignedAgent := donation.AgentID != nil && actor.ID == *donation.AgentID
		if !assignedAgent && actor.ID != donation.DonorID {
			return nil, fmt.Errorf("%w: only the assigned agent or the donor may confirm collection", ErrForbidden)
		}
		if donation.Status != repository.DonationAssigned && donation.Status != repository.DonationPickedUp {
			return nil, fmt.Errorf("%w: donation is not ready for collection", ErrStateConflict)
		}
		if err := s.donationRepo.MarkCollectedTx(ctx, tx, donationID, now); err != nil {
			return nil, fmt.Errorf("failed to mark collected: %w", err)
		}
		newStatus, event = repository.DonationCollected, eventDonationCollected
	}

	if err := s.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		DonationID: donationID,
		Status:     newStatus,
		ChangedBy:  &actor.ID,
		ChangedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}

	payload := repository.DonationEventPayload{
		Event:      event,
		DonationID: donationID,
		DonorID:    donation.DonorID,
		Status:     string(newStatus),
		OccurredAt: now,
	}
	if donation.AgentID != nil {
		payload.AgentID = *donation.AgentID
	}
	if err := s.enqueueEventTx(ctx, tx, payload); err != nil {
		return nil, fmt.Errorf("failed to enqueue event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	donation.Status = newStatus
	donation.UpdatedAt = now
	switch newStatus {
	case repository.DonationPickedUp:
		donation.PickupConfirmedAt = &now
		metrics.DonationsPickedUpTotal.Inc()
		s.cacheSet(donation)
	case repository.DonationCollected:
		donation.CollectionTime = &now
		metrics.DonationsCollectedTotal.Inc()
		if s.cache != nil {
			s.cache.Delete(donationID)
		}
	}

	return toDonation(donation, nil), nil
}
