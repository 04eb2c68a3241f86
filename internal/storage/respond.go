package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GauravSharma9258/DBMS-Project/internal/metrics"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

// RespondToDonation records an agent's accept or decline of an offered
// donation. The donation row is locked for the whole transaction, so
// concurrent accepts serialize: the first one assigns the donation, the
// second finds it no longer pending and gets a state conflict while its
// own candidate entry stays untouched, so the caller can still tell
// "someone else got it" apart from "you already acted".
func (s *DonationStorage) RespondToDonation(ctx context.Context, donationID string, actor *repository.User, action ResponseAction) (*Donation, error) {
	if actor.Role != repository.RoleAgent {
		return nil, fmt.Errorf("%w: only agents may respond to offers", ErrForbidden)
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: action must be accept or decline", ErrInvalidInput)
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

	candidate, err := s.candidateRepo.GetForDonationAgentTx(ctx, tx, donationID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			metrics.ResponseConflictsTotal.Inc()
			return nil, fmt.Errorf("%w: you are not a candidate for this donation", ErrStateConflict)
		}
		return nil, fmt.Errorf("failed to load candidate entry: %w", err)
	}
	if candidate.Status != repository.CandidatePending {
		metrics.ResponseConflictsTotal.Inc()
		return nil, fmt.Errorf("%w: you already responded to this donation", ErrStateConflict)
	}

	switch action {
	case ActionAccept:
		if donation.Status != repository.DonationPending {
			// Someone else accepted, or an admin rejected it. Leave the
			// candidate entry pending on purpose.
			metrics.ResponseConflictsTotal.Inc()
			return nil, fmt.Errorf("%w: another agent already accepted this donation", ErrStateConflict)
		}

		assigned, err := s.donationRepo.AssignAgentTx(ctx, tx, donationID, actor.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to assign donation: %w", err)
		}
		if !assigned {
			metrics.ResponseConflictsTotal.Inc()
			return nil, fmt.Errorf("%w: another agent already accepted this donation", ErrStateConflict)
		}

		if err := s.candidateRepo.UpdateStatusTx(ctx, tx, candidate.ID, repository.CandidateAccepted, now); err != nil {
			return nil, fmt.Errorf("failed to mark candidate accepted: %w", err)
		}
		if err := s.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
			DonationID: donationID,
			Status:     repository.DonationAssigned,
			ChangedBy:  &actor.ID,
			ChangedAt:  now,
		}); err != nil {
			return nil, fmt.Errorf("failed to record history: %w", err)
		}
		if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
			Event:      eventOfferAccepted,
			DonationID: donationID,
			DonorID:    donation.DonorID,
			AgentID:    actor.ID,
			Status:     string(repository.DonationAssigned),
			OccurredAt: now,
		}); err != nil {
			return nil, fmt.Errorf("failed to enqueue accept event: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit accept: %w", err)
		}

		donation.Status = repository.DonationAssigned
		donation.AgentID = &actor.ID
		donation.UpdatedAt = now
		candidate.Status = repository.CandidateAccepted
		candidate.RespondedAt = &now

		metrics.OffersAcceptedTotal.Inc()
		s.cacheSet(donation)

	case ActionDecline:
		if err := s.candidateRepo.UpdateStatusTx(ctx, tx, candidate.ID, repository.CandidateDeclined, now); err != nil {
			return nil, fmt.Errorf("failed to mark candidate declined: %w", err)
		}
		if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
			Event:      eventOfferDeclined,
			DonationID: donationID,
			DonorID:    donation.DonorID,
			AgentID:    actor.ID,
			Status:     string(donation.Status),
			OccurredAt: now,
		}); err != nil {
			return nil, fmt.Errorf("failed to enqueue decline event: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit decline: %w", err)
		}

		candidate.Status = repository.CandidateDeclined
		candidate.RespondedAt = &now

		metrics.OffersDeclinedTotal.Inc()
	}

	return toDonation(donation, []*repository.DonationCandidate{candidate}), nil
}
