package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GauravSharma9258/DBMS-Project/internal/metrics"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

var allStatuses = []repository.DonationStatus{
	repository.DonationPending,
	repository.DonationRejected,
	repository.DonationAssigned,
	repository.DonationPickedUp,
	repository.DonationCollected,
}

// CreateDonation validates and inserts a new donation in pending
// status. Candidate computation is not part of this call; the caller
// triggers AutoAssignCandidates separately so creation never fails on
// a ranking problem.
func (s *DonationStorage) CreateDonation(ctx context.Context, actor *repository.User, input NewDonation) (*Donation, error) {
	if actor.Role != repository.RoleDonor {
		return nil, fmt.Errorf("%w: only donors may post donations", ErrForbidden)
	}
	if err := validateNewDonation(input, s.config.RequireFutureExpiry); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	donation := &repository.Donation{
		ID:               uuid.NewString(),
		DonorID:          actor.ID,
		FoodType:         input.FoodType,
		Quantity:         input.Quantity,
		CookingTime:      input.CookingTime,
		Address:          input.Address,
		Phone:            input.Phone,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		ExpiryTime:       input.ExpiryTime,
		Status:           repository.DonationPending,
		DonationPhotos:   input.DonationPhotos,
		AssignmentMethod: repository.AssignmentAuto,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.DonorToAdminMsg != "" {
		donation.DonorToAdminMsg = &input.DonorToAdminMsg
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.donationRepo.CreateTx(ctx, tx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	if err := s.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		DonationID: donation.ID,
		Status:     donation.Status,
		ChangedBy:  &actor.ID,
		ChangedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record donation history: %w", err)
	}
	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:      eventDonationCreated,
		DonationID: donation.ID,
		DonorID:    donation.DonorID,
		Status:     string(donation.Status),
		OccurredAt: now,
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue donation event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit donation: %w", err)
	}

	metrics.DonationsCreatedTotal.Inc()
	s.cacheSet(donation)

	return toDonation(donation, nil), nil
}

func validateNewDonation(input NewDonation, requireFutureExpiry bool) error {
	if input.FoodType == "" || input.Quantity == "" || input.Address == "" || input.Phone == "" {
		return fmt.Errorf("%w: food type, quantity, address and phone are required", ErrInvalidInput)
	}
	if input.CookingTime.IsZero() {
		return fmt.Errorf("%w: cooking time is required", ErrInvalidInput)
	}
	if input.ExpiryTime.IsZero() {
		return fmt.Errorf("%w: expiry time is required", ErrInvalidInput)
	}
	if requireFutureExpiry && !input.ExpiryTime.After(time.Now().UTC()) {
		return fmt.Errorf("%w: expiry time must be in the future", ErrInvalidInput)
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be provided together", ErrInvalidInput)
	}
	if input.Latitude != nil {
		if *input.Latitude < -90 || *input.Latitude > 90 {
			return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
		}
		if *input.Longitude < -180 || *input.Longitude > 180 {
			return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
		}
	}
	return nil
}

func (s *DonationStorage) GetDonation(ctx context.Context, id string) (*Donation, error) {
	var donation *repository.Donation
	if s.cache != nil {
		if cached, found := s.cache.Get(id); found {
			donation = cached
		}
	}
	if donation == nil {
		var err error
		donation, err = s.donationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		s.cacheSet(donation)
	}

	candidates, err := s.candidateRepo.GetByDonation(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDonation(donation, candidates), nil
}

func (s *DonationStorage) GetDonorDonations(ctx context.Context, donorID string, statuses []repository.DonationStatus) ([]*Donation, error) {
	if len(statuses) == 0 {
		statuses = allStatuses
	}
	donations, err := s.donationRepo.GetByDonor(ctx, donorID, statuses)
	if err != nil {
		return nil, err
	}
	return convertAll(donations), nil
}

// GetAgentCollections lists the donations an agent is or was
// responsible for picking up.
func (s *DonationStorage) GetAgentCollections(ctx context.Context, agentID string) ([]*Donation, error) {
	donations, err := s.donationRepo.GetByAgent(ctx, agentID, []repository.DonationStatus{
		repository.DonationAssigned,
		repository.DonationPickedUp,
		repository.DonationCollected,
	})
	if err != nil {
		return nil, err
	}
	return convertAll(donations), nil
}

// GetOpenOffers lists pending donations on which the agent still holds
// an unanswered candidate entry.
func (s *DonationStorage) GetOpenOffers(ctx context.Context, agentID string) ([]*Donation, error) {
	donations, err := s.donationRepo.GetOpenForAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	return convertAll(donations), nil
}

func (s *DonationStorage) GetDonationHistory(ctx context.Context, donationID string) ([]HistoryEntry, error) {
	entries, err := s.historyRepo.GetByDonationID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toHistoryEntry(e))
	}
	return out, nil
}

// PurgeDonorDonations discards a donor's terminal records (collected or
// rejected), the housekeeping action exposed on the donor dashboard.
func (s *DonationStorage) PurgeDonorDonations(ctx context.Context, actor *repository.User) error {
	if actor.Role != repository.RoleDonor {
		return fmt.Errorf("%w: only donors may purge their donations", ErrForbidden)
	}
	return s.donationRepo.DeleteByDonor(ctx, actor.ID, []repository.DonationStatus{
		repository.DonationCollected,
		repository.DonationRejected,
	})
}

// PurgeAgentCollections discards an agent's collected records.
func (s *DonationStorage) PurgeAgentCollections(ctx context.Context, actor *repository.User) error {
	if actor.Role != repository.RoleAgent {
		return fmt.Errorf("%w: only agents may purge their collections", ErrForbidden)
	}
	return s.donationRepo.DeleteByAgent(ctx, actor.ID, []repository.DonationStatus{
		repository.DonationCollected,
	})
}

// WarmCache primes the open-donation cache at startup.
func (s *DonationStorage) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	donations, err := s.donationRepo.GetAllOpen(ctx)
	if err != nil {
		return err
	}
	s.cache.LoadInitialData(ctx, donations)
	return nil
}

func convertAll(donations []*repository.Donation) []*Donation {
	out := make([]*Donation, 0, len(donations))
	for _, d := range donations {
		out = append(out, toDonation(d, nil))
	}
	return out
}
