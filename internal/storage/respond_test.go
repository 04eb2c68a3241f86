package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GauravSharma9258/DBMS-Project/internal/db"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

func TestStorage_RespondToDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	agent := &repository.User{ID: "agent-1", Role: repository.RoleAgent}

	pendingDonation := func() *repository.Donation {
		return &repository.Donation{
			ID:      "don-1",
			DonorID: "donor-1",
			Status:  repository.DonationPending,
		}
	}
	pendingCandidate := func() *repository.DonationCandidate {
		return &repository.DonationCandidate{
			ID:         7,
			DonationID: "don-1",
			AgentID:    "agent-1",
			Position:   1,
			DistanceKm: 1.25,
			Status:     repository.CandidatePending,
		}
	}

	t.Run("accept assigns the donation to the agent", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(pendingDonation(), nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(pendingCandidate(), nil)
		m.donation.EXPECT().AssignAgentTx(ctx, m.tx, "don-1", "agent-1", gomock.Any()).Return(true, nil)
		m.candidate.EXPECT().UpdateStatusTx(ctx, m.tx, int64(7), repository.CandidateAccepted, gomock.Any()).Return(nil)
		m.history.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, h *repository.HistoryEntry) error {
				assert.Equal(t, repository.DonationAssigned, h.Status)
				assert.Equal(t, "agent-1", *h.ChangedBy)
				return nil
			})
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), "offer_accepted")
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		donation, err := s.RespondToDonation(ctx, "don-1", agent, ActionAccept)

		assert.NoError(t, err)
		assert.Equal(t, string(repository.DonationAssigned), donation.Status)
		assert.Equal(t, "agent-1", donation.AgentID)
		assert.Len(t, donation.Candidates, 1)
		assert.Equal(t, string(repository.CandidateAccepted), donation.Candidates[0].Status)
		assert.NotNil(t, donation.Candidates[0].RespondedAt)
	})

	t.Run("accept conflicts when donation is no longer pending", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		taken := pendingDonation()
		taken.Status = repository.DonationAssigned

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(taken, nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(pendingCandidate(), nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := s.RespondToDonation(ctx, "don-1", agent, ActionAccept)

		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("accept conflicts when the conditional update loses the race", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(pendingDonation(), nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(pendingCandidate(), nil)
		m.donation.EXPECT().AssignAgentTx(ctx, m.tx, "don-1", "agent-1", gomock.Any()).Return(false, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := s.RespondToDonation(ctx, "don-1", agent, ActionAccept)

		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("decline marks the candidate without touching the donation", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(pendingDonation(), nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(pendingCandidate(), nil)
		m.candidate.EXPECT().UpdateStatusTx(ctx, m.tx, int64(7), repository.CandidateDeclined, gomock.Any()).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), "offer_declined")
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		donation, err := s.RespondToDonation(ctx, "don-1", agent, ActionDecline)

		assert.NoError(t, err)
		assert.Equal(t, string(repository.DonationPending), donation.Status)
		assert.Equal(t, string(repository.CandidateDeclined), donation.Candidates[0].Status)
	})

	t.Run("responding twice conflicts", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		declined := pendingCandidate()
		declined.Status = repository.CandidateDeclined

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(pendingDonation(), nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(declined, nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := s.RespondToDonation(ctx, "don-1", agent, ActionDecline)

		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("non-candidate agent conflicts", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(pendingDonation(), nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(nil, repository.ErrObjectNotFound)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := s.RespondToDonation(ctx, "don-1", agent, ActionAccept)

		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("unknown donation", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "missing").Return(nil, repository.ErrObjectNotFound)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := s.RespondToDonation(ctx, "missing", agent, ActionAccept)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-agent is forbidden", func(t *testing.T) {
		s, _ := newTestStorage(ctrl, DefaultConfig())

		_, err := s.RespondToDonation(ctx, "don-1", &repository.User{ID: "donor-1", Role: repository.RoleDonor}, ActionAccept)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("invalid action", func(t *testing.T) {
		s, _ := newTestStorage(ctrl, DefaultConfig())

		_, err := s.RespondToDonation(ctx, "don-1", agent, ResponseAction("maybe"))

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("assignment error surfaces", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.donation.EXPECT().GetByIDTx(ctx, m.tx, "don-1").Return(pendingDonation(), nil)
		m.candidate.EXPECT().GetForDonationAgentTx(ctx, m.tx, "don-1", "agent-1").Return(pendingCandidate(), nil)
		m.donation.EXPECT().AssignAgentTx(ctx, m.tx, "don-1", "agent-1", gomock.Any()).Return(false, errors.New("update failed"))
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := s.RespondToDonation(ctx, "don-1", agent, ActionAccept)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to assign donation")
	})
}
