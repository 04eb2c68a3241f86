package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GauravSharma9258/DBMS-Project/internal/cache"
	"github.com/GauravSharma9258/DBMS-Project/internal/db"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

func TestStorage_AutoAssignCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	origin := &repository.Donation{
		ID:        "don-1",
		DonorID:   "donor-1",
		Status:    repository.DonationPending,
		Latitude:  float64Ptr(12.9716),
		Longitude: float64Ptr(77.5946),
	}

	agents := []*repository.User{
		{ID: "agent-far", Role: repository.RoleAgent, Latitude: float64Ptr(13.10), Longitude: float64Ptr(77.60)},
		{ID: "agent-near", Role: repository.RoleAgent, Latitude: float64Ptr(12.9720), Longitude: float64Ptr(77.5950)},
		{ID: "agent-mid", Role: repository.RoleAgent, Latitude: float64Ptr(12.99), Longitude: float64Ptr(77.60)},
	}

	t.Run("ranks agents and stores candidates by distance", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		donation := *origin
		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&donation, nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return(agents, nil)

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.candidate.EXPECT().DeleteForDonationTx(ctx, m.tx, "don-1").Return(nil)

		var stored []*repository.DonationCandidate
		m.candidate.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, c *repository.DonationCandidate) error {
				stored = append(stored, c)
				return nil
			}).Times(3)
		m.donation.EXPECT().SetAssignmentAuditTx(ctx, m.tx, "don-1", gomock.Any(), repository.AssignmentAuto).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), "candidates_assigned")
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.NoError(t, err)
		assert.Len(t, stored, 3)
		assert.Equal(t, "agent-near", stored[0].AgentID)
		assert.Equal(t, 1, stored[0].Position)
		assert.Equal(t, "agent-mid", stored[1].AgentID)
		assert.Equal(t, "agent-far", stored[2].AgentID)
		for _, c := range stored {
			assert.Equal(t, repository.CandidatePending, c.Status)
			assert.GreaterOrEqual(t, c.DistanceKm, 0.0)
		}
		assert.Less(t, stored[0].DistanceKm, stored[2].DistanceKm)
	})

	t.Run("candidate limit truncates the list", func(t *testing.T) {
		s, m := newTestStorage(ctrl, Config{CandidateLimit: 2})

		donation := *origin
		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&donation, nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return(agents, nil)

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.candidate.EXPECT().DeleteForDonationTx(ctx, m.tx, "don-1").Return(nil)
		m.candidate.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil).Times(2)
		m.donation.EXPECT().SetAssignmentAuditTx(ctx, m.tx, "don-1", gomock.Any(), repository.AssignmentAuto).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.NoError(t, err)
	})

	t.Run("missing donation is a no-op", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.donation.EXPECT().GetByID(ctx, "gone").Return(nil, repository.ErrObjectNotFound)

		err := s.AutoAssignCandidates(ctx, "gone")

		assert.NoError(t, err)
	})

	t.Run("falls back to donor coordinates and persists them", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&repository.Donation{
			ID:      "don-1",
			DonorID: "donor-1",
			Status:  repository.DonationPending,
		}, nil)
		m.user.EXPECT().GetByID(ctx, "donor-1").Return(&repository.User{
			ID:        "donor-1",
			Role:      repository.RoleDonor,
			Latitude:  float64Ptr(12.9716),
			Longitude: float64Ptr(77.5946),
		}, nil)
		m.donation.EXPECT().SetCoordinates(ctx, "don-1", 12.9716, 77.5946).Return(nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return(agents[:1], nil)

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.candidate.EXPECT().DeleteForDonationTx(ctx, m.tx, "don-1").Return(nil)
		m.candidate.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.donation.EXPECT().SetAssignmentAuditTx(ctx, m.tx, "don-1", gomock.Any(), repository.AssignmentAuto).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.NoError(t, err)
	})

	t.Run("refreshes the cached entry after assignment", func(t *testing.T) {
		_, m := newTestStorage(ctrl, DefaultConfig())
		donationCache := cache.NewDonationCache()
		s := NewDonationStorage(m.db, m.donation, m.candidate, m.user, m.history, m.outbox, donationCache, DefaultConfig())

		// What CreateDonation would have cached: pending, no coordinates,
		// no assignment audit yet.
		donationCache.Set(&repository.Donation{
			ID:      "don-1",
			DonorID: "donor-1",
			Status:  repository.DonationPending,
		})

		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&repository.Donation{
			ID:      "don-1",
			DonorID: "donor-1",
			Status:  repository.DonationPending,
		}, nil)
		m.user.EXPECT().GetByID(ctx, "donor-1").Return(&repository.User{
			ID:        "donor-1",
			Role:      repository.RoleDonor,
			Latitude:  float64Ptr(12.9716),
			Longitude: float64Ptr(77.5946),
		}, nil)
		m.donation.EXPECT().SetCoordinates(ctx, "don-1", 12.9716, 77.5946).Return(nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return(agents[:1], nil)

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.candidate.EXPECT().DeleteForDonationTx(ctx, m.tx, "don-1").Return(nil)
		m.candidate.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.donation.EXPECT().SetAssignmentAuditTx(ctx, m.tx, "don-1", gomock.Any(), repository.AssignmentAuto).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := s.AutoAssignCandidates(ctx, "don-1")
		assert.NoError(t, err)

		cached, found := donationCache.Get("don-1")
		require.True(t, found)
		require.NotNil(t, cached.Latitude)
		assert.Equal(t, 12.9716, *cached.Latitude)
		assert.Equal(t, 77.5946, *cached.Longitude)
		require.NotNil(t, cached.AutoAssignmentRunAt)
		assert.Equal(t, repository.AssignmentAuto, cached.AssignmentMethod)
	})

	t.Run("no coordinates anywhere is a no-op", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&repository.Donation{
			ID:      "don-1",
			DonorID: "donor-1",
			Status:  repository.DonationPending,
		}, nil)
		m.user.EXPECT().GetByID(ctx, "donor-1").Return(&repository.User{
			ID:   "donor-1",
			Role: repository.RoleDonor,
		}, nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.NoError(t, err)
	})

	t.Run("no eligible agents is a no-op", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		donation := *origin
		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&donation, nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return(nil, nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.NoError(t, err)
	})

	t.Run("agents without coordinates rank nowhere", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		donation := *origin
		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&donation, nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return([]*repository.User{
			{ID: "agent-nowhere", Role: repository.RoleAgent},
		}, nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.NoError(t, err)
	})

	t.Run("candidate insert failure rolls back", func(t *testing.T) {
		s, m := newTestStorage(ctrl, DefaultConfig())

		donation := *origin
		m.donation.EXPECT().GetByID(ctx, "don-1").Return(&donation, nil)
		m.user.EXPECT().GetEligibleAgents(ctx).Return(agents[:1], nil)

		m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
		m.candidate.EXPECT().DeleteForDonationTx(ctx, m.tx, "don-1").Return(nil)
		m.candidate.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(errors.New("insert failed"))
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := s.AutoAssignCandidates(ctx, "don-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store candidate")
	})
}
