package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/GauravSharma9258/DBMS-Project/internal/db/mocks"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository/postgresql"
)

func TestCandidateRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewCandidateRepo(mockDB)

	candidate := &repository.DonationCandidate{
		DonationID: "don-1",
		AgentID:    "agent-1",
		Position:   1,
		DistanceKm: 2.35,
		Status:     repository.CandidatePending,
	}

	mockTx.EXPECT().Exec(
		ctx,
		gomock.Any(),
		"don-1",
		"agent-1",
		1,
		2.35,
		repository.CandidatePending,
		gomock.Nil(),
	).Return(pgconn.CommandTag("INSERT 0 1"), nil)

	err := repo.CreateTx(ctx, mockTx, candidate)

	assert.NoError(t, err)
}

func TestCandidateRepo_GetForDonationAgentTx(t *testing.T) {
	ctx := context.Background()

	t.Run("candidate found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewCandidateRepo(mockDB)

		mockTx.EXPECT().Get(ctx, gomock.Any(), gomock.Any(), "don-1", "agent-1").DoAndReturn(
			func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				c := dest.(*repository.DonationCandidate)
				c.ID = 7
				c.DonationID = "don-1"
				c.AgentID = "agent-1"
				c.Status = repository.CandidatePending
				return nil
			})

		candidate, err := repo.GetForDonationAgentTx(ctx, mockTx, "don-1", "agent-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), candidate.ID)
		assert.Equal(t, repository.CandidatePending, candidate.Status)
	})

	t.Run("agent is not a candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewCandidateRepo(mockDB)

		mockTx.EXPECT().Get(ctx, gomock.Any(), gomock.Any(), "don-1", "agent-9").Return(pgx.ErrNoRows)

		_, err := repo.GetForDonationAgentTx(ctx, mockTx, "don-1", "agent-9")

		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestCandidateRepo_UpdateStatusTx(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("status updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewCandidateRepo(mockDB)

		mockTx.EXPECT().Exec(ctx, gomock.Any(), repository.CandidateAccepted, now, int64(7)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateStatusTx(ctx, mockTx, 7, repository.CandidateAccepted, now)

		assert.NoError(t, err)
	})

	t.Run("missing candidate row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewCandidateRepo(mockDB)

		mockTx.EXPECT().Exec(ctx, gomock.Any(), repository.CandidateDeclined, now, int64(8)).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateStatusTx(ctx, mockTx, 8, repository.CandidateDeclined, now)

		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestCandidateRepo_DeleteForDonationTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewCandidateRepo(mockDB)

	mockTx.EXPECT().Exec(ctx, gomock.Any(), "don-1").Return(pgconn.CommandTag("DELETE 3"), nil)

	err := repo.DeleteForDonationTx(ctx, mockTx, "don-1")

	assert.NoError(t, err)
}
