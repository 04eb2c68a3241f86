package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/GauravSharma9258/DBMS-Project/internal/db"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	"github.com/GauravSharma9258/DBMS-Project/internal/storage"
)

type CandidateRepo struct {
	db db.DB
}

func NewCandidateRepo(db db.DB) storage.CandidateRepository {
	return &CandidateRepo{db: db}
}

func (r *CandidateRepo) CreateTx(ctx context.Context, tx db.Tx, candidate *repository.DonationCandidate) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO donation_candidates (
            donation_id, agent_id, position, distance_km, status, responded_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, candidate.DonationID, candidate.AgentID, candidate.Position, candidate.DistanceKm, candidate.Status, candidate.RespondedAt)
	return err
}

func (r *CandidateRepo) DeleteForDonationTx(ctx context.Context, tx db.Tx, donationID string) error {
	_, err := tx.Exec(ctx, "DELETE FROM donation_candidates WHERE donation_id = $1", donationID)
	return err
}

func (r *CandidateRepo) GetByDonation(ctx context.Context, donationID string) ([]*repository.DonationCandidate, error) {
	var candidates []*repository.DonationCandidate
	err := r.db.Select(ctx, &candidates, `
        SELECT * FROM donation_candidates
        WHERE donation_id = $1
        ORDER BY position ASC
    `, donationID)
	return candidates, err
}

func (r *CandidateRepo) GetForDonationAgentTx(ctx context.Context, tx db.Tx, donationID, agentID string) (*repository.DonationCandidate, error) {
	var candidate repository.DonationCandidate
	err := tx.Get(ctx, &candidate, `
        SELECT * FROM donation_candidates
        WHERE donation_id = $1 AND agent_id = $2
        FOR UPDATE
    `, donationID, agentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, id int64, status repository.CandidateStatus, respondedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE donation_candidates
        SET status = $1, responded_at = $2
        WHERE id = $3
    `, status, respondedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
