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

type DonationRepo struct {
	db db.DB
}

func NewDonationRepo(db db.DB) storage.DonationRepository {
	return &DonationRepo{db: db}
}

const donationInsert = `
        INSERT INTO donations (
            id, donor_id, agent_id, food_type, quantity, cooking_time, address, phone,
            latitude, longitude, expiry_time, status, donation_photos, proofs, proof_notes,
            donor_to_admin_msg, admin_to_agent_msg, pickup_confirmed_at, collection_time,
            auto_assignment_run_at, assignment_method, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
    `

func donationInsertArgs(d *repository.Donation) []interface{} {
	return []interface{}{
		d.ID, d.DonorID, d.AgentID, d.FoodType, d.Quantity, d.CookingTime, d.Address, d.Phone,
		d.Latitude, d.Longitude, d.ExpiryTime, d.Status, d.DonationPhotos, d.Proofs, d.ProofNotes,
		d.DonorToAdminMsg, d.AdminToAgentMsg, d.PickupConfirmedAt, d.CollectionTime,
		d.AutoAssignmentRunAt, d.AssignmentMethod, d.CreatedAt, d.UpdatedAt,
	}
}

func (r *DonationRepo) Create(ctx context.Context, donation *repository.Donation) error {
	_, err := r.db.Exec(ctx, donationInsert, donationInsertArgs(donation)...)
	return err
}

func (r *DonationRepo) CreateTx(ctx context.Context, tx db.Tx, donation *repository.Donation) error {
	_, err := tx.Exec(ctx, donationInsert, donationInsertArgs(donation)...)
	return err
}

func (r *DonationRepo) GetByID(ctx context.Context, id string) (*repository.Donation, error) {
	var donation repository.Donation
	err := r.db.Get(ctx, &donation, "SELECT * FROM donations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Donation, error) {
	var donation repository.Donation
	err := tx.Get(ctx, &donation, "SELECT * FROM donations WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepo) SetCoordinates(ctx context.Context, id string, lat, lng float64) error {
	_, err := r.db.Exec(ctx, `
        UPDATE donations
        SET latitude = $1, longitude = $2, updated_at = $3
        WHERE id = $4
    `, lat, lng, time.Now().UTC(), id)
	return err
}

func (r *DonationRepo) SetAssignmentAuditTx(ctx context.Context, tx db.Tx, id string, runAt time.Time, method repository.AssignmentMethod) error {
	_, err := tx.Exec(ctx, `
        UPDATE donations
        SET auto_assignment_run_at = $1, assignment_method = $2, updated_at = $1
        WHERE id = $3
    `, runAt, method, id)
	return err
}

// AssignAgentTx is the exclusivity point of the accept path: the status
// check and the write happen in one conditional UPDATE, so of two
// concurrent accepts only one can see rows affected.
func (r *DonationRepo) AssignAgentTx(ctx context.Context, tx db.Tx, id, agentID string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE donations
        SET agent_id = $1, status = $2, updated_at = $3
        WHERE id = $4 AND status = $5
    `, agentID, repository.DonationAssigned, at, id, repository.DonationPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RejectTx moves a donation to rejected only while it is still
// pending, mirroring the conditional update of AssignAgentTx.
func (r *DonationRepo) RejectTx(ctx context.Context, tx db.Tx, id string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE donations
        SET status = $1, updated_at = $2
        WHERE id = $3 AND status = $4
    `, repository.DonationRejected, at, id, repository.DonationPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *DonationRepo) MarkPickedUpTx(ctx context.Context, tx db.Tx, id string, at time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE donations
        SET status = $1, pickup_confirmed_at = $2, updated_at = $2
        WHERE id = $3
    `, repository.DonationPickedUp, at, id)
	return err
}

func (r *DonationRepo) MarkCollectedTx(ctx context.Context, tx db.Tx, id string, at time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE donations
        SET status = $1, collection_time = $2, updated_at = $2
        WHERE id = $3
    `, repository.DonationCollected, at, id)
	return err
}

func (r *DonationRepo) GetByDonor(ctx context.Context, donorID string, statuses []repository.DonationStatus) ([]*repository.Donation, error) {
	var donations []*repository.Donation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM donations
        WHERE donor_id = $1 AND status = ANY($2)
        ORDER BY created_at DESC
    `, donorID, statusStrings(statuses))
	return donations, err
}

func (r *DonationRepo) GetByAgent(ctx context.Context, agentID string, statuses []repository.DonationStatus) ([]*repository.Donation, error) {
	var donations []*repository.Donation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM donations
        WHERE agent_id = $1 AND status = ANY($2)
        ORDER BY created_at DESC
    `, agentID, statusStrings(statuses))
	return donations, err
}

// GetOpenForAgent returns pending donations on which the agent still
// holds a pending candidate entry.
func (r *DonationRepo) GetOpenForAgent(ctx context.Context, agentID string) ([]*repository.Donation, error) {
	var donations []*repository.Donation
	err := r.db.Select(ctx, &donations, `
        SELECT d.* FROM donations d
        JOIN donation_candidates c ON c.donation_id = d.id
        WHERE d.status = $1 AND c.agent_id = $2 AND c.status = $3
        ORDER BY c.position ASC, d.created_at DESC
    `, repository.DonationPending, agentID, repository.CandidatePending)
	return donations, err
}

func (r *DonationRepo) GetAllOpen(ctx context.Context) ([]*repository.Donation, error) {
	var donations []*repository.Donation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM donations
        WHERE status = ANY($1)
        ORDER BY created_at ASC
    `, statusStrings([]repository.DonationStatus{
		repository.DonationPending,
		repository.DonationAssigned,
		repository.DonationPickedUp,
	}))
	return donations, err
}

func (r *DonationRepo) DeleteByDonor(ctx context.Context, donorID string, statuses []repository.DonationStatus) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM donations
        WHERE donor_id = $1 AND status = ANY($2)
    `, donorID, statusStrings(statuses))
	return err
}

func (r *DonationRepo) DeleteByAgent(ctx context.Context, agentID string, statuses []repository.DonationStatus) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM donations
        WHERE agent_id = $1 AND status = ANY($2)
    `, agentID, statusStrings(statuses))
	return err
}

func statusStrings(statuses []repository.DonationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
