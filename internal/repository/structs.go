package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Role string

const (
	RoleAdmin Role = "admin"
	RoleDonor Role = "donor"
	RoleAgent Role = "agent"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RoleAgent:
		return true
	default:
		return false
	}
}

type VerificationStatus string

const (
	VerificationPending     VerificationStatus = "pending"
	VerificationApproved    VerificationStatus = "approved"
	VerificationRejected    VerificationStatus = "rejected"
	VerificationNotRequired VerificationStatus = "not_required"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationRejected  DonationStatus = "rejected"
	DonationAssigned  DonationStatus = "assigned"
	DonationPickedUp  DonationStatus = "picked_up"
	DonationCollected DonationStatus = "collected"
)

func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationPending, DonationRejected, DonationAssigned, DonationPickedUp, DonationCollected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition leaves this status.
func (s DonationStatus) Terminal() bool {
	return s == DonationRejected || s == DonationCollected
}

type CandidateStatus string

const (
	CandidatePending  CandidateStatus = "pending"
	CandidateAccepted CandidateStatus = "accepted"
	CandidateDeclined CandidateStatus = "declined"
)

type AssignmentMethod string

const (
	AssignmentAuto   AssignmentMethod = "auto"
	AssignmentManual AssignmentMethod = "manual"
)

type User struct {
	ID                 string             `db:"id"`
	FirstName          string             `db:"first_name"`
	LastName           string             `db:"last_name"`
	Email              string             `db:"email"`
	Password           string             `db:"password"`
	Role               Role               `db:"role"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	Address            *string            `db:"address"`
	Phone              *string            `db:"phone"`
	Latitude           *float64           `db:"latitude"`
	Longitude          *float64           `db:"longitude"`
	JoinedAt           time.Time          `db:"joined_at"`
}

type Donation struct {
	ID                  string           `db:"id"`
	DonorID             string           `db:"donor_id"`
	AgentID             *string          `db:"agent_id"`
	FoodType            string           `db:"food_type"`
	Quantity            string           `db:"quantity"`
	CookingTime         time.Time        `db:"cooking_time"`
	Address             string           `db:"address"`
	Phone               string           `db:"phone"`
	Latitude            *float64         `db:"latitude"`
	Longitude           *float64         `db:"longitude"`
	ExpiryTime          time.Time        `db:"expiry_time"`
	Status              DonationStatus   `db:"status"`
	DonationPhotos      []string         `db:"donation_photos"`
	Proofs              []string         `db:"proofs"`
	ProofNotes          *string          `db:"proof_notes"`
	DonorToAdminMsg     *string          `db:"donor_to_admin_msg"`
	AdminToAgentMsg     *string          `db:"admin_to_agent_msg"`
	PickupConfirmedAt   *time.Time       `db:"pickup_confirmed_at"`
	CollectionTime      *time.Time       `db:"collection_time"`
	AutoAssignmentRunAt *time.Time       `db:"auto_assignment_run_at"`
	AssignmentMethod    AssignmentMethod `db:"assignment_method"`
	CreatedAt           time.Time        `db:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at"`
}

// DonationCandidate is one entry of a donation's candidate list. Rows
// are written once by auto assignment and only their status and
// responded_at change afterwards.
type DonationCandidate struct {
	ID          int64           `db:"id"`
	DonationID  string          `db:"donation_id"`
	AgentID     string          `db:"agent_id"`
	Position    int             `db:"position"`
	DistanceKm  float64         `db:"distance_km"`
	Status      CandidateStatus `db:"status"`
	RespondedAt *time.Time      `db:"responded_at"`
}

type HistoryEntry struct {
	ID         int64          `db:"id"`
	DonationID string         `db:"donation_id"`
	Status     DonationStatus `db:"status"`
	ChangedBy  *string        `db:"changed_by"`
	ChangedAt  time.Time      `db:"changed_at"`
}
