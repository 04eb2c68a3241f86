package storage

import (
	"time"

	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

type Donation struct {
	ID                  string      `json:"id"`
	DonorID             string      `json:"donor_id"`
	AgentID             string      `json:"agent_id,omitempty"`
	FoodType            string      `json:"food_type"`
	Quantity            string      `json:"quantity"`
	CookingTime         time.Time   `json:"cooking_time"`
	Address             string      `json:"address"`
	Phone               string      `json:"phone"`
	Latitude            *float64    `json:"latitude,omitempty"`
	Longitude           *float64    `json:"longitude,omitempty"`
	ExpiryTime          time.Time   `json:"expiry_time"`
	Status              string      `json:"status"`
	DonationPhotos      []string    `json:"donation_photos,omitempty"`
	Proofs              []string    `json:"proofs,omitempty"`
	ProofNotes          string      `json:"proof_notes,omitempty"`
	Candidates          []Candidate `json:"candidates,omitempty"`
	AssignmentMethod    string      `json:"assignment_method"`
	AutoAssignmentRunAt *time.Time  `json:"auto_assignment_run_at,omitempty"`
	PickupConfirmedAt   *time.Time  `json:"pickup_confirmed_at,omitempty"`
	CollectionTime      *time.Time  `json:"collection_time,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type Candidate struct {
	AgentID     string     `json:"agent_id"`
	Position    int        `json:"position"`
	DistanceKm  float64    `json:"distance_km"`
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

type HistoryEntry struct {
	DonationID string    `json:"donation_id"`
	Status     string    `json:"status"`
	ChangedBy  string    `json:"changed_by,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}

// NewDonation is the input of CreateDonation. Coordinates may be left
// nil; auto assignment then falls back to the donor's profile location.
type NewDonation struct {
	FoodType        string
	Quantity        string
	CookingTime     time.Time
	Address         string
	Phone           string
	Latitude        *float64
	Longitude       *float64
	ExpiryTime      time.Time
	DonationPhotos  []string
	DonorToAdminMsg string
}

type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionDecline ResponseAction = "decline"
)

func (a ResponseAction) IsValid() bool {
	return a == ActionAccept || a == ActionDecline
}

func toDonation(d *repository.Donation, candidates []*repository.DonationCandidate) *Donation {
	out := &Donation{
		ID:                  d.ID,
		DonorID:             d.DonorID,
		FoodType:            d.FoodType,
		Quantity:            d.Quantity,
		CookingTime:         d.CookingTime,
		Address:             d.Address,
		Phone:               d.Phone,
		Latitude:            d.Latitude,
		Longitude:           d.Longitude,
		ExpiryTime:          d.ExpiryTime,
		Status:              string(d.Status),
		DonationPhotos:      d.DonationPhotos,
		Proofs:              d.Proofs,
		AssignmentMethod:    string(d.AssignmentMethod),
		AutoAssignmentRunAt: d.AutoAssignmentRunAt,
		PickupConfirmedAt:   d.PickupConfirmedAt,
		CollectionTime:      d.CollectionTime,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
	if d.AgentID != nil {
		out.AgentID = *d.AgentID
	}
	if d.ProofNotes != nil {
		out.ProofNotes = *d.ProofNotes
	}
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, Candidate{
			AgentID:     c.AgentID,
			Position:    c.Position,
			DistanceKm:  c.DistanceKm,
			Status:      string(c.Status),
			RespondedAt: c.RespondedAt,
		})
	}
	return out
}

func toHistoryEntry(e *repository.HistoryEntry) HistoryEntry {
	out := HistoryEntry{
		DonationID: e.DonationID,
		Status:     string(e.Status),
		ChangedAt:  e.ChangedAt,
	}
	if e.ChangedBy != nil {
		out.ChangedBy = *e.ChangedBy
	}
	return out
}
