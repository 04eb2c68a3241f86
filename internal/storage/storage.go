//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/GauravSharma9258/DBMS-Project/internal/db"
	"github.com/GauravSharma9258/DBMS-Project/internal/matching"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

// TopicDonationEvents is the outbox topic every lifecycle event is
// published under.
const TopicDonationEvents = "donation_events"

const (
	eventDonationCreated    = "donation_created"
	eventCandidatesAssigned = "candidates_assigned"
	eventOfferAccepted      = "offer_accepted"
	eventOfferDeclined      = "offer_declined"
	eventDonationRejected   = "donation_rejected"
	eventDonationPickedUp   = "donation_picked_up"
	eventDonationCollected  = "donation_collected"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *repository.Donation) error
	CreateTx(ctx context.Context, tx db.Tx, donation *repository.Donation) error
	GetByID(ctx context.Context, id string) (*repository.Donation, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Donation, error)
	SetCoordinates(ctx context.Context, id string, lat, lng float64) error
	SetAssignmentAuditTx(ctx context.Context, tx db.Tx, id string, runAt time.Time, method repository.AssignmentMethod) error
	AssignAgentTx(ctx context.Context, tx db.Tx, id, agentID string, at time.Time) (bool, error)
	RejectTx(ctx context.Context, tx db.Tx, id string, at time.Time) (bool, error)
	MarkPickedUpTx(ctx context.Context, tx db.Tx, id string, at time.Time) error
	MarkCollectedTx(ctx context.Context, tx db.Tx, id string, at time.Time) error
	GetByDonor(ctx context.Context, donorID string, statuses []repository.DonationStatus) ([]*repository.Donation, error)
	GetByAgent(ctx context.Context, agentID string, statuses []repository.DonationStatus) ([]*repository.Donation, error)
	GetOpenForAgent(ctx context.Context, agentID string) ([]*repository.Donation, error)
	GetAllOpen(ctx context.Context) ([]*repository.Donation, error)
	DeleteByDonor(ctx context.Context, donorID string, statuses []repository.DonationStatus) error
	DeleteByAgent(ctx context.Context, agentID string, statuses []repository.DonationStatus) error
}

type CandidateRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, candidate *repository.DonationCandidate) error
	DeleteForDonationTx(ctx context.Context, tx db.Tx, donationID string) error
	GetByDonation(ctx context.Context, donationID string) ([]*repository.DonationCandidate, error)
	GetForDonationAgentTx(ctx context.Context, tx db.Tx, donationID, agentID string) (*repository.DonationCandidate, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, id int64, status repository.CandidateStatus, respondedAt time.Time) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *repository.User, password string) error
	ValidateUser(ctx context.Context, email, password string) (bool, error)
	GetByID(ctx context.Context, id string) (*repository.User, error)
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	GetEligibleAgents(ctx context.Context) ([]*repository.User, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *repository.HistoryEntry) error
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
	GetByDonationID(ctx context.Context, donationID string) ([]*repository.HistoryEntry, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// DonationCache keeps open donations in memory; terminal statuses are
// evicted on Set.
type DonationCache interface {
	LoadInitialData(ctx context.Context, donations []*repository.Donation)
	Get(id string) (*repository.Donation, bool)
	Set(donation *repository.Donation)
	Delete(id string)
}

type Config struct {
	// CandidateLimit bounds the candidate list computed per donation.
	CandidateLimit int
	// RequireFutureExpiry rejects donations whose expiry time is not
	// strictly after creation. Off by default pending a product
	// decision; historical records carry past expiries.
	RequireFutureExpiry bool
}

func DefaultConfig() Config {
	return Config{CandidateLimit: matching.DefaultCandidateLimit}
}

type DonationStorage struct {
	db            db.DB
	donationRepo  DonationRepository
	candidateRepo CandidateRepository
	userRepo      UserRepository
	historyRepo   HistoryRepository
	outboxRepo    OutboxTaskRepository
	cache         DonationCache
	config        Config
}

func NewDonationStorage(
	database db.DB,
	donationRepo DonationRepository,
	candidateRepo CandidateRepository,
	userRepo UserRepository,
	historyRepo HistoryRepository,
	outboxRepo OutboxTaskRepository,
	cache DonationCache,
	config Config,
) *DonationStorage {
	if config.CandidateLimit <= 0 {
		config.CandidateLimit = matching.DefaultCandidateLimit
	}
	return &DonationStorage{
		db:            database,
		donationRepo:  donationRepo,
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		historyRepo:   historyRepo,
		outboxRepo:    outboxRepo,
		cache:         cache,
		config:        config,
	}
}

func (s *DonationStorage) enqueueEventTx(ctx context.Context, tx db.Tx, payload repository.DonationEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.outboxRepo.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   TopicDonationEvents,
		Payload: body,
	})
}

func (s *DonationStorage) cacheSet(donation *repository.Donation) {
	if s.cache != nil {
		s.cache.Set(donation)
	}
}
