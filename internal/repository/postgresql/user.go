package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/GauravSharma9258/DBMS-Project/internal/db"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	"github.com/GauravSharma9258/DBMS-Project/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *repository.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO users (
            id, first_name, last_name, email, password, role, verification_status,
            address, phone, latitude, longitude, joined_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, user.ID, user.FirstName, user.LastName, user.Email, string(hashedPassword),
		user.Role, user.VerificationStatus, user.Address, user.Phone,
		user.Latitude, user.Longitude, user.JoinedAt)
	return err
}

func (r *UserRepo) ValidateUser(ctx context.Context, email, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM users WHERE email = $1", email).Scan(&hashedPassword)
	if err != nil {
		return false, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetEligibleAgents applies the ranking eligibility filter in SQL:
// agent role, approved verification, both coordinates known. The stable
// joined_at order gives the ranker a deterministic tiebreak input.
func (r *UserRepo) GetEligibleAgents(ctx context.Context) ([]*repository.User, error) {
	var agents []*repository.User
	err := r.db.Select(ctx, &agents, `
        SELECT * FROM users
        WHERE role = $1
          AND verification_status = $2
          AND latitude IS NOT NULL
          AND longitude IS NOT NULL
        ORDER BY joined_at ASC, id ASC
    `, repository.RoleAgent, repository.VerificationApproved)
	return agents, err
}
