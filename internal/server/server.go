//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	"github.com/GauravSharma9258/DBMS-Project/internal/storage"
)

type Storage interface {
	CreateDonation(ctx context.Context, actor *repository.User, input storage.NewDonation) (*storage.Donation, error)
	AutoAssignCandidates(ctx context.Context, donationID string) error
	GetDonation(ctx context.Context, id string) (*storage.Donation, error)
	RespondToDonation(ctx context.Context, donationID string, actor *repository.User, action storage.ResponseAction) (*storage.Donation, error)
	MarkPickedUp(ctx context.Context, donationID string, actor *repository.User) (*storage.Donation, error)
	MarkCollected(ctx context.Context, donationID string, actor *repository.User) (*storage.Donation, error)
	RejectDonation(ctx context.Context, donationID string, actor *repository.User) (*storage.Donation, error)
	GetDonorDonations(ctx context.Context, donorID string, statuses []repository.DonationStatus) ([]*storage.Donation, error)
	GetAgentCollections(ctx context.Context, agentID string) ([]*storage.Donation, error)
	GetOpenOffers(ctx context.Context, agentID string) ([]*storage.Donation, error)
	GetDonationHistory(ctx context.Context, donationID string) ([]storage.HistoryEntry, error)
	PurgeDonorDonations(ctx context.Context, actor *repository.User) error
	PurgeAgentCollections(ctx context.Context, actor *repository.User) error
}

type UserDirectory interface {
	ValidateUser(ctx context.Context, email, password string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
}

type Server struct {
	storage      Storage
	users        UserDirectory
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, users UserDirectory, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		storage:      storage,
		users:        users,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.auditLogMiddleware)
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/donations", s.handleCreateDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}", s.handleGetDonation).Methods(http.MethodGet)
	api.HandleFunc("/donations/{id}/history", s.handleDonationHistory).Methods(http.MethodGet)
	api.HandleFunc("/donations/{id}/respond", s.handleRespondToDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}/pickup", s.handleMarkPickedUp).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}/collect", s.handleMarkCollected).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}/reject", s.handleRejectDonation).Methods(http.MethodPost)

	api.HandleFunc("/donors/{donorID}/donations", s.handleDonorDonations).Methods(http.MethodGet)
	api.HandleFunc("/donors/{donorID}/donations", s.handlePurgeDonorDonations).Methods(http.MethodDelete)

	api.HandleFunc("/agents/{agentID}/collections", s.handleAgentCollections).Methods(http.MethodGet)
	api.HandleFunc("/agents/{agentID}/collections", s.handlePurgeAgentCollections).Methods(http.MethodDelete)
	api.HandleFunc("/agents/{agentID}/offers", s.handleAgentOffers).Methods(http.MethodGet)

	return router
}

type contextKey string

const userContextKey contextKey = "acting-user"

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.users.ValidateUser(r.Context(), email, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := s.users.GetByEmail(r.Context(), email)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actingUser(r *http.Request) *repository.User {
	user, _ := r.Context().Value(userContextKey).(*repository.User)
	return user
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
