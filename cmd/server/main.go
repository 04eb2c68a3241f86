package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GauravSharma9258/DBMS-Project/internal/cache"
	"github.com/GauravSharma9258/DBMS-Project/internal/db"
	"github.com/GauravSharma9258/DBMS-Project/internal/kafka"
	"github.com/GauravSharma9258/DBMS-Project/internal/logger"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository/postgresql"
	"github.com/GauravSharma9258/DBMS-Project/internal/server"
	"github.com/GauravSharma9258/DBMS-Project/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() {
		_ = zapLogger.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		zapLogger.Fatal("Database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	donationRepo := postgresql.NewDonationRepo(database)
	candidateRepo := postgresql.NewCandidateRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	donationCache := cache.NewDonationCache()

	stg := storage.NewDonationStorage(
		database,
		donationRepo,
		candidateRepo,
		userRepo,
		historyRepo,
		outboxRepo,
		donationCache,
		storage.DefaultConfig(),
	)

	if err := stg.WarmCache(ctx); err != nil {
		zapLogger.Warn("Cache warmup failed, continuing with an empty cache", zap.Error(err))
	}

	seedAdmin(ctx, userRepo, zapLogger)

	producer := newProducer(zapLogger)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	})

	srv := server.New(stg, userRepo, zapLogger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx, port)
	})
	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		publisher.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}

	zapLogger.Info("Server gracefully stopped")
}

// seedAdmin makes sure an admin account exists, using ADMIN_EMAIL and
// ADMIN_PASSWORD from the environment. Skipped silently when they are
// not set.
func seedAdmin(ctx context.Context, users storage.UserRepository, zapLogger *zap.Logger) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		zapLogger.Info("Admin user already exists", zap.String("email", adminEmail))
		return
	} else if !errors.Is(err, repository.ErrObjectNotFound) {
		zapLogger.Warn("Admin lookup failed, skipping seed", zap.Error(err))
		return
	}

	err := users.CreateUser(ctx, &repository.User{
		ID:                 uuid.NewString(),
		FirstName:          "Admin",
		LastName:           "User",
		Email:              adminEmail,
		Role:               repository.RoleAdmin,
		VerificationStatus: repository.VerificationNotRequired,
		JoinedAt:           time.Now().UTC(),
	}, adminPassword)
	if err != nil {
		zapLogger.Warn("Failed to seed admin user", zap.Error(err))
		return
	}
	zapLogger.Info("Admin user created", zap.String("email", adminEmail))
}

// newProducer connects to Kafka when KAFKA_BROKERS is set and falls
// back to console output otherwise, so local runs work without a
// broker.
func newProducer(zapLogger *zap.Logger) kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return kafka.NewConsoleProducer()
	}
	brokerList := strings.Split(brokers, ",")
	zapLogger.Info("Connecting Kafka producer", zap.Strings("brokers", brokerList))
	return kafka.NewKafkaProducer(brokerList)
}
