package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/transferauth/internal/adapter/audit/mongodb"
	grpcadapter "github.com/simaogato/transferauth/internal/adapter/grpc"
	transferauthv1 "github.com/simaogato/transferauth/internal/adapter/grpc/transferauth/v1"
	"github.com/simaogato/transferauth/internal/adapter/lock"
	"github.com/simaogato/transferauth/internal/adapter/notify"
	"github.com/simaogato/transferauth/internal/adapter/repository/memory"
	"github.com/simaogato/transferauth/internal/adapter/repository/postgres"
	"github.com/simaogato/transferauth/internal/config"
	"github.com/simaogato/transferauth/internal/domain"
	"github.com/simaogato/transferauth/internal/usecase/authority"
	"github.com/simaogato/transferauth/internal/usecase/seeder"
	"github.com/simaogato/transferauth/internal/usecase/sweeper"
)

const (
	dbConnectAttempts = 5
	dbRetryDelay      = 2 * time.Second
)

// ledger is what the authority and the seeder need from account storage
type ledger interface {
	domain.AccountLedger
	seeder.AccountOpener
}

// storage groups the repositories of one backend
type storage struct {
	transfers domain.TransferRepository
	codes     domain.VerificationCodeRepository
	attempts  domain.AttemptLogRepository
	audit     domain.AuditRepository
	ledger    ledger
	tx        domain.TransactionManager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped with error")
	}
	logger.Info().Msg("Server stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	logger = logger.With().Timestamp().Str("service", "transferauth").Logger()
	log.Logger = logger
	return logger
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	// 1. Setup storage
	store, closeStore, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	closers = append(closers, closeStore)

	// 2. Audit trail for admin overrides
	if cfg.AuditBackend == config.BackendMongo {
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		closers = append(closers, func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(shutdownCtx)
		})

		auditRepo := mongodb.NewAuditRepository(client, cfg.MongoDB)
		if err := auditRepo.EnsureIndexes(ctx); err != nil {
			return err
		}
		store.audit = auditRepo
		logger.Info().Str("db", cfg.MongoDB).Msg("Audit entries go to MongoDB")
	}

	// 3. Transfer lock
	locker, closeLocker, err := openLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	closers = append(closers, closeLocker)

	// 4. Notifications
	publisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	dispatcher := notify.NewDispatcher(
		notify.NewBreakerPublisher(cfg.NotifyBackend, publisher, notify.DefaultBreakerConfig(), logger),
		cfg.NotifyQueueSize,
		logger,
	)

	// 5. Initialize the authority
	transferAuthority := authority.NewTransferAuthority(authority.Dependencies{
		TransferRepo: store.transfers,
		CodeRepo:     store.codes,
		AttemptRepo:  store.attempts,
		AuditRepo:    store.audit,
		Ledger:       store.ledger,
		TxManager:    store.tx,
		Locker:       locker,
		Notifier:     dispatcher,
		Policy:       &cfg.Policy,
		Logger:       &logger,
	})

	// Open development accounts
	if len(cfg.SeedAccounts) > 0 {
		accounts := make([]seeder.Account, 0, len(cfg.SeedAccounts))
		for _, a := range cfg.SeedAccounts {
			accounts = append(accounts, seeder.Account{ID: a.ID, Balance: a.Balance})
		}
		if err := seeder.NewAccountSeeder(store.ledger).Seed(ctx, accounts); err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		logger.Info().Int("accounts", len(accounts)).Msg("Accounts seeded successfully")
	}

	// 6. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken, cfg.AdminToken),
		),
	)
	transferauthv1.RegisterTransferAuthorityServiceServer(grpcServer, grpcadapter.NewServer(transferAuthority))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	// The dispatcher outlives the gRPC server so events of in-flight calls are delivered
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(dispatchCtx)
	})
	g.Go(func() error {
		return sweeper.NewSweeper(transferAuthority, cfg.SweepInterval, logger).Run(gctx)
	})
	g.Go(func() error {
		logger.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("failed to serve gRPC server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Graceful shutdown
		<-gctx.Done()
		logger.Info().Msg("Shutting down gracefully...")
		grpcServer.GracefulStop()
		logger.Info().Msg("gRPC server stopped")
		stopDispatch()
		return nil
	})

	return g.Wait()
}

func openStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*storage, func(), error) {
	if cfg.StorageBackend == config.BackendMemory {
		logger.Warn().Msg("Using in-memory storage, state is lost on restart")
		store := memory.NewStore()
		return &storage{
			transfers: memory.NewTransferRepository(store),
			codes:     memory.NewVerificationCodeRepository(store),
			attempts:  memory.NewAttemptLogRepository(store),
			audit:     memory.NewAuditRepository(store),
			ledger:    memory.NewLedger(store),
			tx:        memory.NewTransactionManager(store),
		}, func() {}, nil
	}

	db, err := connectDB(ctx, cfg.DBConnStr, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return &storage{
		transfers: postgres.NewTransferRepository(db),
		codes:     postgres.NewVerificationCodeRepository(db),
		attempts:  postgres.NewAttemptLogRepository(db),
		audit:     postgres.NewAuditRepository(db),
		ledger:    postgres.NewLedger(db),
		tx:        postgres.NewTransactionManager(db),
	}, func() { db.Close() }, nil
}

// connectDB retries while Postgres is starting up
func connectDB(ctx context.Context, connStr string, logger zerolog.Logger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := postgres.NewDB(connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Msg("Database not ready")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dbRetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to database: %w", lastErr)
}

func openLocker(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (domain.Locker, func(), error) {
	if cfg.LockBackend != config.BackendRedis {
		return lock.NewMemoryLocker(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	locker, err := lock.NewRedisLocker(ctx, client, lock.DefaultOptions(), logger)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis transfer locks")
	return locker, func() { client.Close() }, nil
}

func openPublisher(cfg *config.Config, logger zerolog.Logger) (notify.Publisher, error) {
	switch cfg.NotifyBackend {
	case config.BackendKafka:
		logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("Publishing events to Kafka")
		return notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case config.BackendRabbitMQ:
		publisher, err := notify.DialRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("exchange", cfg.RabbitMQExchange).Msg("Publishing events to RabbitMQ")
		return publisher, nil
	default:
		return notify.NewLogPublisher(logger), nil
	}
}
