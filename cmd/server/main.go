// Command flashrecall-server starts the flashrecall gRPC scheduler.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/flashrecall/api/flashrecall/v1"
	"github.com/and161185/flashrecall/internal/config"
	"github.com/and161185/flashrecall/internal/migrate"
	"github.com/and161185/flashrecall/internal/repository"
	"github.com/and161185/flashrecall/internal/repository/postgres"
	"github.com/and161185/flashrecall/internal/repository/sqlite"
	grpcserver "github.com/and161185/flashrecall/internal/server/grpc"
	"github.com/and161185/flashrecall/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, opens storage and serves gRPC until SIGINT/SIGTERM.
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Dev, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.Storage.Driver),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer st.close()

	// Services
	reviewSvc := service.NewReviewService(st.cards, st.reviews, service.ReviewConfig{
		Params:       cfg.Scheduler.Params(),
		DefaultLimit: cfg.Due.DefaultLimit,
		MaxLimit:     cfg.Due.MaxLimit,
		QueryTimeout: cfg.Due.QueryTimeout,
	}, logger)
	deckSvc := service.NewDeckService(st.decks, st.cards, cfg.Import.MaxBatch, logger)

	app := grpcserver.New(reviewSvc, deckSvc, []byte(cfg.Auth.JWTKey))
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			app.AuthUnary(),
			grpcserver.LoggingUnary(logger),
		),
	}
	if cfg.TLS.Enabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("TLS disabled, bearer tokens travel in clear text")
	}
	s := grpc.NewServer(opts...)
	pb.RegisterSchedulerServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.Scheduler_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS.Enabled()))
		errCh <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		st.close()
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func newLogger(dev bool, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

type storage struct {
	decks   repository.DeckRepository
	cards   repository.FlashcardRepository
	reviews repository.ReviewRepository
	close   func()
}

// openStorage connects the configured backend and applies migrations when asked.
func openStorage(ctx context.Context, sc config.Storage, log *zap.Logger) (*storage, error) {
	switch sc.Driver {
	case "postgres":
		if sc.Migrate {
			if err := migrate.Up(ctx, sc.DSN, log); err != nil {
				return nil, fmt.Errorf("migrate up: %w", err)
			}
		}
		db, err := postgres.New(ctx, sc.DSN)
		if err != nil {
			return nil, err
		}
		return &storage{
			decks:   postgres.NewDeckRepo(db),
			cards:   postgres.NewFlashcardRepo(db),
			reviews: postgres.NewReviewRepo(db),
			close:   db.Close,
		}, nil
	case "sqlite":
		db, err := sqlite.Open(ctx, sc.DSN, sc.Migrate, log)
		if err != nil {
			return nil, err
		}
		return &storage{
			decks:   sqlite.NewDeckRepo(db),
			cards:   sqlite.NewFlashcardRepo(db),
			reviews: sqlite.NewReviewRepo(db),
			close:   func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", sc.Driver)
	}
}
