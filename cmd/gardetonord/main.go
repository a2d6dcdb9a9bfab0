package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	contractspb "github.com/aperrin/gardetonor/gen/proto/contracts/v1"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/comparison"
	"github.com/aperrin/gardetonor/internal/contracts"
	"github.com/aperrin/gardetonor/internal/export"
	"github.com/aperrin/gardetonor/internal/extraction"
	"github.com/aperrin/gardetonor/internal/llm/openai"
	"github.com/aperrin/gardetonor/internal/pdftext"
	"github.com/aperrin/gardetonor/internal/repository"
	"github.com/aperrin/gardetonor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Collaborators
	oracle := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	pdf := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.PDF.Pdftotext,
		Pdfinfo:   cfg.PDF.Pdfinfo,
	}, logger)

	// Repositories
	contractRepo := repository.NewContractRepository(db.Ent, logger)
	comparisonRepo := repository.NewComparisonRepository(db.Ent, logger)
	logRepo := repository.NewExtractionLogRepository(db.Ent, logger)

	// Contract intake logs its extractions; competitor-quote extraction
	// never did, so the comparison service gets a logless normalizer.
	intakeNorm := extraction.NewNormalizer(oracle, logRepo, logger)
	quoteNorm := extraction.NewNormalizer(oracle, nil, logger)

	contractsSvc := contracts.NewService(contractRepo, intakeNorm, pdf, logger)
	comparisonSvc := comparison.NewService(contractRepo, comparisonRepo, quoteNorm, pdf, oracle, logger)
	exportSvc := export.NewService(contractRepo, comparisonRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewContractsServer(contractsSvc, comparisonSvc, exportSvc, cfg.Alerts.NotificationDays, logger)
	contractspb.RegisterContractsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
