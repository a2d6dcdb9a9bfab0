package server

import (
	"log/slog"

	contractspb "github.com/aperrin/gardetonor/gen/proto/contracts/v1"
	"github.com/aperrin/gardetonor/internal/comparison"
	"github.com/aperrin/gardetonor/internal/contracts"
	"github.com/aperrin/gardetonor/internal/export"
)

// ContractsServer adapts the core services to the gRPC surface. All
// domain errors are mapped to statuses at this boundary; nothing below
// it knows about gRPC.
type ContractsServer struct {
	contractspb.UnimplementedContractsServiceServer
	contracts   *contracts.Service
	comparisons *comparison.Service
	exporter    *export.Service

	// attentionDays is the default anniversary lookahead when a request
	// does not set one.
	attentionDays int

	logger *slog.Logger
}

func NewContractsServer(
	contractsSvc *contracts.Service,
	comparisonsSvc *comparison.Service,
	exporter *export.Service,
	attentionDays int,
	logger *slog.Logger,
) *ContractsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractsServer{
		contracts:     contractsSvc,
		comparisons:   comparisonsSvc,
		exporter:      exporter,
		attentionDays: attentionDays,
		logger:        logger,
	}
}
