package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// AdminService is the health service name reported for the admin API.
const AdminService = "adminpanel.Admin"

// GRPCServer is the ops listener: grpc.health.v1 and reflection.
type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	addr   string
	logger *logger.Logger
}

var _ model.Server = (*GRPCServer)(nil)

// NewGRPCServer creates a GRPCServer on addr. Health starts as NOT_SERVING until Start.
func NewGRPCServer(addr string, logger *logger.Logger) *GRPCServer {
	s := &GRPCServer{
		health: health.NewServer(),
		addr:   addr,
		logger: logger,
	}

	logOpts := []logging.Option{logging.WithLogOnEvents(logging.FinishCall)}
	recoveryOpts := []recovery.Option{recovery.WithRecoveryHandler(s.recover)}

	s.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.health.SetServingStatus(AdminService, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)

	return s
}

// interceptorLogger adapts logger to the go-grpc-middleware logging interface. Its levels share
// the slog numbering.
func interceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func (s *GRPCServer) recover(p any) error {
	s.logger.Error("gRPC server: recovered from panic", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}

// Start marks the services SERVING and serves on the configured address.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(AdminService, healthpb.HealthCheckResponse_SERVING)

	return s.server.Serve(listener)
}

// Stop reports NOT_SERVING to watchers and then stops gracefully.
func (s *GRPCServer) Stop(_ context.Context) error {
	s.health.Shutdown()
	s.server.GracefulStop()
	return nil
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}

// Name identifies the server in logs.
func (s *GRPCServer) Name() string {
	return "grpc"
}
