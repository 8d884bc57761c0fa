package querygrpc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/server"
	"github.com/blockberries/querykit/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ QueryServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a QueryService over gRPC. Queries pass through
// server.Server admission before reaching the service.
type GRPCServer struct {
	srv    *server.Server
	logger *slog.Logger
}

// NewGRPCServer creates a gRPC server wrapping svc.
func NewGRPCServer(svc querykit.QueryService, opts ...server.Option) *GRPCServer {
	return &GRPCServer{
		srv:    server.New(svc, opts...),
		logger: slog.Default().With("component", "querykit/grpc"),
	}
}

// Register adds the query service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterQueryServiceServer(gs, s)
}

// Serve serves on lis until ctx is done, then stops gracefully.
// A logging interceptor is installed ahead of any in opts.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener, opts ...grpc.ServerOption) error {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(s.LoggingInterceptor)}, opts...)
	gs := grpc.NewServer(opts...)
	s.Register(gs)

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			gs.GracefulStop()
		case <-stopped:
		}
	}()
	err := gs.Serve(lis)
	close(stopped)
	return err
}

// Server returns the underlying server for advanced use.
func (s *GRPCServer) Server() *server.Server {
	return s.srv
}

func (s *GRPCServer) Find(ctx context.Context, q *types.Query) (*types.QueryResponse, error) {
	resp, err := s.srv.Find(ctx, *q)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoggingInterceptor logs each unary call at debug level, and
// failures at error level.
func (s *GRPCServer) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Error("rpc failed", "method", info.FullMethod, "duration", time.Since(start), "error", err)
		return resp, err
	}
	s.logger.Debug("rpc", "method", info.FullMethod, "duration", time.Since(start))
	return resp, nil
}
