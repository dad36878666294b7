// Package health exposes the standard gRPC health service backed by database pings.
package health

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Defaults used when no option overrides them.
const (
	DefaultInterval = 10 * time.Second
	DefaultTimeout  = 2 * time.Second
)

// ServiceName is reported alongside the overall ("") status.
const ServiceName = "gw-event-planner"

// Pinger checks that a dependency is reachable; *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server serves grpc.health.v1.Health and keeps its status in sync with the database.
type Server struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	grpc   *grpc.Server
	health *grpchealth.Server

	mu      sync.Mutex
	serving bool
}

// Option configures a Server.
type Option func(*Server)

// WithInterval sets how often the database is pinged.
func WithInterval(d time.Duration) Option {
	return func(s *Server) {
		s.interval = d
	}
}

// WithTimeout bounds a single ping.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.timeout = d
	}
}

// New creates a health server reporting NOT_SERVING until the first successful ping.
func New(pinger Pinger, opts ...Option) *Server {
	s := &Server{
		pinger:   pinger,
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
		grpc:     grpc.NewServer(),
		health:   grpchealth.NewServer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s.grpc, s.health)
	return s
}

// Check pings the database once and updates the reported status.
func (s *Server) Check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.pinger.PingContext(pingCtx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err != nil && s.serving:
		logger.Log.Warnw("database ping failed, reporting NOT_SERVING", "error", err)
	case err == nil && !s.serving:
		logger.Log.Infow("database reachable, reporting SERVING")
	}

	s.serving = err == nil
	if s.serving {
		s.setStatus(healthpb.HealthCheckResponse_SERVING)
	} else {
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	}
}

// Serve checks the database, then serves health RPCs on lis until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.Check(ctx)

	go s.watch(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		errCh <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown reports NOT_SERVING for good and stops the gRPC server.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.Stop()
	logger.Log.Info("gRPC health server stopped")
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
