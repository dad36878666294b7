package health

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newPingMock(t *testing.T) (sqlmock.Sqlmock, Pinger) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, db
}

func status(t *testing.T, s *Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNew_NotServingBeforeFirstPing(t *testing.T) {
	_, db := newPingMock(t)
	s := New(db)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, s, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, s, ServiceName))
	assert.Equal(t, DefaultInterval, s.interval)
	assert.Equal(t, DefaultTimeout, s.timeout)
}

func TestCheck(t *testing.T) {
	mock, db := newPingMock(t)
	s := New(db, WithInterval(time.Minute), WithTimeout(time.Second))

	mock.ExpectPing()
	s.Check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, s, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, s, ServiceName))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	s.Check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, s, ""))

	mock.ExpectPing()
	s.Check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, s, ""))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServe(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "DatabaseUp", want: healthpb.HealthCheckResponse_SERVING},
		{name: "DatabaseDown", pingErr: errors.New("db down"), want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, db := newPingMock(t)
			mock.ExpectPing().WillReturnError(tt.pingErr)

			s := New(db, WithInterval(time.Hour))

			lis, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- s.Serve(ctx, lis) }()

			conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
			require.NoError(t, err)
			defer conn.Close()

			client := healthpb.NewHealthClient(conn)
			assert.Eventually(t, func() bool {
				resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
				return err == nil && resp.GetStatus() == tt.want
			}, 5*time.Second, 50*time.Millisecond)

			cancel()
			select {
			case err := <-errCh:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("Serve did not return after cancel")
			}

			assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, s, ""))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
