package transport

import (
	"context"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// LedgerServiceName is the gRPC health service name reported for the write consumer.
const LedgerServiceName = "shieldledger.Ledger"

// NewHealthServer reports the ledger as SERVING until done is closed or ctx ends,
// then as NOT_SERVING.
func NewHealthServer(ctx context.Context, done <-chan struct{}) *health.Server {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	srv.SetServingStatus(LedgerServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		select {
		case <-done:
		case <-ctx.Done():
		}
		srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		srv.SetServingStatus(LedgerServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	}()
	return srv
}
