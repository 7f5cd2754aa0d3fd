package repositories

import "context"

// HealthChecker is implemented by stores that can report their connectivity.
type HealthChecker interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
