package execution

import (
	"context"

	"bitestnet/internal/domain"
)

// Execution defines the interface for order submission.
type Execution interface {
	// SubmitOrder sends a normalized order to the exchange and returns
	// its decoded response.
	SubmitOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderOutcome, error)
}
