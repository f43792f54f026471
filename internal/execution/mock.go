package execution

import (
	"context"

	"bitestnet/internal/domain"
)

// MockExecution records submissions without touching the network.
type MockExecution struct {
	Submitted []domain.OrderRequest
	Outcome   domain.OrderOutcome
	Err       error
}

func NewMockExecution() *MockExecution {
	return &MockExecution{}
}

func (m *MockExecution) SubmitOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderOutcome, error) {
	m.Submitted = append(m.Submitted, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Outcome, nil
}
