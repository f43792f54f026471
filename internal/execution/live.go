package execution

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"bitestnet/internal/domain"
	"bitestnet/internal/infra/binance"
)

// LiveExecution submits orders through the Binance REST client and logs
// every attempt and outcome to the audit log. Each SubmitOrder call maps
// to exactly one remote call.
type LiveExecution struct {
	client *binance.Client
	log    *slog.Logger
}

func NewLiveExecution(client *binance.Client, log *slog.Logger) *LiveExecution {
	return &LiveExecution{client: client, log: log}
}

// SubmitOrder logs the exact normalized parameters, performs the single
// remote call, and logs the verbatim response or error. Remote errors are
// wrapped in a SubmissionError without alteration.
func (e *LiveExecution) SubmitOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderOutcome, error) {
	params := req.Params()
	e.log.Info("placing order", slog.String("params", params.Encode()))

	outcome, err := e.client.PlaceOrder(ctx, params)
	if err != nil {
		var apiErr *binance.APIError
		if errors.As(err, &apiErr) {
			e.log.Error("exchange rejected order",
				slog.Int("code", apiErr.Code),
				slog.String("msg", apiErr.Msg),
			)
			return nil, &domain.SubmissionError{Code: apiErr.Code, Msg: apiErr.Msg, Err: err}
		}
		e.log.Error("order submission failed", slog.Any("error", err))
		return nil, &domain.SubmissionError{Msg: err.Error(), Err: err}
	}

	respJSON, err := json.Marshal(outcome)
	if err != nil {
		respJSON = []byte("{}")
	}
	e.log.Info("order response", slog.String("body", string(respJSON)))
	return outcome, nil
}
