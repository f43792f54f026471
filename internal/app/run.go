package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"bitestnet/internal/domain"
	"bitestnet/internal/execution"
	"bitestnet/internal/infra"
	"bitestnet/internal/infra/binance"
)

// App wires the credential gate, order builder and submitter into the
// single-shot run pipeline. The execution factory is swappable so tests
// can run the full pipeline against a recording mock.
type App struct {
	log          *slog.Logger
	stdout       io.Writer
	newExecution func(infra.Credentials, infra.Settings, *slog.Logger) execution.Execution
}

// New creates an App targeting the real exchange client.
func New(log *slog.Logger, stdout io.Writer) *App {
	return &App{
		log:    log,
		stdout: stdout,
		newExecution: func(creds infra.Credentials, settings infra.Settings, log *slog.Logger) execution.Execution {
			client := binance.NewClient(settings.API.BaseURL, creds.APIKey, creds.APISecret, settings.API.RecvWindowMS)
			return execution.NewLiveExecution(client, log)
		},
	}
}

// NewWithExecution creates an App whose submitter is supplied by the caller.
func NewWithExecution(log *slog.Logger, stdout io.Writer, exec execution.Execution) *App {
	return &App{
		log:    log,
		stdout: stdout,
		newExecution: func(infra.Credentials, infra.Settings, *slog.Logger) execution.Execution {
			return exec
		},
	}
}

// Run executes the pipeline: resolve credentials, build the normalized
// request, submit it once, print the response. The returned error carries
// the failure class; main maps it to the exit code.
//
// The credential gate comes first: with unresolved credentials no client is
// constructed, nothing order-related is logged, and no validation runs.
func (a *App) Run(ctx context.Context, flagKey, flagSecret string, intent domain.OrderIntent, settings infra.Settings) error {
	creds, err := infra.ResolveCredentials(flagKey, flagSecret)
	if err != nil {
		a.log.Error(err.Error())
		return err
	}

	exec := a.newExecution(creds, settings, a.log)
	baseURL := settings.API.BaseURL
	if baseURL == "" {
		baseURL = binance.TestnetBaseURL
	}
	a.log.Info("client initialized for Binance Futures testnet", slog.String("base_url", baseURL))

	req, err := domain.BuildOrderRequest(intent)
	if err != nil {
		a.log.Error(err.Error())
		return err
	}

	outcome, err := exec.SubmitOrder(ctx, req)
	if err != nil {
		// Already logged at error severity by the submitter.
		return err
	}

	a.log.Info("order executed", slog.String("order_id", outcome.OrderID()))

	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return &domain.SubmissionError{Msg: fmt.Sprintf("encode response: %v", err), Err: err}
	}
	fmt.Fprintln(a.stdout, string(out))
	return nil
}
