package binance

import "fmt"

// APIError is the exchange's structured error body, e.g.
// {"code":-2015,"msg":"Invalid API-key, IP, or permissions for action."}.
// Code and Msg are surfaced verbatim, never reinterpreted.
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance: code=%d msg=%q", e.Code, e.Msg)
}
