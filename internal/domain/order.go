package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Order sides accepted by the exchange.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Order types this client knows how to build.
const (
	TypeMarket = "MARKET"
	TypeLimit  = "LIMIT"
)

// Time-in-force policies for LIMIT orders.
const (
	TifGTC = "GTC"
	TifIOC = "IOC"
	TifFOK = "FOK"
)

// OrderIntent is the user's raw request before validation.
// Quantity and Price arrive pre-parsed from the CLI layer; Price is nil
// when the flag was not supplied.
type OrderIntent struct {
	Symbol      string
	Side        string
	Type        string
	Quantity    decimal.Decimal
	Price       *decimal.Decimal
	TimeInForce string
}

// OrderRequest is the normalized payload sent to the exchange.
// The two variants fix the field set per order type, so a MARKET order
// structurally cannot carry price or timeInForce.
type OrderRequest interface {
	// Params encodes the exact field set submitted to the order endpoint.
	Params() url.Values
}

// MarketOrder executes immediately at the prevailing price.
type MarketOrder struct {
	Symbol   string
	Side     string
	Quantity decimal.Decimal
}

func (o MarketOrder) Params() url.Values {
	v := url.Values{}
	v.Set("symbol", o.Symbol)
	v.Set("side", o.Side)
	v.Set("type", TypeMarket)
	v.Set("quantity", o.Quantity.String())
	return v
}

// LimitOrder executes only at the given price or better.
type LimitOrder struct {
	Symbol      string
	Side        string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	TimeInForce string
}

func (o LimitOrder) Params() url.Values {
	v := url.Values{}
	v.Set("symbol", o.Symbol)
	v.Set("side", o.Side)
	v.Set("type", TypeLimit)
	v.Set("quantity", o.Quantity.String())
	v.Set("price", o.Price.String())
	v.Set("timeInForce", o.TimeInForce)
	return v
}

// BuildOrderRequest validates an intent and produces the normalized request.
// Pure function: no I/O, no mutation of the intent.
//
// MARKET intents may carry a price or time-in-force; both are ignored rather
// than rejected, matching the exchange's own leniency.
func BuildOrderRequest(intent OrderIntent) (OrderRequest, error) {
	symbol := strings.ToUpper(intent.Symbol)
	side := strings.ToUpper(intent.Side)
	orderType := strings.ToUpper(intent.Type)

	if intent.Quantity.Sign() <= 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("quantity must be positive, got %s", intent.Quantity)}
	}

	switch orderType {
	case TypeMarket:
		return MarketOrder{
			Symbol:   symbol,
			Side:     side,
			Quantity: intent.Quantity,
		}, nil

	case TypeLimit:
		if intent.Price == nil {
			return nil, &ValidationError{Reason: "limit orders require a price"}
		}
		if intent.Price.Sign() <= 0 {
			return nil, &ValidationError{Reason: fmt.Sprintf("price must be positive, got %s", intent.Price)}
		}
		tif := strings.ToUpper(intent.TimeInForce)
		if tif == "" {
			tif = TifGTC
		}
		return LimitOrder{
			Symbol:      symbol,
			Side:        side,
			Quantity:    intent.Quantity,
			Price:       *intent.Price,
			TimeInForce: tif,
		}, nil

	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("unsupported order type: %s", intent.Type)}
	}
}
