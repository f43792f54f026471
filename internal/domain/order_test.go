package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestBuildOrderRequest_Market(t *testing.T) {
	tests := []struct {
		name   string
		intent OrderIntent
	}{
		{
			name:   "plain market",
			intent: OrderIntent{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: dec("0.001")},
		},
		{
			name:   "lowercase input is normalized",
			intent: OrderIntent{Symbol: "btcusdt", Side: "buy", Type: "market", Quantity: dec("0.001")},
		},
		{
			name: "price and tif on market are ignored",
			intent: OrderIntent{
				Symbol: "ethusdt", Side: "sell", Type: "MARKET",
				Quantity: dec("0.01"), Price: decPtr("2000"), TimeInForce: "IOC",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildOrderRequest(tt.intent)
			if err != nil {
				t.Fatalf("BuildOrderRequest() error = %v", err)
			}
			mkt, ok := req.(MarketOrder)
			if !ok {
				t.Fatalf("expected MarketOrder, got %T", req)
			}
			if mkt.Symbol != strings.ToUpper(tt.intent.Symbol) {
				t.Errorf("Symbol = %q, want uppercased %q", mkt.Symbol, tt.intent.Symbol)
			}
			if mkt.Side != strings.ToUpper(tt.intent.Side) {
				t.Errorf("Side = %q, want uppercased %q", mkt.Side, tt.intent.Side)
			}

			params := req.Params()
			for _, key := range []string{"symbol", "side", "type", "quantity"} {
				if params.Get(key) == "" {
					t.Errorf("params missing %q", key)
				}
			}
			if len(params) != 4 {
				t.Errorf("params has %d fields, want exactly 4: %v", len(params), params)
			}
			if _, ok := params["price"]; ok {
				t.Error("market order params must not contain price")
			}
			if _, ok := params["timeInForce"]; ok {
				t.Error("market order params must not contain timeInForce")
			}
			if got := params.Get("type"); got != TypeMarket {
				t.Errorf("type = %q, want %q", got, TypeMarket)
			}
		})
	}
}

func TestBuildOrderRequest_Limit(t *testing.T) {
	tests := []struct {
		name    string
		intent  OrderIntent
		wantTif string
	}{
		{
			name:    "tif defaults to GTC",
			intent:  OrderIntent{Symbol: "ethusdt", Side: "SELL", Type: "LIMIT", Quantity: dec("0.01"), Price: decPtr("2000")},
			wantTif: TifGTC,
		},
		{
			name: "explicit tif kept",
			intent: OrderIntent{
				Symbol: "BTCUSDT", Side: "buy", Type: "limit",
				Quantity: dec("1"), Price: decPtr("45000.5"), TimeInForce: "IOC",
			},
			wantTif: TifIOC,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildOrderRequest(tt.intent)
			if err != nil {
				t.Fatalf("BuildOrderRequest() error = %v", err)
			}
			lim, ok := req.(LimitOrder)
			if !ok {
				t.Fatalf("expected LimitOrder, got %T", req)
			}
			if lim.TimeInForce != tt.wantTif {
				t.Errorf("TimeInForce = %q, want %q", lim.TimeInForce, tt.wantTif)
			}

			params := req.Params()
			if len(params) != 6 {
				t.Errorf("params has %d fields, want exactly 6: %v", len(params), params)
			}
			if got := params.Get("price"); got != tt.intent.Price.String() {
				t.Errorf("price = %q, want %q", got, tt.intent.Price.String())
			}
			if got := params.Get("timeInForce"); got != tt.wantTif {
				t.Errorf("timeInForce = %q, want %q", got, tt.wantTif)
			}
		})
	}
}

func TestBuildOrderRequest_LimitMissingPrice(t *testing.T) {
	sides := []string{"BUY", "SELL"}
	symbols := []string{"BTCUSDT", "ethusdt"}
	tifs := []string{"", "GTC", "FOK"}

	for _, side := range sides {
		for _, symbol := range symbols {
			for _, tif := range tifs {
				intent := OrderIntent{
					Symbol: symbol, Side: side, Type: "LIMIT",
					Quantity: dec("0.01"), TimeInForce: tif,
				}
				_, err := BuildOrderRequest(intent)
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("BuildOrderRequest(%s/%s/%s) error = %v, want ValidationError", symbol, side, tif, err)
				}
				if !strings.Contains(valErr.Reason, "require") || !strings.Contains(valErr.Reason, "price") {
					t.Errorf("message %q should mention require and price", valErr.Reason)
				}
			}
		}
	}
}

func TestBuildOrderRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		intent OrderIntent
		want   string
	}{
		{
			name:   "unsupported type",
			intent: OrderIntent{Symbol: "BTCUSDT", Side: "BUY", Type: "STOP", Quantity: dec("1")},
			want:   "unsupported order type: STOP",
		},
		{
			name:   "zero quantity",
			intent: OrderIntent{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: decimal.Zero},
			want:   "quantity must be positive",
		},
		{
			name:   "negative quantity",
			intent: OrderIntent{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: dec("-1")},
			want:   "quantity must be positive",
		},
		{
			name:   "negative limit price",
			intent: OrderIntent{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: dec("1"), Price: decPtr("-5")},
			want:   "price must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildOrderRequest(tt.intent)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("BuildOrderRequest() error = %v, want ValidationError", err)
			}
			if !strings.Contains(valErr.Reason, tt.want) {
				t.Errorf("Reason = %q, want it to contain %q", valErr.Reason, tt.want)
			}
		})
	}
}
