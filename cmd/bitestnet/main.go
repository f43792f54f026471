// bitestnet places a single MARKET or LIMIT order on the Binance USDT-M
// Futures testnet.
//
// Market order:
//
//	bitestnet --symbol BTCUSDT --side BUY --type MARKET --quantity 0.001
//
// Limit order:
//
//	bitestnet --symbol ETHUSDT --side SELL --type LIMIT --quantity 0.01 --price 2000
//
// Credentials come from --api-key/--api-secret or the BINANCE_API_KEY and
// BINANCE_API_SECRET environment variables. Every request and response is
// logged to stdout and to bot.log. Exit codes: 0 success, 1 missing
// credentials, 2 invalid order parameters, 3 exchange or transport error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"bitestnet/internal/app"
	"bitestnet/internal/domain"
	"bitestnet/internal/infra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bitestnet", flag.ContinueOnError)
	fs.SetOutput(stderr)

	apiKey := fs.String("api-key", "", "Binance API key (falls back to "+infra.EnvAPIKey+")")
	apiSecret := fs.String("api-secret", "", "Binance API secret (falls back to "+infra.EnvAPISecret+")")
	symbol := fs.String("symbol", "", "trading pair symbol, e.g. BTCUSDT")
	side := fs.String("side", "", "order side: BUY or SELL")
	orderType := fs.String("type", "", "order type: MARKET or LIMIT")
	quantity := fs.String("quantity", "", "order quantity")
	price := fs.String("price", "", "price (required for LIMIT)")
	tif := fs.String("tif", domain.TifGTC, "time in force for LIMIT orders: GTC, IOC or FOK")
	recvWindow := fs.Int64("recv-window", 0, "request validity window in ms (default from settings)")
	baseURL := fs.String("base-url", "", "API base URL (default: futures testnet)")
	logFile := fs.String("log-file", "", "audit log file (default: "+infra.DefaultLogFile+")")
	configPath := fs.String("config", "configs/config.yaml", "optional settings file")

	if err := fs.Parse(args); err != nil {
		return domain.ExitValidation
	}

	intent, err := intentFromFlags(*symbol, *side, *orderType, *quantity, *price, *tif)
	if err != nil {
		fmt.Fprintln(stderr, "bitestnet:", err)
		fs.Usage()
		return domain.ExitValidation
	}

	settings, err := infra.LoadSettings(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "bitestnet:", err)
		return domain.ExitConfig
	}
	if *baseURL != "" {
		settings.API.BaseURL = *baseURL
	}
	if *recvWindow > 0 {
		settings.API.RecvWindowMS = *recvWindow
	}
	if *logFile != "" {
		settings.Logging.File = *logFile
	}

	log := infra.SetupLogger(settings.Logging.File, settings.Logging.Level)

	a := app.New(log, stdout)
	return domain.ExitCode(a.Run(context.Background(), *apiKey, *apiSecret, intent, settings))
}

// intentFromFlags enforces the argument contract: required flags, enum
// choices and strictly positive numbers are rejected here, before any
// logging or network setup.
func intentFromFlags(symbol, side, orderType, quantity, price, tif string) (domain.OrderIntent, error) {
	var intent domain.OrderIntent

	if symbol == "" {
		return intent, fmt.Errorf("--symbol is required")
	}

	side = strings.ToUpper(side)
	if side != domain.SideBuy && side != domain.SideSell {
		return intent, fmt.Errorf("--side must be BUY or SELL, got %q", side)
	}

	orderType = strings.ToUpper(orderType)
	if orderType != domain.TypeMarket && orderType != domain.TypeLimit {
		return intent, fmt.Errorf("--type must be MARKET or LIMIT, got %q", orderType)
	}

	qty, err := parsePositiveDecimal(quantity)
	if err != nil {
		return intent, fmt.Errorf("--quantity: %w", err)
	}

	var priceDec *decimal.Decimal
	if price != "" {
		p, err := parsePositiveDecimal(price)
		if err != nil {
			return intent, fmt.Errorf("--price: %w", err)
		}
		priceDec = &p
	}

	tif = strings.ToUpper(tif)
	switch tif {
	case domain.TifGTC, domain.TifIOC, domain.TifFOK:
	default:
		return intent, fmt.Errorf("--tif must be GTC, IOC or FOK, got %q", tif)
	}

	return domain.OrderIntent{
		Symbol:      symbol,
		Side:        side,
		Type:        orderType,
		Quantity:    qty,
		Price:       priceDec,
		TimeInForce: tif,
	}, nil
}

func parsePositiveDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("value is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", s)
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("value must be positive, got %s", d)
	}
	return d, nil
}
