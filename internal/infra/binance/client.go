package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bitestnet/internal/domain"
)

// TestnetBaseURL is the USDT-M Futures testnet endpoint. Same request and
// response contract as production, simulated funds.
const TestnetBaseURL = "https://testnet.binancefuture.com"

const orderPath = "/fapi/v1/order"

// maxResponseBytes caps how much of a response body is read. Order
// responses are well under 1 KiB.
const maxResponseBytes = 1 << 20

// Client handles signed REST communication with the Binance Futures API.
type Client struct {
	baseURL      string
	apiKey       string
	signer       *Signer
	recvWindowMS int64
	httpClient   *http.Client

	// nowMillis is swappable so tests can pin the timestamp parameter.
	nowMillis func() int64
}

// NewClient creates a REST client for the given endpoint. An empty baseURL
// targets the testnet.
func NewClient(baseURL, apiKey, apiSecret string, recvWindowMS int64) *Client {
	if baseURL == "" {
		baseURL = TestnetBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		signer:       NewSigner(apiSecret),
		recvWindowMS: recvWindowMS,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
}

// BaseURL reports the endpoint this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Wipe clears the signing secret from memory.
func (c *Client) Wipe() {
	c.signer.Wipe()
}

// PlaceOrder submits the order parameters to the order endpoint exactly
// once. There is no retry: a blind resubmission of an order-placement call
// risks a duplicate fill.
func (c *Client) PlaceOrder(ctx context.Context, params url.Values) (domain.OrderOutcome, error) {
	params.Set("timestamp", strconv.FormatInt(c.nowMillis(), 10))
	if c.recvWindowMS > 0 {
		params.Set("recvWindow", strconv.FormatInt(c.recvWindowMS, 10))
	}

	encoded := params.Encode()
	body := encoded + "&signature=" + c.signer.Sign(encoded)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+orderPath, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-MBX-APIKEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr APIError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Msg != "" {
			return nil, &apiErr
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	// json.Number keeps order ids and decimal fields exact on re-marshal.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var outcome domain.OrderOutcome
	if err := dec.Decode(&outcome); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return outcome, nil
}
