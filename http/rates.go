package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/reeldata/reeldata"
)

// DefaultRatesURL is the public historical FX rates API endpoint.
const DefaultRatesURL = "https://api.frankfurter.app"

// Ensure RateClient implements reeldata.RateService at compile time.
var _ reeldata.RateService = (*RateClient)(nil)

// RateClient converts monetary amounts using a historical FX rates HTTP
// API. Requests are keyed by date, so conversions pinned to one reference
// date are reproducible across runs.
type RateClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// RateOption configures a RateClient.
type RateOption func(*RateClient)

// WithRatesURL overrides the rates API endpoint, for tests.
func WithRatesURL(u string) RateOption {
	return func(c *RateClient) {
		c.baseURL = u
	}
}

// WithRatesTimeout sets the timeout for rate lookups.
// Defaults to DefaultFetchTimeout if not specified.
func WithRatesTimeout(d time.Duration) RateOption {
	return func(c *RateClient) {
		c.timeout = d
	}
}

// NewRateClient creates a new FX rate client.
func NewRateClient(opts ...RateOption) *RateClient {
	c := &RateClient{
		baseURL: DefaultRatesURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Convert returns amount converted between ISO currency codes at the rate
// valid on asOf. Same-currency conversions short-circuit without a lookup.
// Returns ENOTFOUND if the API has no rate for the pair/date.
func (c *RateClient) Convert(ctx context.Context, from, to string, amount float64, asOf time.Time) (float64, error) {
	if from == to {
		return amount, nil
	}

	reqURL := fmt.Sprintf("%s/%s?from=%s&to=%s",
		c.baseURL,
		asOf.Format("2006-01-02"),
		url.QueryEscape(from),
		url.QueryEscape(to),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, reeldata.Errorf(reeldata.EINVALID, "invalid rates URL %q: %v", reqURL, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, reeldata.Errorf(reeldata.EUNAVAILABLE, "rate lookup %s/%s: %v", from, to, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, reeldata.Errorf(reeldata.ENOTFOUND, "no rate for %s/%s on %s", from, to, asOf.Format("2006-01-02"))
	case resp.StatusCode != http.StatusOK:
		return 0, reeldata.Errorf(reeldata.EUNAVAILABLE, "rates API HTTP %d for %s/%s", resp.StatusCode, from, to)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, reeldata.Errorf(reeldata.EINVALID, "malformed rates response: %v", err)
	}

	rate, ok := body.Rates[to]
	if !ok {
		return 0, reeldata.Errorf(reeldata.ENOTFOUND, "no rate for %s/%s on %s", from, to, asOf.Format("2006-01-02"))
	}
	return amount * rate, nil
}
