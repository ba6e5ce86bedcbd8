// Package probe issues bounded-timeout HTTP GET checks against public
// endpoints and reports per-endpoint reachability.
package probe

import (
	"context"
	"math"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout   = 2500 * time.Millisecond
	defaultUserAgent = "CrownStatus/1.0"
	maxWorkers       = 4
)

// Result is the outcome of one probe. HTTPStatus, LatencyMs and Error
// serialize as explicit nulls when unknown so the UI can render partial
// data without guessing.
type Result struct {
	OK         bool    `json:"ok"`
	HTTPStatus *int    `json:"http_status"`
	LatencyMs  *int    `json:"latency_ms"`
	Error      *string `json:"error"`
}

// Prober runs GET probes with a shared client, fixed user agent and
// per-probe timeout. TLS verification is the default (system roots).
type Prober struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// New returns a Prober with the stock client and timeouts.
func New() *Prober {
	return &Prober{
		client:    &http.Client{},
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
}

// NewWithClient lets callers (and tests) supply the HTTP client and a
// custom timeout. A zero timeout keeps the default.
func NewWithClient(client *http.Client, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Prober{client: client, userAgent: defaultUserAgent, timeout: timeout}
}

// Check probes a single URL. A response with status in [200,500) counts
// as ok: a 4xx means the site is up and answered, which is what the
// dashboard cares about. 5xx keeps the status code but is not ok.
// Transport failures carry the error text instead of a status.
func (p *Prober) Check(ctx context.Context, url string) Result {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failureResult(start, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return failureResult(start, err)
	}
	latency := elapsedMs(start)
	_ = resp.Body.Close()

	status := resp.StatusCode
	return Result{
		OK:         status >= 200 && status < 500,
		HTTPStatus: &status,
		LatencyMs:  &latency,
	}
}

// CheckAll probes every URL concurrently, capped at min(len, 4)
// workers, and returns results in input order regardless of completion
// order. Each goroutine writes only its own slot, so no lock is needed.
// A slot that was never filled gets a synthetic failure so the output
// length always equals the input length.
func (p *Prober) CheckAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	filled := make([]bool, len(urls))

	var g errgroup.Group
	g.SetLimit(min(len(urls), maxWorkers))
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			results[i] = p.Check(ctx, url)
			filled[i] = true
			return nil
		})
	}
	_ = g.Wait()

	for i := range results {
		if !filled[i] {
			results[i] = SyntheticFailure()
		}
	}
	return results
}

// SyntheticFailure stands in for a probe that never produced a result.
func SyntheticFailure() Result {
	msg := "Probe failed"
	return Result{OK: false, Error: &msg}
}

func failureResult(start time.Time, err error) Result {
	latency := elapsedMs(start)
	msg := err.Error()
	return Result{OK: false, LatencyMs: &latency, Error: &msg}
}

func elapsedMs(start time.Time) int {
	return int(math.Round(time.Since(start).Seconds() * 1000))
}
