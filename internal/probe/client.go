// internal/probe/client.go
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/watchpost/watchpost/internal/models"
)

const maxPayloadBytes = 4 * 1024 * 1024 // 4 MB, well above any real usage payload

// Client is the poll engine's view of the network, one call per endpoint
// kind. Implementations must honor ctx cancellation.
type Client interface {
	// FetchMetrics retrieves the usage payload of a metrics-source endpoint.
	// A *PayloadError means the endpoint answered but the response was not a
	// usable payload; any other error means it could not be reached.
	FetchMetrics(ctx context.Context, address string) (*models.RawMetrics, error)

	// FetchStatus performs one availability probe and returns the raw HTTP
	// status code. A status of 0 with a non-nil error means the target could
	// not be reached.
	FetchStatus(ctx context.Context, address string) (int, error)
}

// PayloadError marks a response that arrived but did not carry a usable
// metrics payload. The endpoint still counts as reachable.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string { return e.Err.Error() }
func (e *PayloadError) Unwrap() error { return e.Err }

// HTTPClient implements Client on net/http. It keeps two underlying clients:
// availability probes must not follow redirects, so a 301 surfaces as 301
// rather than as the redirect target's code.
type HTTPClient struct {
	metrics *http.Client
	status  *http.Client
}

// NewHTTPClient builds a probe client whose individual requests time out
// after timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		metrics: &http.Client{Timeout: timeout},
		status: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// FetchMetrics GETs the endpoint's usage payload: a full URL as given, the
// agent's usage route for a bare host:port address.
func (c *HTTPClient) FetchMetrics(ctx context.Context, address string) (*models.RawMetrics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, MetricsURL(address), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.metrics.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch usage: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, &PayloadError{Err: fmt.Errorf("read usage payload: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &PayloadError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var metrics models.RawMetrics
	if err := json.Unmarshal(body, &metrics); err != nil {
		return nil, &PayloadError{Err: fmt.Errorf("decode usage payload: %w", err)}
	}
	return &metrics, nil
}

// FetchStatus GETs the probe target once and reports the raw status code.
func (c *HTTPClient) FetchStatus(ctx context.Context, address string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ProbeURL(address), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.status.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	return resp.StatusCode, nil
}

// hasScheme reports whether address already names its protocol. Only the
// full scheme prefixes count; a host that merely starts with the letters
// "http" (httpbin.org) is still scheme-less.
func hasScheme(address string) bool {
	return strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://")
}

// MetricsURL builds the usage URL of a metrics-source endpoint. A full URL
// is fetched as given; a bare host:port gets the agent's scheme and usage
// route.
func MetricsURL(address string) string {
	if hasScheme(address) {
		return address
	}
	return fmt.Sprintf("http://%s/usage", address)
}

// ProbeURL normalizes an http-probe address, prefixing a scheme when the
// address does not already carry one.
func ProbeURL(address string) string {
	if hasScheme(address) {
		return address
	}
	return "http://" + address
}
