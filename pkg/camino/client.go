// Package camino provides the shared HTTP client for the Camino geospatial API.
package camino

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Camino API endpoint
	DefaultBaseURL = "https://api.getcamino.ai"

	// DefaultUserAgent is the default User-Agent string
	DefaultUserAgent = "camino-mcp/0.1.0"

	// APIKeyHeader carries the caller's Camino API key
	APIKeyHeader = "X-API-Key"

	// DefaultTimeout applies to all endpoints except /query
	DefaultTimeout = 30 * time.Second

	// QueryTimeout is the extended timeout for the /query endpoint,
	// which may wait on Overpass processing and AI ranking upstream
	QueryTimeout = 120 * time.Second
)

var (
	// HTTP clients with connection pooling. The query client exists
	// because /query can legitimately take 30-60 seconds.
	httpClient  *http.Client
	queryClient *http.Client

	// Rate limiter for the Camino API
	limiter *rate.Limiter

	baseURL     string
	baseURLLock sync.RWMutex

	userAgent     string
	userAgentLock sync.RWMutex
)

func init() {
	httpClient = newClient(DefaultTimeout)
	queryClient = newClient(QueryTimeout)

	// Generous default; Camino imposes its own quotas server-side
	limiter = rate.NewLimiter(rate.Limit(10), 5)

	baseURL = DefaultBaseURL
	if u := os.Getenv("CAMINO_BASE_URL"); u != "" {
		baseURL = u
	}

	userAgent = DefaultUserAgent
}

func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
		Timeout: timeout,
	}
}

// BaseURL returns the current Camino API base URL.
func BaseURL() string {
	baseURLLock.RLock()
	defer baseURLLock.RUnlock()
	return baseURL
}

// SetBaseURL overrides the Camino API base URL.
func SetBaseURL(u string) {
	baseURLLock.Lock()
	defer baseURLLock.Unlock()
	baseURL = u
}

// SetUserAgent sets the User-Agent string for outbound requests.
func SetUserAgent(ua string) {
	userAgentLock.Lock()
	defer userAgentLock.Unlock()
	userAgent = ua
}

// GetUserAgent returns the current User-Agent string.
func GetUserAgent() string {
	userAgentLock.RLock()
	defer userAgentLock.RUnlock()
	return userAgent
}

// UpdateRateLimits replaces the Camino API rate limiter.
func UpdateRateLimits(rps float64, burst int) {
	limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// StatusError is returned when the Camino API responds with a non-2xx
// status. The upstream body is preserved so callers can surface it.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("camino API returned status %d: %s", e.StatusCode, e.Body)
}

// Request describes a single call to the Camino API.
type Request struct {
	Method string
	Path   string     // endpoint path, e.g. "/search"
	Query  url.Values // query string parameters, may be nil
	Body   any        // JSON-encoded request body, may be nil
	APIKey string     // value for the X-API-Key header
	Slow   bool       // use the extended-timeout client
}

// Call issues a single request to the Camino API and returns the raw JSON
// response body. Non-2xx responses are returned as *StatusError with the
// upstream body attached; a body that is not valid JSON is an error.
func Call(ctx context.Context, r Request) ([]byte, error) {
	logger := slog.Default()

	reqURL, err := url.Parse(BaseURL() + r.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}
	if r.Query != nil {
		reqURL.RawQuery = r.Query.Encode()
	}

	var bodyReader io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", GetUserAgent())
	req.Header.Set(APIKeyHeader, r.APIKey)
	req.Header.Set("X-Request-Id", requestID)
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	client := httpClient
	if r.Slow {
		client = queryClient
	}

	logger.Debug("calling camino API",
		"method", r.Method,
		"path", r.Path,
		"request_id", requestID)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to camino API failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("camino API returned invalid JSON")
	}

	return data, nil
}
