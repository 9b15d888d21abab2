// Package clients talks to the weather, baggage and flight services.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"orientation/internal/domain"
)

const maxBodyBytes = 1 << 20

// NewHTTPClient returns the client shared by all upstream sources.
// Per-call deadlines come from the context; timeout is a backstop.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// statusError is returned for non-2xx upstream answers.
type statusError struct {
	Code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func getJSON(ctx context.Context, hc *http.Client, source, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.UpstreamError{Source: source, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return domain.UpstreamError{Source: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return domain.UpstreamError{Source: source, Err: statusError{Code: resp.StatusCode}}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dst); err != nil {
		return domain.UpstreamError{Source: source, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
