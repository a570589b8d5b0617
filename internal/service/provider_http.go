package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smartcity/weatherlookup/internal/domain"
)

// Replies larger than this are treated as malformed.
const maxReplyBytes = 1 << 20

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET and decodes a 200 reply into out. Failures come back
// already classified as *domain.SearchError.
func getJSON(ctx context.Context, client *http.Client, provider, endpoint, city string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.NewGenericError(city, fmt.Errorf("%s: failed to create request: %w", provider, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "weatherlookup/1.0")

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.NewGenericError(city, fmt.Errorf("%s: request canceled: %w", provider, err))
		}
		return domain.NewConnectivityError(city, fmt.Errorf("%s: request failed: %w", provider, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes+1))
	if err != nil {
		return domain.NewConnectivityError(city, fmt.Errorf("%s: failed to read response body: %w", provider, err))
	}
	if len(body) > maxReplyBytes {
		return domain.NewMalformedResponseError(city, fmt.Errorf("%s: reply exceeds %d bytes", provider, maxReplyBytes))
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return domain.NewNotFoundError(city, fmt.Errorf("%s: API error (status %d): %s", provider, resp.StatusCode, snippet(body)))
	case resp.StatusCode != http.StatusOK:
		return domain.NewGenericError(city, fmt.Errorf("%s: API error (status %d): %s", provider, resp.StatusCode, snippet(body)))
	}

	if signalsUnknownLocation(body) {
		return domain.NewNotFoundError(city, fmt.Errorf("%s: %s", provider, snippet(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewMalformedResponseError(city, fmt.Errorf("%s: failed to decode response: %w", provider, err))
	}
	return nil
}

// signalsUnknownLocation recognizes the plain-text "Unknown location" answers
// some providers send with a 200 status.
func signalsUnknownLocation(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return false
	}
	lower := strings.ToLower(trimmed)
	return strings.Contains(lower, "unknown location") || strings.Contains(lower, "city not found")
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
