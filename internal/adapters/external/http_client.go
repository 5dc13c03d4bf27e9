// Package external provides adapters for caches and third-party HTTP services:
// air quality and forecast providers and the reverse geocoder.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const maxErrorBody = 512

// HTTPClient is the subset of *http.Client the providers need
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(client HTTPClient, timeout time.Duration) HTTPClient {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

type jsonRequest struct {
	service string
	baseURL string
	path    string
	query   url.Values
	headers map[string]string
}

// getJSON performs a GET and decodes a 200 response into target.
// 404 maps to NotFound; every other failure is an ExternalAPI error.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, r jsonRequest, target interface{}) error {
	endpoint := r.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to build %s request", r.service), err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to call %s", r.service), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && logger != nil {
			logger.Warn("Failed to close response body", ports.F("service", r.service), ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError(fmt.Sprintf("%s has no data for the request", r.service))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.NewExternalAPIError(
			fmt.Sprintf("%s returned status %d: %s", r.service, resp.StatusCode, string(body)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to decode %s response", r.service), err)
	}
	return nil
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
