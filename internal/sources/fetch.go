package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultEntitiesURL serves the canonical named character reference map.
const DefaultEntitiesURL = "https://html.spec.whatwg.org/entities.json"

// ErrUnexpectedStatus is returned when the entity endpoint answers with a
// non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// NewHTTPClient returns a client whose transport is traced when telemetry
// is enabled.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

// FetchEntities issues a single GET and buffers the whole response body.
func FetchEntities(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = NewHTTPClient()
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("entities url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %w: %s", url, ErrUnexpectedStatus, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
