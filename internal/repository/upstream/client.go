// Package upstream holds the HTTP clients for the services the gateway sits
// in front of: the parking backend, the vision service and the aggregator.
// Every client is built from one configured base URL; nothing retries.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smart-parking/console/pkg/logger"
)

const (
	ServiceBackend    = "backend"
	ServiceVision     = "vision"
	ServiceAggregator = "aggregator"

	maxBodyBytes = 8 << 20
)

// Response is a buffered 2xx upstream answer.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

type client struct {
	service string
	baseURL *url.URL
	http    *http.Client
	stream  *http.Client
	log     logger.Interface
}

func newClient(service, baseURL string, timeout time.Duration, l logger.Interface) (*client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("upstream - %s - url.Parse: %w", service, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream - %s - invalid base url %q", service, baseURL)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	return &client{
		service: service,
		baseURL: u,
		http:    &http.Client{Timeout: timeout, Transport: transport},
		// streams run until the caller's context ends
		stream: &http.Client{Transport: transport},
		log:    l,
	}, nil
}

func (c *client) endpoint(p string, query url.Values) string {
	u := c.baseURL.JoinPath(p)
	u.RawQuery = query.Encode()

	return u.String()
}

func (c *client) send(ctx context.Context, hc *http.Client, method, p string, query url.Values, body []byte) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(p, query), rdr)
	if err != nil {
		return nil, fmt.Errorf("upstream - %s - http.NewRequest: %w", c.service, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := hc.Do(req)

	requestSeconds.WithLabelValues(c.service).Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(c.service, "unreachable").Inc()

		return nil, &UnreachableError{Service: c.service, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		requestsTotal.WithLabelValues(c.service, "error").Inc()

		return nil, &Error{Service: c.service, Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	requestsTotal.WithLabelValues(c.service, "ok").Inc()

	return resp, nil
}

func (c *client) fetch(ctx context.Context, method, p string, query url.Values, body []byte) (*Response, error) {
	resp, err := c.send(ctx, c.http, method, p, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &UnreachableError{Service: c.service, Err: err}
	}

	if len(data) > maxBodyBytes {
		requestsTotal.WithLabelValues(c.service, "too_large").Inc()

		return nil, &UnreachableError{Service: c.service, Err: ErrBodyTooLarge}
	}

	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

func (c *client) getJSON(ctx context.Context, p string, out interface{}) error {
	resp, err := c.fetch(ctx, http.MethodGet, p, nil, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("upstream - %s - decode %s: %w", c.service, p, err)
	}

	return nil
}

// getRaw returns the body of p, checked to be JSON.
func (c *client) getRaw(ctx context.Context, p string) (json.RawMessage, error) {
	resp, err := c.fetch(ctx, http.MethodGet, p, nil, nil)
	if err != nil {
		return nil, err
	}

	if !json.Valid(resp.Body) {
		return nil, fmt.Errorf("upstream - %s - %s: response is not JSON", c.service, p)
	}

	return resp.Body, nil
}

// probe reads the "status" field every service reports on its status route.
func (c *client) probe(ctx context.Context, p string) (string, error) {
	var body struct {
		Status string `json:"status"`
	}

	if err := c.getJSON(ctx, p, &body); err != nil {
		return "", err
	}

	return body.Status, nil
}

// readDetail extracts the explanation from an error body: {"detail": "..."}
// from the backend, {"error": "..."} or {"message": "..."} from the others.
func readDetail(r io.Reader) string {
	var body map[string]interface{}

	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&body); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "error", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}

	return ""
}
