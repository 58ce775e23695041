package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

type filePart struct {
	field string
	name  string
	path  string
}

// errServerStatus marks a 5xx response inside the breaker; the status is
// mapped to an APIError by the regular response handling below.
var errServerStatus = errors.New("server error status")

// doJSON issues a request with a JSON (or empty) body and decodes a JSON
// response into out when out is non-nil. Transport failures and 5xx
// responses are retried with exponential backoff; 4xx responses are not.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body []byte
	contentType := ""
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

// doMultipart issues a multipart/form-data request. Files are read from
// disk at call time; a missing file fails before anything is sent.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields url.Values, files []filePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, value := range values {
			if err := w.WriteField(key, value); err != nil {
				return fmt.Errorf("write form field %q: %w", key, err)
			}
		}
	}

	for _, f := range files {
		name := f.name
		if name == "" {
			name = filepath.Base(f.path)
		}
		part, err := w.CreateFormFile(f.field, name)
		if err != nil {
			return fmt.Errorf("create form file %q: %w", name, err)
		}
		src, err := os.Open(f.path)
		if err != nil {
			return fmt.Errorf("open attachment %q: %w", f.path, err)
		}
		_, err = io.Copy(part, src)
		src.Close()
		if err != nil {
			return fmt.Errorf("read attachment %q: %w", f.path, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	return c.do(ctx, method, path, buf.Bytes(), w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string, out any) error {
	endpoint := c.baseURL + "/" + path

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			delay := c.retryBase << (attempt - 1)
			c.log.WithFields(map[string]any{
				"endpoint": endpoint,
				"attempt":  attempt,
				"delay":    delay.String(),
			}).Warn("retrying request")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retryable, err := c.attempt(ctx, method, endpoint, body, contentType, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return lastErr
}

// attempt runs one request. The bool reports whether the failure is worth
// retrying.
func (c *Client) attempt(ctx context.Context, method, endpoint string, body []byte, contentType string, out any) (bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.httpClient.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, endpoint, reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	// 5xx responses count as breaker failures alongside transport errors,
	// so a backend answering nothing but errors still opens the circuit.
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			return resp, errServerStatus
		}
		return resp, nil
	})
	if err != nil && !errors.Is(err, errServerStatus) {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return false, fmt.Errorf("backend unavailable: %w", err)
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: string(respBody)}
		return resp.StatusCode >= 500, apiErr
	}

	if out == nil || len(respBody) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return false, fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return false, nil
}

// getFirst tries an ordered list of candidate paths and accepts the first
// that answers 2xx. Candidates that 404/405 move to the next; any other
// failure aborts. The winning candidate is logged so route drift on the
// backend stays observable.
func (c *Client) getFirst(ctx context.Context, candidates []string, out any) error {
	var lastErr error
	for _, path := range candidates {
		err := c.doJSON(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			c.log.WithField("endpoint", path).Debug("candidate endpoint succeeded")
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusMethodNotAllowed) {
			lastErr = err
			continue
		}
		return err
	}
	if lastErr != nil {
		return fmt.Errorf("no candidate endpoint matched (%d tried): %w", len(candidates), lastErr)
	}
	return errors.New("no candidate endpoints given")
}
