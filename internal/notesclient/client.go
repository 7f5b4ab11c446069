package notesclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	notesBox "github.com/2beens/notesbox/internal/notes_box"
	"github.com/2beens/notesbox/internal/telemetry/tracing"
)

type Note = notesBox.Note

// APIError is returned for every non-2xx response of the notes API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notes api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("notes api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// NewTracedClient returns a client whose requests carry the trace context.
func NewTracedClient(baseURL string) *Client {
	return NewClient(baseURL, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func (c *Client) List(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, "notesClient.list", http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func (c *Client) Create(ctx context.Context, title, content string) (*Note, error) {
	note := &Note{}
	body := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, "notesClient.create", http.MethodPost, "/api/notes", body, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) Update(ctx context.Context, id int, title, content string) (*Note, error) {
	note := &Note{}
	body := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, "notesClient.update", http.MethodPut, "/api/notes/"+strconv.Itoa(id), body, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, "notesClient.delete", http.MethodDelete, "/api/notes/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) do(ctx context.Context, spanName, method, path string, reqBody, respBody any) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer span.End()
	span.SetAttributes(attribute.String("http.path", path))

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Tracef("close response body: %s", err)
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respBytes)),
		}
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if respBody == nil || len(respBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, respBody); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
