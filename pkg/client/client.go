// Package client provides a typed HTTP client for the notes API. It mirrors
// the server's endpoints and uses the same entity model, so tests and
// integrations stay in one vocabulary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codecraf8/notesapi/pkg/models"
)

// Client calls the notes API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the server, with the raw body kept
// for inspection.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// NotesEnvelope is the collection wire shape: all notes under a "notes" key.
type NotesEnvelope struct {
	Notes []models.Note `json:"notes"`
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func decodeResponse(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// Health checks the service health endpoint.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListNotes fetches the whole collection.
func (c *Client) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}
	var result NotesEnvelope
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Notes, nil
}

// CreateNote posts a new note. The server answers with the full updated
// collection, which is returned as-is.
func (c *Client) CreateNote(ctx context.Context, note *models.Note) ([]models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/notes", note)
	if err != nil {
		return nil, err
	}
	var result NotesEnvelope
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Notes, nil
}

func (c *Client) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/notes/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	var result models.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateNote(ctx context.Context, id models.NoteID, note *models.Note) (*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/notes/"+id.String(), note)
	if err != nil {
		return nil, err
	}
	var result models.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteNote(ctx context.Context, id models.NoteID) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/notes/"+id.String(), nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}
