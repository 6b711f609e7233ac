// Package client is a typed HTTP client for the flashdeck API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flashdeck/flashdeck/internal/deck"
)

// APIError carries the raw error-body text of a non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return msg
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		OK bool `json:"ok"`
	}
	return c.do(ctx, http.MethodGet, "/api/ping", nil, &out)
}

func (c *Client) ListDecks(ctx context.Context) ([]deck.DeckSummary, error) {
	var out []deck.DeckSummary
	if err := c.do(ctx, http.MethodGet, "/api/decks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDeck(ctx context.Context, name, description string) (*deck.Deck, error) {
	in := map[string]string{"name": name, "description": description}
	var out deck.Deck
	if err := c.do(ctx, http.MethodPost, "/api/decks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDeck(ctx context.Context, id string) (*deck.DeckDetail, error) {
	var out deck.DeckDetail
	if err := c.do(ctx, http.MethodGet, "/api/decks/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCard(ctx context.Context, deckID, front, back string) (*deck.Card, error) {
	in := map[string]string{"front": front, "back": back}
	var out deck.Card
	if err := c.do(ctx, http.MethodPost, "/api/decks/"+deckID+"/cards", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCard(ctx context.Context, id string) error {
	var out struct {
		OK bool `json:"ok"`
	}
	return c.do(ctx, http.MethodDelete, "/api/cards/"+id, nil, &out)
}

// do performs one request/response cycle. A non-2xx status becomes an
// *APIError carrying the response body text; a 2xx body is decoded into out.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
