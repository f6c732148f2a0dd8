// Package client is a small Go client for the gems API, mirroring what the
// web front end does: submit a gem with an inline base64 image and fetch
// the collection for display.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// MaxImageBytes is the submission-form ceiling on an image file. It is
// checked before encoding so oversized payloads never reach the wire.
const MaxImageBytes = 5 << 20

type Gem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	SubmittedBy string    `json:"submittedBy"`
	Tags        []string  `json:"tags"`
	AITags      []string  `json:"aiTags,omitempty"`
	AIInsight   string    `json:"aiInsight,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	SubmittedBy string   `json:"submittedBy"`
	Tags        []string `json:"tags"`
}

// APIError carries a user-readable message for every failure mode, so the
// caller can show it near the form without inspecting causes.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ListGems(ctx context.Context) ([]Gem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/gems", nil)
	if err != nil {
		return nil, err
	}

	var gems []Gem
	if err := c.do(req, &gems); err != nil {
		return nil, err
	}
	return gems, nil
}

func (c *Client) CreateGem(ctx context.Context, input GemInput) (*Gem, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/gems", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var gem Gem
	if err := c.do(req, &gem); err != nil {
		return nil, err
	}
	return &gem, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "Could not reach the server. Please try again later."}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "Received an unexpected response from the server."}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := env.Message
		if message == "" {
			message = "The server could not process the request."
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: "Received an unexpected response from the server."}
		}
	}
	return nil
}

// EncodeImageFile reads an image and returns it as a self-contained
// data-URL, enforcing the 5 MB ceiling the API side also assumes.
func EncodeImageFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("image size cannot exceed 5MB")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// SplitTags turns the form's comma-separated tag input into a clean list.
func SplitTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}
