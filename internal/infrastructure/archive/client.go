package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client uploads chat transcripts to an external paste service. Upload
// failures are reported to the caller, which falls back to an inline
// transcript.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type uploadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (c *Client) Upload(title, text string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("archive service not configured")
	}

	body, err := json.Marshal(uploadRequest{Title: title, Content: text})
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Post(c.baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("archive upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("archive upload: unexpected status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("archive upload: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("archive upload: empty url in response")
	}
	return parsed.URL, nil
}
