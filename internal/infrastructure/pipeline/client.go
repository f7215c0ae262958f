// Package pipeline holds the client for the external recommendation
// pipeline, the multi-agent system that searches jobs, events and courses
// for a user and writes the results to the Oportunidades collection.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			// The pipeline runs several agent searches before returning;
			// give it a generous budget.
			Timeout: 5 * time.Minute,
		},
	}
}

type runRequest struct {
	UserID string `json:"user_id"`
}

// Run invokes the pipeline for one user and blocks until it finishes. The
// user_id is the sole argument of the handoff contract.
func (c *Client) Run(ctx context.Context, userID string) error {
	b, err := json.Marshal(runRequest{UserID: userID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("pipeline: %s", msg)
	}
	return nil
}
