package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// ObjectStore uploads binary assets and returns their public URL. URLs
// are opaque strings to the rest of the system.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (string, error)
}

// Client talks to the object store service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient builds an object store client, auto-configuring an ID token
// client when none is supplied.
func NewClient(client *http.Client, storeBaseURL string) *Client {
	if storeBaseURL == "" {
		panic("storeBaseURL must not be empty")
	}
	storeBaseURL = strings.TrimRight(storeBaseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), storeBaseURL)
		if err != nil {
			client = &http.Client{Timeout: 30 * time.Second}
		} else {
			client = idc
		}
	}
	return &Client{client: client, baseURL: storeBaseURL}
}

// Put streams the object to the store and returns the public URL the
// store assigned. A store that answers without a body is assumed to serve
// the object at its upload path.
func (c *Client) Put(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (string, error) {
	target := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(bucket), url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, body)
	if err != nil {
		return "", fmt.Errorf("failed to create store request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if size > 0 {
		req.ContentLength = size
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("store error: %s", extractStoreError(resp.Body))
	}

	var storeResp struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&storeResp); err != nil && err != io.EOF {
		return "", fmt.Errorf("could not decode store response: %w", err)
	}
	if storeResp.Error != "" {
		return "", fmt.Errorf("store error: %s", storeResp.Error)
	}
	if storeResp.URL != "" {
		return storeResp.URL, nil
	}
	return target, nil
}

func extractStoreError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "unknown error"
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

var _ ObjectStore = (*Client)(nil)
