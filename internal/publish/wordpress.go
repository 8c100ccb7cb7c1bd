// Package publish hands generated articles to a WordPress site through its
// REST API.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"newsgen/internal/core"
	"newsgen/internal/render"
)

// Post statuses accepted by WordPress.
const (
	StatusDraft   = "draft"
	StatusPublish = "publish"
)

// Credentials identifies the target WordPress site. Password should be an
// application password; it is forwarded as Basic auth and never logged.
type Credentials struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Post is the {title, content, status} tuple handed to WordPress. Content is
// markdown; it is rendered to HTML before upload.
type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// Result is the created post reference returned by WordPress.
type Result struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// Publisher posts articles to the WordPress REST API.
type Publisher struct {
	client *http.Client
}

// New creates a Publisher. A nil client gets a default with a 60s timeout.
func New(client *http.Client) *Publisher {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Publisher{client: client}
}

// Publish renders the post content to HTML and creates the post via
// POST {site}/wp-json/wp/v2/posts.
func (p *Publisher) Publish(ctx context.Context, creds Credentials, post Post) (Result, error) {
	if creds.URL == "" || creds.Username == "" || creds.Password == "" {
		return Result{}, core.NewValidationError("credentials", "url, username, and password are required")
	}
	if post.Title == "" {
		return Result{}, core.NewValidationError("title", "is required")
	}
	if post.Status == "" {
		post.Status = StatusDraft
	}
	if post.Status != StatusDraft && post.Status != StatusPublish {
		return Result{}, core.NewValidationError("status", `must be "draft" or "publish"`)
	}

	html, err := render.MarkdownToHTML(post.Content)
	if err != nil {
		return Result{}, err
	}

	body, err := json.Marshal(map[string]string{
		"title":   post.Title,
		"content": html,
		"status":  post.Status,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode post: %w", err)
	}

	endpoint := strings.TrimRight(creds.URL, "/") + "/wp-json/wp/v2/posts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, core.WrapBackendError("wordpress request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		// Drain a bounded amount of the error body for the message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, core.WrapBackendError(
			fmt.Sprintf("wordpress rejected the post (status %d): %s", resp.StatusCode, strings.TrimSpace(string(snippet))), nil)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, core.WrapBackendError("failed to decode wordpress response", err)
	}
	return result, nil
}
