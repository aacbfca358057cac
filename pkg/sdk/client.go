// Package foliodex is the Go client for the foliodex HTTP API.
package foliodex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is the foliodex SDK entry point.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a foliodex Client for the given server base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("foliodex: base URL required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c, nil
}

// Project is a catalog entry.
type Project struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ProjectURL  string   `json:"project_url,omitempty"`
}

// ProjectList is a page of projects with the unclipped match count.
type ProjectList struct {
	Items []Project `json:"items"`
	Total int       `json:"total"`
}

// SearchRequest holds the parameters of a catalog search.
type SearchRequest struct {
	Query       string
	Type        string
	DateFrom    string
	DateTo      string
	IncludeTags []string
	ExcludeTags []string
	Limit       int
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Text     string    `json:"text"`
	Projects []Project `json:"projects"`
}

// Health is the aggregated service health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ListProjects returns projects in catalog order. projectType may be empty.
func (c *Client) ListProjects(ctx context.Context, projectType string) (ProjectList, error) {
	q := url.Values{}
	if projectType != "" {
		q.Set("type", projectType)
	}

	var out ProjectList
	if err := c.get(ctx, "/api/v1/projects", q, &out); err != nil {
		return ProjectList{}, err
	}
	return out, nil
}

// GetProject returns a single project by id.
func (c *Client) GetProject(ctx context.Context, id string) (Project, error) {
	var out Project
	if err := c.get(ctx, "/api/v1/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return Project{}, err
	}
	return out, nil
}

// Search runs a catalog search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (ProjectList, error) {
	q := url.Values{}
	if req.Query != "" {
		q.Set("q", req.Query)
	}
	if req.Type != "" {
		q.Set("type", req.Type)
	}
	if req.DateFrom != "" {
		q.Set("date_from", req.DateFrom)
	}
	if req.DateTo != "" {
		q.Set("date_to", req.DateTo)
	}
	for _, t := range req.IncludeTags {
		q.Add("include_tags", t)
	}
	for _, t := range req.ExcludeTags {
		q.Add("exclude_tags", t)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}

	var out ProjectList
	if err := c.get(ctx, "/api/v1/search", q, &out); err != nil {
		return ProjectList{}, err
	}
	return out, nil
}

// Chat sends a message to the assistant.
func (c *Client) Chat(ctx context.Context, message string) (ChatReply, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return ChatReply{}, fmt.Errorf("foliodex: marshal request: %w", err)
	}

	var out ChatReply
	if err := c.post(ctx, "/api/v1/assistant/chat", body, &out); err != nil {
		return ChatReply{}, err
	}
	return out, nil
}

// Health returns the service health report.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return Health{}, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("foliodex: build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("foliodex: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("foliodex: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("foliodex: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return apiErrorFromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("foliodex: decode response: %w", err)
		}
	}
	return nil
}
