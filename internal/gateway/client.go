// Package gateway is the HTTP client for the Planora API. Every failure,
// transport or HTTP, surfaces as a single *RequestError carrying the
// server's message or an HTTP-status fallback.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abhinav6284/Planora/internal/dashboard"
	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

type Client struct {
	base  string
	http  *http.Client
	token string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &RequestError{Message: err.Error()}
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RequestError{Message: errorMessage(res)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &RequestError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func errorMessage(res *http.Response) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.NewDecoder(res.Body).Decode(&e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return "HTTP " + strconv.Itoa(res.StatusCode)
}

// ---- auth ----

type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	in := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return LoginResult{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (LoginResult, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return LoginResult{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) Me(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out, err
}

// ---- dashboard ----

type DashboardStats struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	ActiveProjects int `json:"active_projects"`
	OverdueTasks   int `json:"overdue_tasks"`
}

type DashboardData struct {
	RecentTasks    []model.Task    `json:"recent_tasks"`
	ActiveProjects []model.Project `json:"active_projects"`
}

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out)
	return out, err
}

func (c *Client) DashboardData(ctx context.Context) (DashboardData, error) {
	var out DashboardData
	err := c.do(ctx, http.MethodGet, "/api/dashboard/data", nil, &out)
	return out, err
}

// ---- tasks ----

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var out []model.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, draft model.Task) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", draft, &out)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, id int64, patch store.TaskPatch) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, http.MethodPut, "/api/tasks/"+strconv.FormatInt(id, 10), patch, &out)
	return out, err
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) TaskStats(ctx context.Context) (dashboard.TaskStats, error) {
	var out dashboard.TaskStats
	err := c.do(ctx, http.MethodGet, "/api/tasks/stats", nil, &out)
	return out, err
}

// ---- projects ----

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, draft model.Project) (model.Project, error) {
	var out model.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", draft, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+strconv.FormatInt(id, 10), nil, nil)
}

// ---- notes ----

func (c *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	var out []model.Note
	err := c.do(ctx, http.MethodGet, "/api/notes", nil, &out)
	return out, err
}

func (c *Client) CreateNote(ctx context.Context, draft model.Note) (model.Note, error) {
	var out model.Note
	err := c.do(ctx, http.MethodPost, "/api/notes", draft, &out)
	return out, err
}

func (c *Client) UpdateNote(ctx context.Context, id int64, patch store.NotePatch) (model.Note, error) {
	var out model.Note
	err := c.do(ctx, http.MethodPut, "/api/notes/"+strconv.FormatInt(id, 10), patch, &out)
	return out, err
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+strconv.FormatInt(id, 10), nil, nil)
}

// ---- assistant ----

type GeneratedProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) GenerateProject(ctx context.Context, prompt string) (GeneratedProject, error) {
	in := map[string]string{"prompt": prompt}
	var out GeneratedProject
	err := c.do(ctx, http.MethodPost, "/api/ai/generate-project", in, &out)
	return out, err
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	in := map[string]string{"message": message}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/roadmap/chat", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

var _ store.Remote = (*Client)(nil)
