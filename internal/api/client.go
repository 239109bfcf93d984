// Package api is the gateway client for the remote taskboard REST API.
// It attaches the bearer token, decodes the JSON envelopes and surfaces
// HTTP failures as *Error values carrying the server-provided message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"taskboard/internal/models"
)

// TokenSource yields the current bearer token, or "" when the session is
// unauthenticated.
type TokenSource interface {
	Token() string
}

// Client calls the remote API. The zero value is not usable; use New.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

// New returns a client rooted at base (e.g. "/api"), reading the bearer
// token from tokens on every authenticated request.
func New(base string, tokens TokenSource) *Client {
	return &Client{
		base:   base,
		http:   http.DefaultClient,
		tokens: tokens,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register creates an account. The caller must log in separately.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/register", body, nil)
}

// Profile returns the authenticated user.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// Projects lists every project.
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var out struct {
		Data []models.Project `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// JoinedProjects lists the projects the current user participates in.
func (c *Client) JoinedProjects(ctx context.Context) ([]models.Project, error) {
	var out struct {
		Data []models.Project `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects/joined", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateProject submits a draft and returns the canonical entity with the
// server-assigned id and timestamps.
func (c *Client) CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	var out struct {
		Data models.Project `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/projects", draft, &out); err != nil {
		return models.Project{}, err
	}
	return out.Data, nil
}

// UpdateProject replaces the editable fields of the project with the
// given id and returns the canonical entity.
func (c *Client) UpdateProject(ctx context.Context, id int64, draft models.ProjectDraft) (models.Project, error) {
	var out struct {
		Data models.Project `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), draft, &out); err != nil {
		return models.Project{}, err
	}
	return out.Data, nil
}

// DeleteProject removes the project with the given id.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

// JoinProject marks the current user as a participant.
func (c *Client) JoinProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/join", id), nil, nil)
}

// Tasks lists the tasks of a project.
func (c *Client) Tasks(ctx context.Context, projectID int64) ([]models.Task, error) {
	var out struct {
		Data []models.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/tasks", projectID), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateTask submits a draft into a project and returns the canonical
// entity.
func (c *Client) CreateTask(ctx context.Context, projectID int64, draft models.TaskDraft) (models.Task, error) {
	var out struct {
		Data models.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), draft, &out); err != nil {
		return models.Task{}, err
	}
	return out.Data, nil
}

// UpdateTask replaces the editable fields of the task with the given id
// and returns the canonical entity.
func (c *Client) UpdateTask(ctx context.Context, id int64, draft models.TaskDraft) (models.Task, error) {
	var out struct {
		Data models.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), draft, &out); err != nil {
		return models.Task{}, err
	}
	return out.Data, nil
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// AssignTask assigns the task to userID, or unassigns it when userID is
// nil. The returned entity lacks the denormalized joins, so callers
// refetch the task list instead of patching locally.
func (c *Client) AssignTask(ctx context.Context, taskID int64, userID *int64) (models.Task, error) {
	body := map[string]*int64{"user_id": userID}
	var out struct {
		Data models.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/assign", taskID), body, &out); err != nil {
		return models.Task{}, err
	}
	return out.Data, nil
}

// JoinedUsers lists the participants of a project. The endpoint returns a
// bare array, not the usual data envelope.
func (c *Client) JoinedUsers(ctx context.Context, projectID int64) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/joined-users", projectID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
