package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/models"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

// record captures the last request the test server saw.
type record struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newTestClient(t *testing.T, token string, status int, response string) (*Client, *record) {
	t.Helper()
	rec := &record{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, staticTokens(token)), rec
}

func TestLoginPostsCredentialsWithoutBearer(t *testing.T) {
	c, rec := newTestClient(t, "", http.StatusOK, `{"token":"tok-9"}`)

	token, err := c.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "tok-9" {
		t.Fatalf("token = %q, want tok-9", token)
	}
	if rec.method != http.MethodPost || rec.path != "/login" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
	if rec.auth != "" {
		t.Fatalf("login must not carry a bearer token, got %q", rec.auth)
	}

	var body map[string]string
	json.Unmarshal(rec.body, &body)
	if body["email"] != "a@b.com" || body["password"] != "secret" {
		t.Fatalf("unexpected body: %s", rec.body)
	}
}

func TestProfileSendsBearerToken(t *testing.T) {
	c, rec := newTestClient(t, "tok-1", http.StatusOK, `{"id":1,"name":"A","email":"a@b.com","role":"admin"}`)

	user, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if rec.auth != "Bearer tok-1" {
		t.Fatalf("auth header = %q", rec.auth)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("role = %q", user.Role)
	}
}

func TestProjectsDecodesEnvelope(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK,
		`{"data":[{"id":1,"title":"Alpha"},{"id":2,"title":"Beta","joined":true}]}`)

	projects, err := c.Projects(context.Background())
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/projects" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
	if len(projects) != 2 || projects[1].Joined != true {
		t.Fatalf("unexpected projects: %+v", projects)
	}
}

func TestJoinedProjectsPath(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, `{"data":[]}`)
	if _, err := c.JoinedProjects(context.Background()); err != nil {
		t.Fatalf("joined projects: %v", err)
	}
	if rec.path != "/projects/joined" {
		t.Fatalf("path = %q", rec.path)
	}
}

func TestCreateProjectReturnsCanonicalEntity(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusCreated,
		`{"data":{"id":7,"title":"Alpha","description":"d","created_at":"2026-01-01T00:00:00Z"}}`)

	created, err := c.CreateProject(context.Background(), models.ProjectDraft{Title: "Alpha", Description: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/projects" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
	// Identity and timestamps come from the server, not the draft.
	if created.ID != 7 || created.CreatedAt == "" {
		t.Fatalf("canonical entity not decoded: %+v", created)
	}
}

func TestUpdateProjectPath(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, `{"data":{"id":3,"title":"New"}}`)
	updated, err := c.UpdateProject(context.Background(), 3, models.ProjectDraft{Title: "New"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/projects/3" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
	if updated.Title != "New" {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestDeleteProjectNoContent(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusNoContent, "")
	if err := c.DeleteProject(context.Background(), 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.method != http.MethodDelete || rec.path != "/projects/5" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
}

func TestJoinProjectPath(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, "")
	if err := c.JoinProject(context.Background(), 4); err != nil {
		t.Fatalf("join: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/projects/4/join" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
}

func TestTasksScopedToProject(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK,
		`{"data":[{"id":5,"project_id":2,"title":"T","status":"Todo","user":{"id":7,"name":"Alice"},"user_create":{"id":1,"name":"Root"}}]}`)

	tasks, err := c.Tasks(context.Background(), 2)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if rec.path != "/projects/2/tasks" {
		t.Fatalf("path = %q", rec.path)
	}
	if len(tasks) != 1 || tasks[0].AssigneeName() != "Alice" || tasks[0].CreatorName() != "Root" {
		t.Fatalf("denormalized users not decoded: %+v", tasks)
	}
}

func TestUpdateTaskPath(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, `{"data":{"id":9,"title":"T","status":"Done"}}`)
	if _, err := c.UpdateTask(context.Background(), 9, models.TaskDraft{Title: "T", Status: models.StatusDone}); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/tasks/9" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
}

func TestAssignTaskSendsUserId(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, `{"data":{"id":5}}`)

	userID := int64(7)
	if _, err := c.AssignTask(context.Background(), 5, &userID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/tasks/5/assign" {
		t.Fatalf("request = %s %s", rec.method, rec.path)
	}
	var body map[string]*int64
	json.Unmarshal(rec.body, &body)
	if body["user_id"] == nil || *body["user_id"] != 7 {
		t.Fatalf("unexpected body: %s", rec.body)
	}
}

func TestAssignTaskNilUnassigns(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, `{"data":{"id":5}}`)
	if _, err := c.AssignTask(context.Background(), 5, nil); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	var body map[string]*int64
	json.Unmarshal(rec.body, &body)
	if v, ok := body["user_id"]; !ok || v != nil {
		t.Fatalf("expected explicit null user_id, got %s", rec.body)
	}
}

func TestJoinedUsersBareArray(t *testing.T) {
	c, rec := newTestClient(t, "tok", http.StatusOK, `[{"id":7,"name":"Alice","role":"member"}]`)
	users, err := c.JoinedUsers(context.Background(), 2)
	if err != nil {
		t.Fatalf("joined users: %v", err)
	}
	if rec.path != "/projects/2/joined-users" {
		t.Fatalf("path = %q", rec.path)
	}
	if len(users) != 1 || users[0].Name != "Alice" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestErrorCarriesServerMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     string
	}{
		{"error key", http.StatusUnauthorized, `{"error":"invalid credentials"}`, "invalid credentials"},
		{"message key", http.StatusBadRequest, `{"message":"title required"}`, "title required"},
		{"empty body", http.StatusInternalServerError, ``, "api: unexpected status 500"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, "tok", tc.status, tc.response)
			_, err := c.Profile(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type %T, want *Error", err)
			}
			if apiErr.Status != tc.status {
				t.Fatalf("status = %d, want %d", apiErr.Status, tc.status)
			}
			if apiErr.Error() != tc.want {
				t.Fatalf("message = %q, want %q", apiErr.Error(), tc.want)
			}
		})
	}
}
