package models

// Role is the closed set of user roles known to the dashboard.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is the authenticated profile returned by the API.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin is the single capability check used by every call site that
// gates admin-only affordances or routes. A nil user has no capabilities.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Project groups tasks. Date and timestamp fields are kept as the wire
// strings the API returns.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Joined      bool   `json:"joined,omitempty"`
}

// ProjectDraft carries the user-editable project fields sent on create
// and update. The server assigns id and timestamps.
type ProjectDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Status is the closed set of task states.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists every valid status in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Task is a single row of a project's task list. Creator and Assignee are
// the denormalized users the API joins in; Assignee is nil for unassigned
// tasks.
type Task struct {
	ID         int64  `json:"id"`
	ProjectID  int64  `json:"project_id"`
	Title      string `json:"title"`
	Status     Status `json:"status"`
	AssignedTo int64  `json:"assigned_to"`
	CreatedBy  int64  `json:"created_by"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	Creator    *User  `json:"user_create"`
	Assignee   *User  `json:"user"`
}

// AssigneeName returns the denormalized assignee name, or "" when the
// task is unassigned.
func (t Task) AssigneeName() string {
	if t.Assignee == nil {
		return ""
	}
	return t.Assignee.Name
}

// CreatorName returns the denormalized creator name.
func (t Task) CreatorName() string {
	if t.Creator == nil {
		return ""
	}
	return t.Creator.Name
}

// TaskDraft carries the user-editable task fields sent on create and
// update.
type TaskDraft struct {
	Title     string `json:"title"`
	Status    Status `json:"status"`
	CreatedBy int64  `json:"created_by"`
}
