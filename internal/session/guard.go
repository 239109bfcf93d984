package session

import "taskboard/internal/models"

// Verdict is the outcome of a route-guard evaluation.
type Verdict int

const (
	// Allow renders the guarded content.
	Allow Verdict = iota
	// RedirectLogin replaces the navigation with the login page.
	RedirectLogin
	// RedirectUnauthorized replaces the navigation with the
	// unauthorized page.
	RedirectUnauthorized
)

// Decide is the guard contract, a pure function of session state. No
// token always redirects to login. When a role is required, a nil user
// means "role unknown": role-specific access is denied, not treated as
// logged out, since hydration may still be in flight.
func Decide(st State, required models.Role) Verdict {
	if !st.LoggedIn() {
		return RedirectLogin
	}
	if required == "" {
		return Allow
	}
	if st.User == nil || st.User.Role != required {
		return RedirectUnauthorized
	}
	return Allow
}
