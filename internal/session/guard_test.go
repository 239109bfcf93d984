package session

import (
	"testing"

	"taskboard/internal/models"
)

func TestDecide(t *testing.T) {
	admin := &models.User{ID: 1, Name: "A", Role: models.RoleAdmin}
	member := &models.User{ID: 2, Name: "B", Role: models.RoleMember}

	tests := []struct {
		name     string
		state    State
		required models.Role
		want     Verdict
	}{
		{"no token", State{}, "", RedirectLogin},
		{"no token with role", State{}, models.RoleAdmin, RedirectLogin},
		{"token, no role required", State{Token: "t"}, "", Allow},
		{"token, hydrating, no role required", State{Token: "t", User: nil}, "", Allow},
		{"token, hydrating, role required", State{Token: "t", User: nil}, models.RoleAdmin, RedirectUnauthorized},
		{"member on admin route", State{Token: "t", User: member}, models.RoleAdmin, RedirectUnauthorized},
		{"admin on admin route", State{Token: "t", User: admin}, models.RoleAdmin, Allow},
		{"admin on plain route", State{Token: "t", User: admin}, "", Allow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.state, tc.required); got != tc.want {
				t.Fatalf("Decide = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecideIsPure(t *testing.T) {
	st := State{Token: "t", User: &models.User{Role: models.RoleMember}}
	first := Decide(st, models.RoleAdmin)
	second := Decide(st, models.RoleAdmin)
	if first != second {
		t.Fatalf("same input produced different verdicts: %v vs %v", first, second)
	}
}
