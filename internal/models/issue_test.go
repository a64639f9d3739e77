package models

import "testing"

func TestToggledStatusCollapses(t *testing.T) {
	cases := []struct {
		current string
		want    string
	}{
		{StatusOpen, StatusSolved},
		{StatusAssigned, StatusSolved},
		{StatusNotSolved, StatusSolved},
		{StatusSolved, StatusNotSolved},
	}
	for _, tc := range cases {
		i := Issue{Status: tc.current}
		if got := i.ToggledStatus(); got != tc.want {
			t.Errorf("toggle from %q: got %q, want %q", tc.current, got, tc.want)
		}
	}
}

func TestDoubleToggleIsStable(t *testing.T) {
	// any starting status ends at Solved/Not Solved alternation after the
	// first flip, so two flips from Solved return to Solved
	i := Issue{Status: StatusSolved}
	i.Status = i.ToggledStatus()
	if i.Status != StatusNotSolved {
		t.Fatalf("first flip: got %q", i.Status)
	}
	i.Status = i.ToggledStatus()
	if i.Status != StatusSolved {
		t.Fatalf("second flip: got %q", i.Status)
	}
}

func TestCanToggle(t *testing.T) {
	empID := uint(7)
	issue := Issue{EmployeeID: &empID, CreatedBy: 3}

	cases := []struct {
		name       string
		role       UserRole
		userID     uint
		employeeID uint
		want       bool
	}{
		{"admin any issue", RoleAdmin, 99, 0, true},
		{"employee own assignment", RoleEmployee, 10, 7, true},
		{"employee other assignment", RoleEmployee, 10, 8, false},
		{"employee without record", RoleEmployee, 10, 0, false},
		{"user own issue", RoleUser, 3, 0, true},
		{"user someone else's issue", RoleUser, 4, 0, false},
		{"unknown role", UserRole("viewer"), 3, 7, false},
	}
	for _, tc := range cases {
		if got := issue.CanToggle(tc.role, tc.userID, tc.employeeID); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanToggleUnassignedIssue(t *testing.T) {
	issue := Issue{CreatedBy: 3}
	if issue.CanToggle(RoleEmployee, 10, 7) {
		t.Error("employee must not toggle an unassigned issue")
	}
	if !issue.CanToggle(RoleAdmin, 1, 0) {
		t.Error("admin must toggle an unassigned issue")
	}
}

func TestLandingPath(t *testing.T) {
	cases := map[UserRole]string{
		RoleAdmin:          "/",
		RoleEmployee:       "/employee_dashboard",
		RoleUser:           "/user_dashboard",
		UserRole("broken"): "/login",
	}
	for role, want := range cases {
		if got := role.LandingPath(); got != want {
			t.Errorf("%s: got %q, want %q", role, got, want)
		}
	}
}

func TestTogglePath(t *testing.T) {
	if got := RoleAdmin.TogglePath(); got != "/view_issues" {
		t.Errorf("admin: got %q", got)
	}
	if got := RoleEmployee.TogglePath(); got != "/employee_dashboard" {
		t.Errorf("employee: got %q", got)
	}
	if got := RoleUser.TogglePath(); got != "/user_dashboard" {
		t.Errorf("user: got %q", got)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []UserRole{RoleAdmin, RoleEmployee, RoleUser} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if UserRole("root").Valid() {
		t.Error("unknown role should not be valid")
	}
}
