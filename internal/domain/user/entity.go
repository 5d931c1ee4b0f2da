package user

import "time"

type Role string

const (
	RoleHR       Role = "HR"       // HR administrator - sees every employee
	RoleEmployee Role = "Employee" // Regular employee - sees only their own records
)

// ParseRole maps a raw role string to a known Role, defaulting to employee.
func ParseRole(s string) Role {
	if s == string(RoleHR) {
		return RoleHR
	}
	return RoleEmployee
}

type User struct {
	ID              string
	EmployeeID      string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsHR checks if the user can act across all employees
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// CanApprove checks if user can approve leave and expense requests
func (u *User) CanApprove() bool {
	return u.IsHR()
}
