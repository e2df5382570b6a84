package domain

import "time"

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleManager || role == RoleAdmin
}

// ValidStatus reports whether status is one of the three known account states.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive || status == StatusPending
}

// User models a dashboard account. PasswordHash and the lockout bookkeeping
// fields never leave the server: they are excluded from JSON.
type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	JoinDate      time.Time  `json:"joinDate"`
	Orders        int        `json:"orders"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	LoginAttempts int        `json:"-"`
	LockUntil     *time.Time `json:"-"`
}

// Locked reports whether the account is barred from authentication at now.
func (u *User) Locked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// Claims is the decoded payload of a signed token.
type Claims struct {
	UserID string
	Email  string
	Role   string
	Name   string
}
