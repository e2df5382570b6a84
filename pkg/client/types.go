// Package client maintains a dashboard-side mirror of server state. It
// consumes the push channel's events and applies them to an in-memory State
// with a pure reducer, so an open dashboard updates live without re-fetching
// lists on every change.
package client

import "time"

// User mirrors the server's user payload as it appears on the wire.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	JoinDate  time.Time  `json:"joinDate"`
	Orders    int        `json:"orders"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// Notification mirrors the server's notification payload.
type Notification struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
}

// Stats mirrors the aggregate stats payload.
type Stats struct {
	TotalUsers   int     `json:"totalUsers"`
	ActiveUsers  int     `json:"activeUsers"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
