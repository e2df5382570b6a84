package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository for service tests.
type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	search := strings.ToLower(filter.Search)
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) && !strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Status != nil {
		u.Status = *update.Status
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.Orders != nil {
		u.Orders = *update.Orders
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func (r *stubUserRepo) SetLoginState(_ context.Context, id string, state ports.LoginState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LoginAttempts = state.Attempts
	u.LockUntil = state.LockUntil
	if state.LastLogin != nil {
		u.LastLogin = state.LastLogin
	}
	return nil
}

func (r *stubUserRepo) IncrementOrders(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Orders++
	return cloneUser(u), nil
}

func (r *stubUserRepo) Random(_ context.Context) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) SumOrders(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		n += int64(u.Orders)
	}
	return n, nil
}

func (r *stubUserRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*domain.User)
	return nil
}

func (r *stubUserRepo) InsertMany(_ context.Context, users []*domain.User) error {
	for _, u := range users {
		if _, err := r.Create(context.Background(), u); err != nil {
			return err
		}
	}
	return nil
}

// stubPublisher records every published event in order.
type stubPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *stubPublisher) Publish(event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *stubPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventName()
	}
	return out
}

// stubActivityRepo is an in-memory ActivityRepository.
type stubActivityRepo struct {
	mu      sync.Mutex
	entries []*domain.Activity
}

func (r *stubActivityRepo) ListRecent(_ context.Context, limit int) ([]*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Activity, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

func (r *stubActivityRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *a
	clone.ID = fmt.Sprintf("a%d", len(r.entries)+1)
	if clone.Timestamp.IsZero() {
		clone.Timestamp = time.Now().UTC()
	}
	r.entries = append(r.entries, &clone)
	return &clone, nil
}

func (r *stubActivityRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	return nil
}

func (r *stubActivityRepo) InsertMany(_ context.Context, as []*domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, as...)
	return nil
}

// stubRevenueRepo is an in-memory RevenueRepository.
type stubRevenueRepo struct {
	mu   sync.Mutex
	rows []*domain.Revenue
}

func (r *stubRevenueRepo) List(_ context.Context) ([]*domain.Revenue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Revenue, len(r.rows))
	for i, row := range r.rows {
		clone := *row
		out[i] = &clone
	}
	return out, nil
}

func (r *stubRevenueRepo) SumRevenue(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	for _, row := range r.rows {
		sum += row.Revenue
	}
	return sum, nil
}

func (r *stubRevenueRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	return nil
}

func (r *stubRevenueRepo) InsertMany(_ context.Context, rows []*domain.Revenue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}

// stubNotificationRepo is an in-memory NotificationRepository.
type stubNotificationRepo struct {
	mu      sync.Mutex
	entries []*domain.Notification
}

func (r *stubNotificationRepo) ListRecent(_ context.Context, limit int) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Notification, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.entries[i]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *n
	clone.ID = fmt.Sprintf("n%d", len(r.entries)+1)
	r.entries = append(r.entries, &clone)
	out := clone
	return &out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.entries {
		if n.ID == id {
			n.Read = true
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	return nil
}

func (r *stubNotificationRepo) InsertMany(_ context.Context, ns []*domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, ns...)
	return nil
}
