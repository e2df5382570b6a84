package client

const (
	maxNotifications = 20
	maxActivities    = 10
)

// State is the dashboard's local mirror. It is always a pure reduction of
// server-confirmed events plus full-list refreshes; no speculative local
// edits are retained.
type State struct {
	Users         []User
	Notifications []Notification
	Activities    []string
	Stats         Stats

	// StatsDirty is set when an order-affecting event arrived. Aggregates
	// are re-fetched from /api/stats rather than computed as local deltas,
	// which would drift under concurrent mutations.
	StatsDirty bool
}

// Apply reduces one event into a new state. The input state is not modified.
func Apply(s State, ev Event) State {
	next := s
	next.Users = append([]User(nil), s.Users...)
	next.Notifications = append([]Notification(nil), s.Notifications...)
	next.Activities = append([]string(nil), s.Activities...)

	switch ev := ev.(type) {
	case UserAdded:
		next.Users = upsertUser(next.Users, ev.User)
		next.StatsDirty = true
	case UserUpdated:
		// Replace only; an unknown id is a no-op (the full list refresh
		// will pick it up).
		for i := range next.Users {
			if next.Users[i].ID == ev.User.ID {
				next.Users[i] = ev.User
				break
			}
		}
	case UserDeleted:
		for i := range next.Users {
			if next.Users[i].ID == ev.ID {
				next.Users = append(next.Users[:i], next.Users[i+1:]...)
				break
			}
		}
		next.StatsDirty = true
	case NewNotification:
		next.Notifications = prependNotification(next.Notifications, ev.Notification)
	case NotificationRead:
		for i := range next.Notifications {
			if next.Notifications[i].ID == ev.Notification.ID {
				next.Notifications[i] = ev.Notification
				break
			}
		}
	case NewActivity:
		next.Activities = append([]string{ev.Description}, next.Activities...)
		if len(next.Activities) > maxActivities {
			next.Activities = next.Activities[:maxActivities]
		}
	case OrderUpdate:
		for i := range next.Users {
			if next.Users[i].ID == ev.UserID {
				next.Users[i].Orders = ev.NewOrderCount
				break
			}
		}
		next.StatsDirty = true
	}

	return next
}

func upsertUser(users []User, u User) []User {
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			return users
		}
	}
	return append(users, u)
}

func prependNotification(list []Notification, n Notification) []Notification {
	list = append([]Notification{n}, list...)
	if len(list) > maxNotifications {
		list = list[:maxNotifications]
	}
	return list
}
