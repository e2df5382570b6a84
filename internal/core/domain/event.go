package domain

// Event is one member of the closed set of push-channel events. Every
// variant carries a fixed payload shape so observers can decode without
// branching on loosely typed maps.
type Event interface {
	// EventName is the wire-level event name, e.g. "userAdded".
	EventName() string
	// EventData is the payload marshalled into the envelope's data field.
	EventData() any
}

const (
	EventUserAdded        = "userAdded"
	EventUserUpdated      = "userUpdated"
	EventUserDeleted      = "userDeleted"
	EventNewNotification  = "newNotification"
	EventNotificationRead = "notificationRead"
	EventNewActivity      = "newActivity"
	EventOrderUpdate      = "orderUpdate"
)

// UserAddedEvent announces a newly created user.
type UserAddedEvent struct {
	User *User
}

func (e UserAddedEvent) EventName() string { return EventUserAdded }
func (e UserAddedEvent) EventData() any    { return e.User }

// UserUpdatedEvent carries the full post-update user record.
type UserUpdatedEvent struct {
	User *User
}

func (e UserUpdatedEvent) EventName() string { return EventUserUpdated }
func (e UserUpdatedEvent) EventData() any    { return e.User }

// UserDeletedEvent carries only the removed identifier.
type UserDeletedEvent struct {
	ID string `json:"id"`
}

func (e UserDeletedEvent) EventName() string { return EventUserDeleted }
func (e UserDeletedEvent) EventData() any    { return e }

// NewNotificationEvent announces a created notification.
type NewNotificationEvent struct {
	Notification *Notification
}

func (e NewNotificationEvent) EventName() string { return EventNewNotification }
func (e NewNotificationEvent) EventData() any    { return e.Notification }

// NotificationReadEvent carries the notification after its read flag flipped.
type NotificationReadEvent struct {
	Notification *Notification
}

func (e NotificationReadEvent) EventName() string { return EventNotificationRead }
func (e NotificationReadEvent) EventData() any    { return e.Notification }

// NewActivityEvent announces an appended activity-log entry.
type NewActivityEvent struct {
	Activity *Activity
}

func (e NewActivityEvent) EventName() string { return EventNewActivity }
func (e NewActivityEvent) EventData() any    { return e.Activity }

// OrderUpdateEvent announces an order-count change on a user. Observers are
// expected to re-query aggregate stats rather than compute deltas locally.
type OrderUpdateEvent struct {
	UserID        string `json:"userId"`
	NewOrderCount int    `json:"newOrderCount"`
	Message       string `json:"message"`
}

func (e OrderUpdateEvent) EventName() string { return EventOrderUpdate }
func (e OrderUpdateEvent) EventData() any    { return e }
