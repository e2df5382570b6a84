package client

import (
	"encoding/json"
	"fmt"
)

// Event is one member of the closed set of push-channel events, decoded from
// the wire envelope {"event": name, "data": payload}.
type Event interface {
	isEvent()
}

type UserAdded struct{ User User }
type UserUpdated struct{ User User }
type UserDeleted struct{ ID string }
type NewNotification struct{ Notification Notification }
type NotificationRead struct{ Notification Notification }

// NewActivity carries only the human-readable description; the feed renders
// descriptions, not full records.
type NewActivity struct{ Description string }

type OrderUpdate struct {
	UserID        string
	NewOrderCount int
	Message       string
}

func (UserAdded) isEvent()        {}
func (UserUpdated) isEvent()      {}
func (UserDeleted) isEvent()      {}
func (NewNotification) isEvent()  {}
func (NotificationRead) isEvent() {}
func (NewActivity) isEvent()      {}
func (OrderUpdate) isEvent()      {}

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Decode parses a raw push-channel frame into its typed variant. Unknown
// event names are an error so callers notice protocol drift.
func Decode(frame []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("client: invalid frame: %w", err)
	}

	switch env.Event {
	case "userAdded":
		var u User
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, fmt.Errorf("client: userAdded payload: %w", err)
		}
		return UserAdded{User: u}, nil
	case "userUpdated":
		var u User
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, fmt.Errorf("client: userUpdated payload: %w", err)
		}
		return UserUpdated{User: u}, nil
	case "userDeleted":
		var payload struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			return nil, fmt.Errorf("client: userDeleted payload: %w", err)
		}
		return UserDeleted{ID: payload.ID}, nil
	case "newNotification":
		var n Notification
		if err := json.Unmarshal(env.Data, &n); err != nil {
			return nil, fmt.Errorf("client: newNotification payload: %w", err)
		}
		return NewNotification{Notification: n}, nil
	case "notificationRead":
		var n Notification
		if err := json.Unmarshal(env.Data, &n); err != nil {
			return nil, fmt.Errorf("client: notificationRead payload: %w", err)
		}
		return NotificationRead{Notification: n}, nil
	case "newActivity":
		var payload struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			return nil, fmt.Errorf("client: newActivity payload: %w", err)
		}
		return NewActivity{Description: payload.Description}, nil
	case "orderUpdate":
		var payload struct {
			UserID        string `json:"userId"`
			NewOrderCount int    `json:"newOrderCount"`
			Message       string `json:"message"`
		}
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			return nil, fmt.Errorf("client: orderUpdate payload: %w", err)
		}
		return OrderUpdate{
			UserID:        payload.UserID,
			NewOrderCount: payload.NewOrderCount,
			Message:       payload.Message,
		}, nil
	}

	return nil, fmt.Errorf("client: unknown event %q", env.Event)
}
