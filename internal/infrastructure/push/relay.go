package push

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// relayMessage wraps an event envelope with the publishing instance's
// identity so an instance can skip events it published itself.
type relayMessage struct {
	Origin string          `json:"origin"`
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
}

// Relay mirrors push events across instances through a Redis pub/sub
// channel: locally published events are also sent to the channel, and events
// arriving from other instances are fanned out to local observers. Best
// effort, like the hub itself — relay failures never reach the caller.
type Relay struct {
	hub     *Hub
	rdb     *redis.Client
	channel string
	origin  string
	log     zerolog.Logger
}

func NewRelay(hub *Hub, rdb *redis.Client, channel string, log zerolog.Logger) *Relay {
	return &Relay{
		hub:     hub,
		rdb:     rdb,
		channel: channel,
		origin:  newOriginID(),
		log:     log,
	}
}

// Publish fans the event out locally and mirrors it to the Redis channel.
func (r *Relay) Publish(event domain.Event) {
	r.hub.Publish(event)

	data, err := json.Marshal(event.EventData())
	if err != nil {
		r.log.Error().Err(err).Str("event", event.EventName()).Msg("failed to encode relay payload")
		return
	}
	msg, err := json.Marshal(relayMessage{Origin: r.origin, Event: event.EventName(), Data: data})
	if err != nil {
		r.log.Error().Err(err).Str("event", event.EventName()).Msg("failed to encode relay message")
		return
	}

	if err := r.rdb.Publish(context.Background(), r.channel, msg).Err(); err != nil {
		r.log.Warn().Err(err).Str("event", event.EventName()).Msg("relay publish failed")
	}
}

// Start subscribes to the relay channel and forwards foreign events to the
// local hub until ctx is cancelled.
func (r *Relay) Start(ctx context.Context) {
	sub := r.rdb.Subscribe(ctx, r.channel)

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	go func() {
		for msg := range sub.Channel() {
			var rm relayMessage
			if err := json.Unmarshal([]byte(msg.Payload), &rm); err != nil {
				r.log.Warn().Err(err).Msg("malformed relay message")
				continue
			}
			if rm.Origin == r.origin {
				continue
			}

			data, err := json.Marshal(envelope{Event: rm.Event, Data: rm.Data})
			if err != nil {
				continue
			}
			r.hub.Forward(data)
		}
	}()
}

func newOriginID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
