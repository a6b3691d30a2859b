package engine

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"gomahjong/internal/mjlog"
)

// EventBus publishes round events to a NATS subject per round, so any
// number of out-of-process listeners (spectator gateways, archival
// consumers) can subscribe without the round itself knowing who's
// listening.
type EventBus struct {
	conn *nats.Conn
}

// NewEventBus dials url and returns a ready EventBus.
func NewEventBus(url string) (*EventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("engine: connect to nats at %s: %w", url, err)
	}
	return &EventBus{conn: conn}, nil
}

func subjectFor(roundID string) string {
	return "gomahjong.round." + roundID
}

// Publish marshals ev and sends it on the subject for roundID. A publish
// error is logged, not returned: event delivery is best-effort and must
// never block or fail the round state machine that produced the event.
func (b *EventBus) Publish(roundID string, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		mjlog.Error("eventbus: marshal event", "round", roundID, "err", err)
		return
	}
	if err := b.conn.Publish(subjectFor(roundID), payload); err != nil {
		mjlog.Error("eventbus: publish", "round", roundID, "err", err)
	}
}

// Subscribe registers handler for every event published on roundID's
// subject, returning the subscription so the caller can unsubscribe.
func (b *EventBus) Subscribe(roundID string, handler func(Event)) (*nats.Subscription, error) {
	return b.conn.Subscribe(subjectFor(roundID), func(msg *nats.Msg) {
		var ev Event
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			mjlog.Error("eventbus: unmarshal event", "round", roundID, "err", err)
			return
		}
		handler(ev)
	})
}

// Close closes the underlying connection.
func (b *EventBus) Close() {
	b.conn.Close()
}
