package hub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hferdian/votely/models"
)

// Message types pushed to live observers.
const (
	TypeTallyChanged = "tally-changed"
	TypeVoteCast     = "vote-cast"
	TypeReset        = "reset"
)

// Message is one frame on the live channel.
type Message struct {
	Type     string           `json:"type"`
	Snapshot *models.Snapshot `json:"snapshot,omitempty"`
	Event    *models.VoteEvent `json:"event,omitempty"`
}

// subscriberBuffer is the per-subscriber queue depth. A subscriber that
// falls this far behind starts losing messages rather than slowing
// publishers down.
const subscriberBuffer = 16

// Hub fans out tally messages to all subscribers. Delivery is best-effort
// and never blocks: a full subscriber queue drops the message.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]chan Message
}

func New() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]chan Message),
	}
}

// Subscribe registers a new observer and returns its handle and receive
// channel. The channel is closed by Unsubscribe and never by the hub on
// its own; removal is driven by the subscriber's disconnect.
func (h *Hub) Subscribe() (uuid.UUID, <-chan Message) {
	id := uuid.New()
	ch := make(chan Message, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	return id, ch
}

// Unsubscribe removes the observer and closes its channel. Safe to call
// more than once with the same handle.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Count reports the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// PublishSnapshot pushes the full tally state to every subscriber.
func (h *Hub) PublishSnapshot(snapshot models.Snapshot) {
	h.publish(Message{Type: TypeTallyChanged, Snapshot: &snapshot})
}

// PublishEvent pushes a single vote notification to every subscriber.
func (h *Hub) PublishEvent(event models.VoteEvent) {
	h.publish(Message{Type: TypeVoteCast, Event: &event})
}

// PublishReset announces a tally reset. Callers follow up with the empty
// snapshot via PublishSnapshot.
func (h *Hub) PublishReset() {
	h.publish(Message{Type: TypeReset})
}

func (h *Hub) publish(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
			// Subscriber is not keeping up; drop this message for it.
		}
	}
}
