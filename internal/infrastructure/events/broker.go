// Package events fans dispatch events out to live subscribers, segmented by
// tenant and optionally by technician.
package events

import (
	"sync"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

// subscriberBuffer bounds how far a slow subscriber may fall behind before
// events are dropped for it.
const subscriberBuffer = 16

// Subscription is one live listener. TechID empty means every event of the
// business.
type Subscription struct {
	BusinessID string
	TechID     string
	C          chan entities.DispatchEvent
}

// Broker keeps subscribers per business. A subscriber never sees another
// business's events.
type Broker struct {
	mu sync.RWMutex
	// subscribers: business_id -> subscription set
	subscribers map[string]map[*Subscription]struct{}
}

var _ interfaces.IEventPublisher = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{subscribers: make(map[string]map[*Subscription]struct{})}
}

func (b *Broker) Subscribe(businessID, techID string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &Subscription{BusinessID: businessID, TechID: techID, C: make(chan entities.DispatchEvent, subscriberBuffer)}
	if _, ok := b.subscribers[businessID]; !ok {
		b.subscribers[businessID] = make(map[*Subscription]struct{})
	}
	b.subscribers[businessID][s] = struct{}{}
	return s
}

// Unsubscribe removes s and closes its channel. Calling it twice is safe.
func (b *Broker) Unsubscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscribers[s.BusinessID]
	if !ok {
		return
	}
	if _, ok := subs[s]; !ok {
		return
	}
	delete(subs, s)
	if len(subs) == 0 {
		delete(b.subscribers, s.BusinessID)
	}
	close(s.C)
}

// Publish delivers e to matching subscribers without blocking; a full
// subscriber misses the event.
func (b *Broker) Publish(e entities.DispatchEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subscribers[e.BusinessID] {
		if s.TechID != "" && s.TechID != e.TechID {
			continue
		}
		select {
		case s.C <- e:
		default:
		}
	}
}

// Stats returns the subscriber count per business.
func (b *Broker) Stats() map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]int, len(b.subscribers))
	for biz, subs := range b.subscribers {
		out[biz] = len(subs)
	}
	return out
}
