package interfaces

import "dispatch_service/internal/domain/entities"

// IEventPublisher fans dispatch events out to live subscribers. Publish never
// blocks on slow consumers.
type IEventPublisher interface {
	Publish(e entities.DispatchEvent)
}
