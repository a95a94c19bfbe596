package interfaces

// EventPublisher emits processing events to an external system. Publishing is
// best-effort observability; a failed publish never affects account state.
type EventPublisher interface {
	Publish(topic string, event any) error
}
