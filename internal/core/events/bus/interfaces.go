package bus

import "time"

// EventBus is a synchronous in-process pub/sub bus. Publishers are the
// propulsion layout (thruster changes, rejected attachments) and the flight
// controller (g-safety engagement); subscribers are hosts, fleets and
// telemetry.
//
// Publish calls handlers in the caller goroutine, in subscription order.
// Handler errors are joined and returned; one failing handler does not stop
// delivery to the rest. All methods are safe for concurrent use.
type EventBus interface {
	Publish(event Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// SubscribeAll receives every event regardless of type.
	SubscribeAll(handler EventHandler) (Subscription, error)
	Unsubscribe(Subscription) error

	Metrics() Metrics
}

// Event is an immutable message carried by the bus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type EventHandler func(event Event) error

// Subscription is a registered handler. Cancel is idempotent.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// Metrics are cumulative counters since the bus was created.
type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
