package capability

import "context"

// Publisher abstracts publishing a payload to a named subject.
// Library users provide an implementation that maps to Kafka/NATS/RabbitMQ etc.
type Publisher interface {
	Publish(ctx context.Context, subject string, body []byte, opts PublishOptions) error
}

// Prober abstracts a liveness check against an external transport.
// Probe blocks until the underlying check returns a definite answer; implementations
// should honor ctx cancellation by reporting false.
type Prober interface {
	Probe(ctx context.Context) bool
}

// Codec abstracts payload serialization. Implementations must be usable as their
// zero value so a default codec slot can be filled without configuration.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Transport is a convenience interface that combines publishing and probing capabilities.
// Any implementation that provides both Publisher and Prober can fill two set slots at once.
//
// This keeps consumers decoupled from concrete transports while enabling simple injection
// of user-provided implementations (Kafka, NATS, RabbitMQ, in-memory, etc.).
type Transport interface {
	Publisher
	Prober
}
