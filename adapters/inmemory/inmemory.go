package inmemory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/next-trace/scg-capability/contract/capability"
)

// Message is one recorded publish.
type Message struct {
	Subject string
	Body    []byte
	Key     string
	Headers map[string]string
}

// Publisher is a thread-safe in-memory implementation of capability.Publisher.
// It records published messages for testing and examples.
type Publisher struct {
	mu   sync.Mutex
	Msgs []Message
}

func (p *Publisher) Publish(
	ctx context.Context,
	subject string,
	body []byte,
	opts capability.PublishOptions,
) error {
	p.mu.Lock()
	p.Msgs = append(p.Msgs, Message{
		Subject: subject,
		Body:    append([]byte(nil), body...),
		Key:     opts.Key,
		Headers: opts.Headers,
	})
	p.mu.Unlock()

	return nil
}

// Prober is a stub implementation of capability.Prober pinned to a fixed answer.
// It never touches an external transport, which is the point: substituting it for a
// real prober keeps the external check out of the test path entirely.
type Prober struct {
	Up bool
}

// AlwaysUp pins the probe result to true.
func (p *Prober) AlwaysUp() *Prober {
	p.Up = true
	return p
}

// AlwaysDown pins the probe result to false.
func (p *Prober) AlwaysDown() *Prober {
	p.Up = false
	return p
}

func (p *Prober) Probe(_ context.Context) bool { return p.Up }

// Codec is a capability.Codec that delegates to JSON and counts calls.
type Codec struct {
	mu         sync.Mutex
	Marshals   int
	Unmarshals int
}

func (c *Codec) Marshal(v any) ([]byte, error) {
	c.mu.Lock()
	c.Marshals++
	c.mu.Unlock()

	return json.Marshal(v)
}

func (c *Codec) Unmarshal(data []byte, v any) error {
	c.mu.Lock()
	c.Unmarshals++
	c.mu.Unlock()

	return json.Unmarshal(data, v)
}

// Transport combines Publisher and Prober to satisfy the composed contract.
type Transport struct {
	Publisher
	Prober
}

// Ensure the doubles implement their contracts.
var (
	_ capability.Publisher = (*Publisher)(nil)
	_ capability.Prober    = (*Prober)(nil)
	_ capability.Codec     = (*Codec)(nil)
	_ capability.Transport = (*Transport)(nil)
)

// New creates a new in-memory transport that answers probes with true.
func New() *Transport { return &Transport{Prober: Prober{Up: true}} }
