package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	cerr "github.com/next-trace/scg-capability/contract/errors"
)

// Concrete NATS connection-backed Client, Prober, and constructor.

type Config struct {
	URL           string
	Name          string
	ConnTimeout   time.Duration
	MaxReconnects int
}

type natsClient struct{ nc *nats.Conn }

func (c natsClient) Publish(subject string, data []byte, headers map[string]string) error {
	msg := &nats.Msg{Subject: subject, Data: data}

	var h nats.Header
	if len(headers) > 0 {
		h = nats.Header{}
		for k, v := range headers {
			h.Add(k, v)
		}
	}

	msg.Header = h

	if err := c.nc.PublishMsg(msg); err != nil {
		return err
	}

	return c.nc.Flush()
}

// Prober reports liveness of a NATS connection via a round-trip flush.
type Prober struct {
	nc *nats.Conn
}

func (p *Prober) Probe(ctx context.Context) bool {
	if p.nc == nil || !p.nc.IsConnected() {
		return false
	}

	return p.nc.FlushWithContext(ctx) == nil
}

// NewWithNATS creates a real NATS connection and returns a Publisher, a Prober
// backed by the same connection, and a cleanup.
func NewWithNATS(cfg Config) (*Publisher, *Prober, func(), error) {
	if cfg.URL == "" {
		return nil, nil, nil, fmt.Errorf("%w: nats url required", cerr.ErrNotConnected)
	}

	opts := []nats.Option{}
	if cfg.Name != "" {
		opts = append(opts, nats.Name(cfg.Name))
	}

	if cfg.ConnTimeout > 0 {
		opts = append(opts, nats.Timeout(cfg.ConnTimeout))
	}

	if cfg.MaxReconnects != 0 {
		opts = append(opts, nats.MaxReconnects(cfg.MaxReconnects))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: nats connect: %w", cerr.ErrNotConnected, err)
	}

	pub := New(natsClient{nc: nc})
	probe := &Prober{nc: nc}
	cleanup := func() {
		if nc != nil && !nc.IsClosed() {
			_ = nc.Drain() //nolint:errcheck // best-effort shutdown; cannot return error here
			nc.Close()
		}
	}

	return pub, probe, cleanup, nil
}
