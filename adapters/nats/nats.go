package nats

import (
	"context"
	"errors"
	"fmt"

	"github.com/next-trace/scg-capability/contract/capability"
	cerr "github.com/next-trace/scg-capability/contract/errors"
)

// Client is a minimal NATS-like publisher interface decoupled from any concrete library.
// Users can provide a wrapper around their NATS connection to satisfy this.
type Client interface {
	// Publish publishes a message to a subject with optional headers.
	Publish(subject string, data []byte, headers map[string]string) error
}

// Publisher implements capability.Publisher using an injected NATS-like Client.
type Publisher struct {
	Client Client
}

// Ensure Publisher implements the contract.
var _ capability.Publisher = (*Publisher)(nil)

// New creates a new NATS publisher with the provided client.
func New(c Client) *Publisher { return &Publisher{Client: c} }

func (p *Publisher) Publish(
	ctx context.Context,
	subject string,
	body []byte,
	opts capability.PublishOptions,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.Client == nil {
		return fmt.Errorf("nats publish: %w", cerr.ErrNotConnected)
	}

	if err := p.Client.Publish(subject, body, publishHeaders(opts)); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("nats publish %q: %w", subject, errors.Join(cerr.ErrPublishFailed, err))
	}

	return nil
}

func publishHeaders(o capability.PublishOptions) map[string]string {
	h := make(map[string]string, len(o.Headers)+1)
	for k, v := range o.Headers {
		h[k] = v
	}

	if o.Key != "" {
		h["key"] = o.Key
	}

	return h
}
