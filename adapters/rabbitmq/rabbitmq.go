package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"github.com/next-trace/scg-capability/contract/capability"
	cerr "github.com/next-trace/scg-capability/contract/errors"
)

// PubMsg is one AMQP publish request.
type PubMsg struct {
	Exchange   string
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

// Channel is a minimal AMQP-like publish interface decoupled from any concrete library.
type Channel interface {
	Publish(ctx context.Context, m PubMsg) error
}

// Publisher implements capability.Publisher using an injected Channel.
// The subject becomes the routing key on the integration exchange.
type Publisher struct {
	Channel Channel
}

var _ capability.Publisher = (*Publisher)(nil)

// New creates a new RabbitMQ publisher with the provided channel.
func New(ch Channel) *Publisher { return &Publisher{Channel: ch} }

func (p *Publisher) Publish(
	ctx context.Context,
	subject string,
	body []byte,
	opts capability.PublishOptions,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.Channel == nil {
		return fmt.Errorf("rabbitmq publish: %w", cerr.ErrNotConnected)
	}

	m := PubMsg{
		Exchange:   integrationExchange,
		RoutingKey: subject,
		Body:       body,
		Headers:    publishHeaders(opts),
	}

	if err := p.Channel.Publish(ctx, m); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("rabbitmq publish %q: %w", subject, errors.Join(cerr.ErrPublishFailed, err))
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
