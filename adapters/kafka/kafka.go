package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/next-trace/scg-capability/contract/capability"
	cerr "github.com/next-trace/scg-capability/contract/errors"
)

// Writer is a minimal Kafka-like writer interface.
// Users can adapt any producer client to this.
type Writer interface {
	Write(topic string, key, value []byte, headers map[string]string) error
}

// Publisher implements capability.Publisher using an injected Writer.
// The subject becomes the topic.
type Publisher struct {
	Writer Writer
}

var _ capability.Publisher = (*Publisher)(nil)

// New creates a new Kafka publisher with the provided writer.
func New(w Writer) *Publisher { return &Publisher{Writer: w} }

func (p *Publisher) Publish(
	ctx context.Context,
	subject string,
	body []byte,
	opts capability.PublishOptions,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.Writer == nil {
		return fmt.Errorf("kafka publish: %w", cerr.ErrNotConnected)
	}

	if err := p.Writer.Write(subject, []byte(opts.Key), body, opts.Headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("kafka publish %q: %w", subject, errors.Join(cerr.ErrPublishFailed, err))
	}

	return nil
}
