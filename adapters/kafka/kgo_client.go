package kafka

import (
	"context"
	"crypto/tls"
	"fmt"

	cerr "github.com/next-trace/scg-capability/contract/errors"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Concrete franz-go based constructor, writer wrapper, and prober.

type Config struct {
	Brokers  []string
	TLS      *tls.Config
	ClientID string

	// Acks other than AllISRAcks require DisableIdempotency.
	Acks               kgo.Acks
	DisableIdempotency bool
	Compression        []kgo.CompressionCodec
}

type kgoWriter struct{ cl *kgo.Client }

func (w kgoWriter) Write(topic string, key, value []byte, headers map[string]string) error {
	rec := &kgo.Record{Topic: topic, Key: key, Value: value}
	if len(headers) > 0 {
		rec.Headers = make([]kgo.RecordHeader, 0, len(headers))
		for k, v := range headers {
			rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
		}
	}
	return w.cl.ProduceSync(context.Background(), rec).FirstErr()
}

// Prober reports liveness of the Kafka client via a broker ping.
type Prober struct {
	cl *kgo.Client
}

func (p *Prober) Probe(ctx context.Context) bool {
	return p.cl != nil && p.cl.Ping(ctx) == nil
}

// NewWithKgo builds a franz-go client backed Publisher and Prober. The returned
// cleanup should be called to close the client.
func NewWithKgo(cfg Config) (*Publisher, *Prober, func(), error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: kafka brokers required", cerr.ErrNotConnected)
	}
	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Brokers...)}
	if cfg.ClientID != "" {
		opts = append(opts, kgo.ClientID(cfg.ClientID))
	}
	if cfg.TLS != nil {
		opts = append(opts, kgo.DialTLSConfig(cfg.TLS))
	}
	if cfg.DisableIdempotency {
		opts = append(opts, kgo.DisableIdempotentWrite())
	}
	if len(cfg.Compression) > 0 {
		opts = append(opts, kgo.ProducerBatchCompression(cfg.Compression...))
	}
	if cfg.Acks != (kgo.Acks{}) {
		opts = append(opts, kgo.RequiredAcks(cfg.Acks))
	}
	cl, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: kafka client init: %w", cerr.ErrNotConnected, err)
	}
	pub := New(kgoWriter{cl: cl})
	cleanup := func() { cl.Close() }
	return pub, &Prober{cl: cl}, cleanup, nil
}
