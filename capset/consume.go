package capset

import (
	"context"
	"errors"
	"fmt"

	"github.com/next-trace/scg-capability/contract/capability"
	cerr "github.com/next-trace/scg-capability/contract/errors"
)

// Consumer helpers for the three bound tiers. Narrow helpers (single contract) are
// the end of a call chain; handle helpers forward through layers and narrow at the
// boundary. Implementation results pass through unchanged.

// Announce publishes body to subject through any Publisher. Single-contract bound;
// prefer this shape when a function needs exactly one capability.
func Announce[P capability.Publisher](ctx context.Context, pub P, subject string, body []byte) error {
	return pub.Publish(ctx, subject, body, capability.PublishOptions{})
}

// Healthy reports whether the transport behind any Prober is reachable.
func Healthy[R capability.Prober](ctx context.Context, probe R) bool {
	return probe.Probe(ctx)
}

// Status maps a probe outcome to a short state string.
func Status[R capability.Prober](ctx context.Context, probe R) string {
	if probe.Probe(ctx) {
		return "up"
	}

	return "down"
}

// Encode serializes v through any Codec.
func Encode[C capability.Codec](codec C, v any) ([]byte, error) {
	return codec.Marshal(v)
}

// Broadcast encodes v with the handle's codec and publishes it, guarded by a probe.
// It narrows the handle down to individual contracts at each step; the publish result
// is returned as-is.
func Broadcast[P capability.Publisher, R capability.Prober, C capability.Codec](
	ctx context.Context,
	h Handle[P, R, C],
	subject string,
	v any,
	opts capability.PublishOptions,
) error {
	if !h.Prober().Probe(ctx) {
		return fmt.Errorf("broadcast %q: %w", subject, cerr.ErrNotConnected)
	}

	body, err := h.Codec().Marshal(v)
	if err != nil {
		return fmt.Errorf("broadcast %q encode: %w", subject, errors.Join(cerr.ErrEncodeFailed, err))
	}

	return h.Publisher().Publish(ctx, subject, body, opts)
}

// Relay forwards the handle down one more handle-bound layer before narrowing to the
// publisher contract. It exists to show that a handle survives intermediate layers
// without those layers re-deriving narrow bounds.
func Relay[P capability.Publisher, R capability.Prober, C capability.Codec](
	ctx context.Context,
	h Handle[P, R, C],
	subject string,
	body []byte,
) error {
	return relayNarrow(ctx, h, subject, body)
}

func relayNarrow[P capability.Publisher, R capability.Prober, C capability.Codec](
	ctx context.Context,
	h Handle[P, R, C],
	subject string,
	body []byte,
) error {
	// Boundary reached: recover the narrow contract from the handle.
	return Announce(ctx, h.Publisher(), subject, body)
}

// Describe reports the transport state through the nested handle shape.
func Describe[P capability.Publisher, R capability.Prober, C capability.Codec](
	ctx context.Context,
	ref Ref[P, R, C],
) string {
	return Status(ctx, ref.Capabilities().Prober())
}
