package memory

import (
	"context"
	"testing"

	"github.com/next-trace/scg-capability/capset"
	"github.com/next-trace/scg-capability/contract/capability"
)

func TestNewMemorySet_BasicFlow(t *testing.T) {
	set := New()

	// Probe answers up out of the box.
	if got := capset.Status(context.Background(), set.Prober()); got != "up" {
		t.Fatalf("want up, got %s", got)
	}

	// A handle-bound broadcast lands on the recorder and counts on the codec.
	err := capset.Broadcast(context.Background(), set.Handle(), "users.created",
		map[string]string{"id": "1"}, capability.PublishOptions{})
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}

	pub := set.Publisher()
	if n := len(pub.Msgs); n != 1 {
		t.Fatalf("want 1 recorded message, got %d", n)
	}

	if pub.Msgs[0].Subject != "users.created" {
		t.Fatalf("subject mismatch: %s", pub.Msgs[0].Subject)
	}

	if set.Codec().Marshals != 1 {
		t.Fatalf("want 1 marshal, got %d", set.Codec().Marshals)
	}
}
