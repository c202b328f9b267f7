package capset_test

import (
	"context"
	"sync"
	"testing"

	"github.com/next-trace/scg-capability/capset"
	"github.com/next-trace/scg-capability/contract/capability"
)

// fakes

type recPub struct {
	mu       sync.Mutex
	subjects []string
	bodies   [][]byte
	keys     []string
	err      error
}

func (p *recPub) Publish(
	_ context.Context,
	subject string,
	body []byte,
	opts capability.PublishOptions,
) error {
	p.mu.Lock()
	p.subjects = append(p.subjects, subject)
	p.bodies = append(p.bodies, body)
	p.keys = append(p.keys, opts.Key)
	p.mu.Unlock()

	return p.err
}

type stubProbe struct{ up bool }

func (s *stubProbe) Probe(context.Context) bool { return s.up }

type countCodec struct{ marshals int }

func (c *countCodec) Marshal(v any) ([]byte, error) {
	c.marshals++
	return capability.JSONCodec{}.Marshal(v)
}

func (c *countCodec) Unmarshal(data []byte, v any) error {
	return capability.JSONCodec{}.Unmarshal(data, v)
}

// Blanket conformance: any *Set satisfies Handle and Ref for its own slot types.
var (
	_ capset.Handle[*recPub, *stubProbe, capability.JSONCodec] = capset.New(&recPub{}, &stubProbe{})
	_ capset.Ref[*recPub, *stubProbe, capability.JSONCodec]    = capset.New(&recPub{}, &stubProbe{})
	_ capset.Handle[*recPub, *stubProbe, *countCodec]          = capset.NewWithCodec(&recPub{}, &stubProbe{}, &countCodec{})
)

func Test_AccessorsReturnSuppliedInstances(t *testing.T) {
	pub := &recPub{}
	probe := &stubProbe{up: true}
	codec := &countCodec{}

	set := capset.NewWithCodec(pub, probe, codec)

	if set.Publisher() != pub {
		t.Fatalf("publisher accessor returned a different instance")
	}

	if set.Prober() != probe {
		t.Fatalf("prober accessor returned a different instance")
	}

	if set.Codec() != codec {
		t.Fatalf("codec accessor returned a different instance")
	}
}

func Test_DefaultedCodecSlot(t *testing.T) {
	set := capset.New(&recPub{}, &stubProbe{up: true})

	b, err := set.Codec().Marshal(map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(b) != `{"n":1}` {
		t.Fatalf("default codec is not JSON: %s", b)
	}
}

func Test_CloneSharesSlots(t *testing.T) {
	pub := &recPub{}
	set := capset.New(pub, &stubProbe{up: true})
	dup := set.Clone()

	if dup == set {
		t.Fatalf("clone returned the same set")
	}

	if dup.Publisher() != pub {
		t.Fatalf("clone re-constructed the publisher slot")
	}

	// A publish through either copy lands on the one shared instance.
	if err := capset.Announce(context.Background(), dup.Publisher(), "a", []byte("1")); err != nil {
		t.Fatalf("announce via dup: %v", err)
	}

	if err := capset.Announce(context.Background(), set.Publisher(), "b", []byte("2")); err != nil {
		t.Fatalf("announce via set: %v", err)
	}

	if len(pub.subjects) != 2 {
		t.Fatalf("want 2 recorded publishes on the shared instance, got %d", len(pub.subjects))
	}
}

// A consumer bound to one contract runs unchanged no matter what the other slots
// hold. Both sets below feed the same narrow call with different prober and codec
// types.
func Test_NarrowConsumerIgnoresOtherSlots(t *testing.T) {
	pub := &recPub{}

	setA := capset.New(pub, &stubProbe{up: true})
	setB := capset.NewWithCodec(pub, &stubProbe{up: false}, &countCodec{})

	if err := capset.Announce(context.Background(), setA.Publisher(), "x", nil); err != nil {
		t.Fatalf("announce A: %v", err)
	}

	if err := capset.Announce(context.Background(), setB.Publisher(), "y", nil); err != nil {
		t.Fatalf("announce B: %v", err)
	}

	if len(pub.subjects) != 2 {
		t.Fatalf("want 2 publishes, got %d", len(pub.subjects))
	}
}
