package inmemory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/next-trace/scg-capability/adapters/inmemory"
	"github.com/next-trace/scg-capability/capset"
	"github.com/next-trace/scg-capability/contract/capability"
)

func TestInmemory_PublisherRecords(t *testing.T) {
	pub := &inmemory.Publisher{}

	opts := capability.PublishOptions{Key: "k", Headers: map[string]string{"h1": "v1"}}
	if err := pub.Publish(context.Background(), "orders.created", []byte(`{"id":1}`), opts); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if n := len(pub.Msgs); n != 1 {
		t.Fatalf("want 1 message, got %d", n)
	}

	m := pub.Msgs[0]
	if m.Subject != "orders.created" || m.Key != "k" || m.Headers["h1"] != "v1" {
		t.Fatalf("recorded message mismatch: %+v", m)
	}
}

func TestInmemory_PublisherConcurrent(t *testing.T) {
	pub := &inmemory.Publisher{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Publish(context.Background(), "s", nil, capability.PublishOptions{})
		}()
	}
	wg.Wait()

	if n := len(pub.Msgs); n != 50 {
		t.Fatalf("want 50 messages, got %d", n)
	}
}

func TestInmemory_ProberStub(t *testing.T) {
	p := &inmemory.Prober{}
	if p.Probe(context.Background()) {
		t.Fatalf("zero value should be down")
	}

	if !p.AlwaysUp().Probe(context.Background()) {
		t.Fatalf("want up")
	}

	if p.AlwaysDown().Probe(context.Background()) {
		t.Fatalf("want down")
	}
}

func TestInmemory_CodecCounts(t *testing.T) {
	c := &inmemory.Codec{}

	b, err := c.Marshal(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]int
	if err := c.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if c.Marshals != 1 || c.Unmarshals != 1 {
		t.Fatalf("counts: marshals=%d unmarshals=%d", c.Marshals, c.Unmarshals)
	}

	if out["a"] != 1 {
		t.Fatalf("round trip lost data: %v", out)
	}
}

// One Transport instance satisfies both contracts and can fill both set slots.
func TestInmemory_TransportFillsTwoSlots(t *testing.T) {
	tr := inmemory.New()
	set := capset.New(tr, tr)

	if err := set.Publisher().Publish(context.Background(), "s", []byte("b"), capability.PublishOptions{}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if !set.Prober().Probe(context.Background()) {
		t.Fatalf("default transport should answer up")
	}

	if n := len(tr.Msgs); n != 1 {
		t.Fatalf("want 1 recorded message, got %d", n)
	}
}
