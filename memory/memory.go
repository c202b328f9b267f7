package memory

import (
	"github.com/next-trace/scg-capability/adapters/inmemory"
	"github.com/next-trace/scg-capability/capset"
)

// New assembles a capability set backed entirely by in-memory implementations:
// a recording publisher, a prober pinned up, and a call-counting codec.
// The doubles stay reachable through the set's own accessors.
func New() *capset.Set[*inmemory.Publisher, *inmemory.Prober, *inmemory.Codec] {
	return capset.NewWithCodec(
		&inmemory.Publisher{},
		(&inmemory.Prober{}).AlwaysUp(),
		&inmemory.Codec{},
	)
}
