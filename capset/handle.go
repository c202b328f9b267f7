package capset

import (
	"github.com/next-trace/scg-capability/contract/capability"
)

// Handle is the flat capability handle: one accessor per slot, each typed by the
// slot's own parameter. Every *Set satisfies Handle for its own slot types through
// the accessor methods on Set; no conformance is written per concrete combination.
//
// Use Handle as a bound when a function threads capabilities through several call
// layers. Adding a new slot to Set (and here) never breaks consumers bound to a
// single contract.
type Handle[P capability.Publisher, R capability.Prober, C capability.Codec] interface {
	Publisher() P
	Prober() R
	Codec() C
}

// Ref is the nested capability handle: a single accessor returning the whole set
// typed with the handle's slot parameters. Every *Set satisfies Ref via its
// Capabilities method.
type Ref[P capability.Publisher, R capability.Prober, C capability.Codec] interface {
	Capabilities() *Set[P, R, C]
}
