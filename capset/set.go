package capset

import (
	"github.com/next-trace/scg-capability/contract/capability"
)

// Set is an immutable aggregate holding one implementation per capability slot.
// Each slot is typed by its own parameter, bound only to the slot's contract, so the
// set never forces callers to name concrete implementation types.
//
// Slots are stored exactly as supplied and never reassigned. There is no mechanism to
// replace a slot after construction; build a new Set instead. Stateful implementations
// should be pointer types so that duplicates of the set share the same instance
// (Go's garbage collector stands in for an explicit reference-counted wrapper).
type Set[P capability.Publisher, R capability.Prober, C capability.Codec] struct {
	pub   P
	probe R
	codec C
}

// New constructs a Set with the default JSON codec, requiring only the remaining
// slots. It type-checks identically to NewWithCodec against Handle and Ref.
func New[P capability.Publisher, R capability.Prober](pub P, probe R) *Set[P, R, capability.JSONCodec] {
	return NewWithCodec(pub, probe, capability.JSONCodec{})
}

// NewWithCodec constructs a Set with every slot supplied explicitly.
// There is no partial construction; all slots must be provided.
func NewWithCodec[P capability.Publisher, R capability.Prober, C capability.Codec](
	pub P,
	probe R,
	codec C,
) *Set[P, R, C] {
	return &Set[P, R, C]{pub: pub, probe: probe, codec: codec}
}

// Publisher returns the publisher slot, typed as "something implementing
// capability.Publisher" rather than a concrete type.
func (s *Set[P, R, C]) Publisher() P { return s.pub }

// Prober returns the prober slot.
func (s *Set[P, R, C]) Prober() R { return s.probe }

// Codec returns the codec slot.
func (s *Set[P, R, C]) Codec() C { return s.codec }

// Clone returns a shallow duplicate of the set. Slots are shared, not re-constructed:
// the duplicate is a second handle onto the same implementation instances.
func (s *Set[P, R, C]) Clone() *Set[P, R, C] {
	dup := *s
	return &dup
}

// Capabilities returns the set itself. It is what makes every *Set satisfy Ref
// generically, with no per-combination conformance.
func (s *Set[P, R, C]) Capabilities() *Set[P, R, C] { return s }

// Handle returns the set typed as the flat handle interface. Calling this at the
// assembly root gives downstream handle-bound functions full type inference.
func (s *Set[P, R, C]) Handle() Handle[P, R, C] { return s }

// Ref returns the set typed as the nested handle interface.
func (s *Set[P, R, C]) Ref() Ref[P, R, C] { return s }
