/*
Package capset provides a generic, compile-time capability set: an immutable aggregate
holding one implementation per capability slot, plus handle interfaces that let
consumers reach those implementations without naming concrete types.

Consumers should declare the smallest bound that serves them, in this order:

 1. A single capability contract (Announce, Healthy, ...). Least infectious; preferred.
 2. A Handle or Ref bound (Broadcast, Relay, Describe). Use only when threading
    capabilities through multiple call layers; a handle can always be narrowed back to
    a single contract via its accessors.
 3. A concrete *Set. Reserved for the assembly root, where implementations are chosen.

Handle (one accessor per slot) is the default shape in this package because it gives
finer per-function bound granularity; Ref (a single accessor returning the whole set)
trades that for fewer interface methods as slots grow. Both are satisfied by every *Set
through one generic conformance, so they are interchangeable at any call boundary.

The set performs no synchronization and needs none: slots never change after
construction, so concurrent accessor calls are race-free. Implementations that carry
mutable internal state must synchronize it themselves.
*/
package capset
