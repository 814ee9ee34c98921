// Package slow provides the reference implementations of the narrows
// reduction operations: always correct, never fast.
//
// A dispatch layer (outside this module) is expected to route the
// ndim/dtype combinations an accelerated implementation supports to that
// implementation and everything else here. Each function is a thin
// composition of engine primitives (see array.Backend) with light pre/post
// type coercion to preserve dtype contracts; no state is shared between
// calls. Replace is the single mutating operation, and callers mutating the
// same array concurrently must serialize externally.
package slow
