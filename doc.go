// Package authgate is a stateless access-control gate for web applications
// that carry a signed bearer credential in a cookie. Every inbound request is
// classified against configured route prefixes, its credential is verified,
// and the gate resolves one [Disposition]: pass through, redirect to login, or
// redirect an already-authenticated caller away from auth-only pages.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build]. All per-request work is pure in-memory computation over an
// immutable configuration; the gate holds no session state and performs no I/O
// on the request path.
//
// # Architecture boundaries
//
// authgate is the public surface. It exposes [Engine], [Builder], [Config],
// the shared access policy ([EvaluateAccess], [Privileged]), and value types
// (Disposition, MetricsSnapshot, AuditEvent). Credential parsing lives in the
// jwt sub-package, HTTP adaptation in middleware, and the client-side mirror
// in guard.
//
// # What this package must NOT do
//
//   - Issue, refresh, rotate, or revoke credentials. The gate only verifies.
//   - Distinguish "token present but invalid" from "token absent" in any
//     caller-visible output. Both fold into the unauthenticated branch.
//   - Follow a caller-supplied redirect target that fails [SanitizeRedirect].
//
// # Performance contract
//
// Decide is the hot path. It must not allocate beyond the returned Disposition
// and the transient claims struct, and never performs network round-trips.
// Audit emission is asynchronous and drops under backpressure rather than
// blocking a request.
package authgate
