// Package middleware adapts the authgate Engine to net/http: it reads the
// credential cookie and the redirect query parameter, asks the Engine for a
// disposition, and turns that into a pass-through or an HTTP redirect.
//
// [Gate] wraps a handler tree. On the allow branch the verified claims are
// injected into the request context and readable via [ClaimsFromContext].
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// implement access-control logic itself — every decision is delegated to
// Engine.Decide.
//
// # What this package must NOT do
//
//   - Parse or verify tokens directly (delegates to the Engine).
//   - Emit error pages: a gated request either proceeds or is redirected.
//   - Vary its decision on anything beyond path, query, and cookie.
package middleware
