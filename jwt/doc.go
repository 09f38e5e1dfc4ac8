// Package jwt verifies cookie-borne bearer credentials for the access gate.
//
// [Verifier.Verify] is stateless and pure: it parses, checks the signature
// against the shared HMAC secret, enforces the algorithm allow-list, and
// validates the expiry window with a configurable leeway. Every failure —
// malformed input, bad signature, expired token, disallowed algorithm —
// comes back as an error the Engine folds into its unauthenticated branch;
// nothing here panics on attacker-controlled input.
//
// # Architecture boundaries
//
// This package wraps github.com/golang-jwt/jwt/v5 and exposes only
// [Verifier], [Config], [Claims], and sentinel errors. It never mints
// tokens: credential issuance belongs to the external identity service.
//
// # What this package must NOT do
//
//   - Accept the "none" algorithm or any non-HMAC method, whatever the
//     token header claims.
//   - Compare secrets byte-by-byte itself; signature comparison is left to
//     the HMAC primitive.
//   - Perform network I/O, refresh, or revocation lookups.
package jwt
