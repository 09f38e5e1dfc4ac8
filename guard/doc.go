// Package guard is the client-side mirror of the authgate decision table,
// for UI layers that must not flash protected content or loop through
// redirects while the caller's identity is still resolving.
//
// An [Identity] owns the process-wide snapshot of the current user: it
// starts in the loading state, is resolved once by the login/refresh flow,
// and reset on logout. Guards subscribe to snapshot changes with a scoped
// cancel so a torn-down view never acts on a stale update. [Guard.Evaluate]
// applies the SAME precedence table the server-side Engine uses — it calls
// [authgate.EvaluateAccess] and [authgate.LoginRedirectURL] rather than
// restating them — so the two sides can never disagree for the same input.
//
// # What this package must NOT do
//
//   - Render or navigate while the snapshot is loading; the only outcome
//     then is [OutcomePending].
//   - Verify tokens. The snapshot is published by the authentication
//     context that talked to the backend; guards only read it.
//   - Write to the snapshot. Only the Identity owner mutates, and its
//     writes are serialized internally.
package guard
