// Package internaldefs holds the shared metric definitions consumed by the
// exporter packages. One table keeps the otel and prometheus exporters in
// agreement on names and help text.
package internaldefs

import authgate "github.com/placelist/authgate"

// CounterDef describes one exported gate counter.
type CounterDef struct {
	ID   authgate.MetricID
	Name string
	Help string
}

// CounterDefs lists every gate counter in export order.
var CounterDefs = []CounterDef{
	{authgate.MetricAllowed, "authgate_allowed_total", "Requests passed through to downstream handling."},
	{authgate.MetricLoginRedirected, "authgate_login_redirected_total", "Unauthenticated requests redirected to login."},
	{authgate.MetricAdminDenied, "authgate_admin_denied_total", "Admin-route requests denied for missing staff or superuser claims."},
	{authgate.MetricBounced, "authgate_bounced_total", "Authenticated requests redirected away from auth-only routes."},
	{authgate.MetricTokenInvalid, "authgate_token_invalid_total", "Credentials rejected as malformed or bad-signature."},
	{authgate.MetricTokenExpired, "authgate_token_expired_total", "Credentials rejected as expired."},
	{authgate.MetricAlgorithmRejected, "authgate_algorithm_rejected_total", "Credentials rejected for a disallowed signing algorithm."},
	{authgate.MetricUnsafeRedirect, "authgate_unsafe_redirect_total", "Caller-supplied redirect targets replaced by the fallback."},
}

// AuditDroppedName is the exported name for the audit backpressure counter.
const AuditDroppedName = "authgate_audit_dropped_total"

// AuditDroppedHelp is the help text for the audit backpressure counter.
const AuditDroppedHelp = "Dropped audit events due to dispatcher backpressure."
