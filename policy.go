package authgate

import "net/url"

// Verdict defines a public type used by authgate APIs.
//
// Verdict instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Verdict uint8

const (
	// VerdictAllow is an exported constant or variable used by the access gate.
	VerdictAllow Verdict = iota
	// VerdictAuthRequired is an exported constant or variable used by the access gate.
	VerdictAuthRequired
	// VerdictAdminRequired is an exported constant or variable used by the access gate.
	VerdictAdminRequired
	// VerdictBounce is an exported constant or variable used by the access gate.
	VerdictBounce
)

const (
	// RedirectParam is the query parameter carrying the percent-encoded
	// return path on login redirects.
	RedirectParam = "redirect"
	// MessageParam is the query parameter carrying the denial reason on
	// login redirects.
	MessageParam = "message"
	// ReasonAdminRequired is the reason code attached when a caller
	// without staff or superuser claims hits an admin route.
	ReasonAdminRequired = "admin_required"
)

// Privileged is the single role-elevation predicate for admin routes. Both
// the Engine and the guard mirror consult it; no call site may restate the
// staff-or-superuser check inline.
func Privileged(isStaff, isSuperuser bool) bool {
	return isStaff || isSuperuser
}

// EvaluateAccess is the authoritative decision table shared by the
// server-side Engine and the client guard mirror. Admin is checked before
// the generic auth check so an admin path can never fall through to the
// weaker protected branch, and auth-only fires last among the restrictive
// classes. An invalid credential and an absent credential are
// indistinguishable here: callers pass authenticated=false for both.
func EvaluateAccess(class RouteClass, authenticated, privileged bool) Verdict {
	switch class {
	case ClassAdmin:
		if !authenticated || !privileged {
			return VerdictAdminRequired
		}
		return VerdictAllow
	case ClassProtected:
		if !authenticated {
			return VerdictAuthRequired
		}
		return VerdictAllow
	case ClassAuthOnly:
		if authenticated {
			return VerdictBounce
		}
		return VerdictAllow
	default:
		return VerdictAllow
	}
}

// LoginRedirectURL builds the login redirect location for a denied request.
// The return path is percent-encoded into the redirect parameter; a
// non-empty reason is appended as the message parameter. The Engine and the
// guard mirror both use this builder so the two sides emit byte-identical
// locations for the same input.
func LoginRedirectURL(loginPath, returnPath, reason string) string {
	loc := loginPath + "?" + RedirectParam + "=" + url.QueryEscape(returnPath)
	if reason != "" {
		loc += "&" + MessageParam + "=" + url.QueryEscape(reason)
	}
	return loc
}
