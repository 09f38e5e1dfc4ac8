package authgate

import "github.com/placelist/authgate/jwt"

// Action defines a public type used by authgate APIs.
//
// Action instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Action uint8

const (
	// ActionAllow is an exported constant or variable used by the access gate.
	ActionAllow Action = iota
	// ActionRedirectToLogin is an exported constant or variable used by the access gate.
	ActionRedirectToLogin
	// ActionRedirectToDestination is an exported constant or variable used by the access gate.
	ActionRedirectToDestination
	// ActionRedirectToDefault is an exported constant or variable used by the access gate.
	ActionRedirectToDefault
)

// String describes the string operation and its observable behavior.
//
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionRedirectToLogin:
		return "redirect_to_login"
	case ActionRedirectToDestination:
		return "redirect_to_destination"
	case ActionRedirectToDefault:
		return "redirect_to_default"
	default:
		return "unknown"
	}
}

// Disposition is the gate's decision for one request. Dispositions are
// values, never errors: every per-request failure condition resolves into
// one of the redirect actions. Claims is populated only on the allow branch
// for a verified credential, so downstream handlers can read the caller's
// identity without reparsing the token.
type Disposition struct {
	Action   Action
	Location string
	Reason   string
	Claims   *jwt.Claims
}

// Allowed reports whether the request may proceed to downstream handling.
func (d Disposition) Allowed() bool {
	return d.Action == ActionAllow
}
