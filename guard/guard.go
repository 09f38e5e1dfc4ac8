package guard

import (
	authgate "github.com/placelist/authgate"
)

// Outcome defines a public type used by authgate APIs.
//
// Outcome instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Outcome uint8

const (
	// OutcomePending means the snapshot is still loading: render a neutral
	// placeholder, never the protected content and never a redirect.
	OutcomePending Outcome = iota
	// OutcomeRender means the guarded view may be shown.
	OutcomeRender
	// OutcomeRedirectLogin means navigate to the login page.
	OutcomeRedirectLogin
	// OutcomeRedirectAway means an authenticated caller is on an auth-only
	// view and must be navigated to its destination.
	OutcomeRedirectAway
)

// Decision is a guard's resolved outcome plus the navigation target for
// the redirect outcomes.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Navigator performs client-side navigation for redirect decisions.
type Navigator interface {
	Navigate(location string)
}

// Guard configures one wrapped view. The three requirement flags map onto
// the gate's route classes; precedence between them is decided by
// [authgate.EvaluateAccess], not here.
type Guard struct {
	// RequireAdmin gates the view like an admin route; RequireAuth like a
	// protected route; RedirectIfAuthenticated like an auth-only route
	// (login and signup views).
	RequireAdmin            bool
	RequireAuth             bool
	RedirectIfAuthenticated bool

	// LoginPath and HomePath mirror the Engine configuration. CurrentPath
	// is the view's own location, carried as the return path on login
	// redirects. Destination is the raw redirect parameter observed on
	// the current URL; it passes through the same sanitizer as on the
	// server side.
	LoginPath   string
	HomePath    string
	CurrentPath string
	Destination string
}

func (g Guard) routeClass() authgate.RouteClass {
	switch {
	case g.RequireAdmin:
		return authgate.ClassAdmin
	case g.RequireAuth:
		return authgate.ClassProtected
	case g.RedirectIfAuthenticated:
		return authgate.ClassAuthOnly
	default:
		return authgate.ClassPublic
	}
}

// Evaluate resolves the guard against a snapshot. While the snapshot is
// loading the only possible decision is pending. Once resolved, the shared
// decision table produces the same disposition the server-side Engine
// would have chosen for an equivalent request.
func (g Guard) Evaluate(s Snapshot) Decision {
	if s.Loading {
		return Decision{Outcome: OutcomePending}
	}

	switch authgate.EvaluateAccess(g.routeClass(), s.IsAuthenticated, s.IsAdmin) {
	case authgate.VerdictAdminRequired:
		return Decision{
			Outcome:  OutcomeRedirectLogin,
			Location: authgate.LoginRedirectURL(g.loginPath(), g.CurrentPath, authgate.ReasonAdminRequired),
		}
	case authgate.VerdictAuthRequired:
		return Decision{
			Outcome:  OutcomeRedirectLogin,
			Location: authgate.LoginRedirectURL(g.loginPath(), g.CurrentPath, ""),
		}
	case authgate.VerdictBounce:
		return Decision{
			Outcome:  OutcomeRedirectAway,
			Location: authgate.SanitizeRedirect(g.Destination, g.homePath()),
		}
	default:
		return Decision{Outcome: OutcomeRender}
	}
}

func (g Guard) loginPath() string {
	if g.LoginPath == "" {
		return "/login"
	}
	return g.LoginPath
}

func (g Guard) homePath() string {
	if g.HomePath == "" {
		return "/dashboard"
	}
	return g.HomePath
}

// Mount evaluates the guard against the current snapshot, navigates if the
// decision calls for it, and subscribes for re-evaluation on every
// subsequent snapshot change. The returned cancel releases the
// subscription and must be called on view teardown.
func Mount(id *Identity, g Guard, nav Navigator) (cancel func()) {
	apply := func(s Snapshot) {
		d := g.Evaluate(s)
		if nav == nil {
			return
		}
		switch d.Outcome {
		case OutcomeRedirectLogin, OutcomeRedirectAway:
			nav.Navigate(d.Location)
		}
	}

	cancel = id.Subscribe(apply)
	apply(id.Snapshot())
	return cancel
}
