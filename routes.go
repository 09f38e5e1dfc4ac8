package authgate

import "strings"

// RouteClass defines a public type used by authgate APIs.
//
// RouteClass instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RouteClass uint8

const (
	// ClassPublic is an exported constant or variable used by the access gate.
	ClassPublic RouteClass = iota
	// ClassAuthOnly is an exported constant or variable used by the access gate.
	ClassAuthOnly
	// ClassProtected is an exported constant or variable used by the access gate.
	ClassProtected
	// ClassAdmin is an exported constant or variable used by the access gate.
	ClassAdmin
)

// String describes the string operation and its observable behavior.
//
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c RouteClass) String() string {
	switch c {
	case ClassAdmin:
		return "admin"
	case ClassProtected:
		return "protected"
	case ClassAuthOnly:
		return "auth_only"
	default:
		return "public"
	}
}

// routeTable holds the normalized prefix sets. Built once at Engine
// construction and never mutated afterwards.
type routeTable struct {
	admin     []string
	protected []string
	authOnly  []string
}

func newRouteTable(cfg Config) routeTable {
	return routeTable{
		admin:     normalizePrefixes(cfg.AdminPrefixes),
		protected: normalizePrefixes(cfg.ProtectedPrefixes),
		authOnly:  normalizePrefixes(cfg.AuthOnlyPrefixes),
	}
}

func normalizePrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = normalizePath(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// classify maps a request path to its route class. Precedence is fixed:
// admin wins over protected, protected over auth-only, and anything
// unmatched is public. Query strings and trailing slashes never change
// the outcome.
func (t routeTable) classify(path string) RouteClass {
	path = normalizePath(path)
	switch {
	case matchesAny(path, t.admin):
		return ClassAdmin
	case matchesAny(path, t.protected):
		return ClassProtected
	case matchesAny(path, t.authOnly):
		return ClassAuthOnly
	default:
		return ClassPublic
	}
}

// normalizePath strips any query string or fragment and the trailing
// slash, leaving a bare "/" intact.
func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	for len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	return p
}

func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if matchesPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// matchesPrefix matches on path-segment boundaries: "/admin" matches
// "/admin" and "/admin/x" but never "/administration".
func matchesPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
