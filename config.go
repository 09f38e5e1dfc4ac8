package authgate

import (
	"fmt"
	"strings"
	"time"
)

// Config defines a public type used by authgate APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	// Secret is the HMAC signing secret shared with the credential issuer.
	// Required; Build refuses to construct an Engine without it.
	Secret []byte

	// CookieName is the cookie carrying the bearer credential.
	CookieName string

	// LoginPath receives unauthenticated callers; DefaultHome receives
	// authenticated callers bounced off auth-only routes when no safe
	// redirect target was supplied.
	LoginPath   string
	DefaultHome string

	// Route prefix sets, matched on path-segment boundaries. Precedence is
	// Admin > Protected > AuthOnly > Public and does not depend on the
	// order of entries within a set.
	AdminPrefixes     []string
	ProtectedPrefixes []string
	AuthOnlyPrefixes  []string

	// ClockSkew is the tolerated expiry leeway when validating credential
	// timestamps. Bounded to [0, 2m].
	ClockSkew time.Duration

	// AllowedAlgorithms pins the accepted JWT signing algorithms. Only the
	// HMAC family is accepted; "none" and asymmetric methods are rejected
	// at validation time regardless of this list.
	AllowedAlgorithms []string

	Audit   AuditConfig
	Metrics MetricsConfig
}

// AuditConfig defines a public type used by authgate APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
}

// MetricsConfig defines a public type used by authgate APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

const (
	defaultCookieName  = "access_token"
	defaultLoginPath   = "/login"
	defaultDefaultHome = "/dashboard"

	maxClockSkew = 2 * time.Minute
	minSecretLen = 32
)

func defaultConfig() Config {
	return Config{
		CookieName:        defaultCookieName,
		LoginPath:         defaultLoginPath,
		DefaultHome:       defaultDefaultHome,
		AllowedAlgorithms: []string{"HS256"},
		Audit:             AuditConfig{Enabled: false, BufferSize: 256},
		Metrics:           MetricsConfig{Enabled: true},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Secret = append([]byte(nil), cfg.Secret...)
	out.AdminPrefixes = append([]string(nil), cfg.AdminPrefixes...)
	out.ProtectedPrefixes = append([]string(nil), cfg.ProtectedPrefixes...)
	out.AuthOnlyPrefixes = append([]string(nil), cfg.AuthOnlyPrefixes...)
	out.AllowedAlgorithms = append([]string(nil), cfg.AllowedAlgorithms...)
	return out
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if len(c.Secret) == 0 {
		return ErrMissingSecret
	}
	if len(c.Secret) < minSecretLen {
		return ErrWeakSecret
	}
	if c.ClockSkew < 0 || c.ClockSkew > maxClockSkew {
		return ErrInvalidClockSkew
	}
	for _, p := range []string{c.LoginPath, c.DefaultHome} {
		if !validGatePath(p) {
			return fmt.Errorf("%w: %q", ErrInvalidGatePath, p)
		}
	}
	for _, set := range [][]string{c.AdminPrefixes, c.ProtectedPrefixes, c.AuthOnlyPrefixes} {
		for _, prefix := range set {
			if !validGatePath(prefix) {
				return fmt.Errorf("%w: %q", ErrInvalidRoutePrefix, prefix)
			}
		}
	}
	for _, alg := range c.AllowedAlgorithms {
		if !hmacAlgorithm(alg) {
			return fmt.Errorf("%w: %q", ErrAlgorithmNotAllowed, alg)
		}
	}
	return nil
}

func validGatePath(p string) bool {
	if len(p) == 0 || p[0] != '/' {
		return false
	}
	if len(p) > 1 && (p[1] == '/' || p[1] == '\\') {
		return false
	}
	return !strings.ContainsAny(p, "\\?#")
}

func hmacAlgorithm(alg string) bool {
	switch alg {
	case "HS256", "HS384", "HS512":
		return true
	default:
		return false
	}
}
