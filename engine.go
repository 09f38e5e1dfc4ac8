package authgate

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/placelist/authgate/jwt"
)

// Engine defines a public type used by authgate APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config   Config
	routes   routeTable
	verifier *jwt.Verifier
	audit    *auditDispatcher
	metrics  *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// CookieName describes the cookiename operation and its observable behavior.
//
// CookieName does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) CookieName() string {
	if e == nil {
		return defaultCookieName
	}
	return e.config.CookieName
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

// Classify maps a request path to its route class using the configured
// prefix sets. Pure and deterministic; query strings and trailing slashes
// never change the outcome.
func (e *Engine) Classify(path string) RouteClass {
	if e == nil {
		return ClassPublic
	}
	return e.routes.classify(path)
}

// Decide is the gate's single entry point for one request: classify the
// path, verify the credential, sanitize the caller-supplied redirect
// parameter, and resolve the shared decision table into a Disposition.
// rawQuery is the original query string without the leading "?"; it is
// carried into the login-redirect return path so the caller lands back on
// the exact URL it asked for. A verification failure is never
// distinguished from an absent credential in the output.
func (e *Engine) Decide(path, rawQuery, rawToken, redirectParam string) Disposition {
	if e == nil {
		return Disposition{Action: ActionRedirectToLogin, Location: defaultLoginPath}
	}

	class := e.routes.classify(path)
	claims := e.verifyToken(path, rawToken)

	authenticated := claims != nil
	privileged := authenticated && Privileged(claims.IsStaff, claims.IsSuperuser)

	switch EvaluateAccess(class, authenticated, privileged) {
	case VerdictAdminRequired:
		e.metricInc(MetricAdminDenied)
		if authenticated {
			// Only a real caller identity is worth auditing; the
			// anonymous case is ordinary traffic.
			e.auditEvent(AuditEvent{
				EventType: EventAdminDenied,
				Subject:   claims.Subject,
				Path:      path,
			})
		}
		return Disposition{
			Action:   ActionRedirectToLogin,
			Location: LoginRedirectURL(e.config.LoginPath, returnPath(path, rawQuery), ReasonAdminRequired),
			Reason:   ReasonAdminRequired,
		}

	case VerdictAuthRequired:
		e.metricInc(MetricLoginRedirected)
		return Disposition{
			Action:   ActionRedirectToLogin,
			Location: LoginRedirectURL(e.config.LoginPath, returnPath(path, rawQuery), ""),
		}

	case VerdictBounce:
		e.metricInc(MetricBounced)
		target := SanitizeRedirect(redirectParam, e.config.DefaultHome)
		if redirectParam != "" && target == e.config.DefaultHome && redirectParam != e.config.DefaultHome {
			e.metricInc(MetricUnsafeRedirect)
			e.auditEvent(AuditEvent{
				EventType: EventUnsafeRedirect,
				Subject:   claims.Subject,
				Path:      path,
				Metadata:  map[string]string{"rejected_target": redirectParam},
			})
		}
		action := ActionRedirectToDefault
		if target != e.config.DefaultHome {
			action = ActionRedirectToDestination
		}
		return Disposition{Action: action, Location: target, Claims: claims}

	default:
		e.metricInc(MetricAllowed)
		return Disposition{Action: ActionAllow, Claims: claims}
	}
}

// verifyToken folds every verification failure into nil claims. The split
// between invalid, expired, and algorithm-rejected exists only for
// counters and audit; it never reaches the disposition.
func (e *Engine) verifyToken(path, rawToken string) *jwt.Claims {
	if rawToken == "" {
		return nil
	}

	claims, err := e.verifier.Verify(rawToken)
	if err == nil {
		return claims
	}

	switch {
	case errors.Is(err, jwt.ErrAlgorithmNotAllowed):
		e.metricInc(MetricAlgorithmRejected)
		e.auditEvent(AuditEvent{
			EventType: EventAlgorithmRejected,
			Path:      path,
		})
	case errors.Is(err, gojwt.ErrTokenExpired):
		e.metricInc(MetricTokenExpired)
	default:
		e.metricInc(MetricTokenInvalid)
	}
	return nil
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) auditEvent(event AuditEvent) {
	if e == nil || e.audit == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	e.audit.enqueue(event)
}

func returnPath(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}
