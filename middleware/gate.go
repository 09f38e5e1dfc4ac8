package middleware

import (
	"context"
	"net/http"

	authgate "github.com/placelist/authgate"
	"github.com/placelist/authgate/jwt"
)

type claimsContextKey struct{}

// ClaimsFromContext returns the verified claims injected by [Gate] on the
// allow branch, or false when the request carried no valid credential.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*jwt.Claims)
	return claims, ok
}

// Gate returns middleware enforcing the engine's decision table on every
// request. Redirect dispositions answer with 302 and the location the
// engine built; allow dispositions pass through unmodified apart from the
// claims context value.
func Gate(engine *authgate.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			token := ""
			if cookie, err := r.Cookie(engine.CookieName()); err == nil {
				token = cookie.Value
			}

			d := engine.Decide(
				r.URL.Path,
				r.URL.RawQuery,
				token,
				r.URL.Query().Get(authgate.RedirectParam),
			)
			if !d.Allowed() {
				http.Redirect(w, r, d.Location, http.StatusFound)
				return
			}

			if d.Claims != nil {
				ctx := context.WithValue(r.Context(), claimsContextKey{}, d.Claims)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
