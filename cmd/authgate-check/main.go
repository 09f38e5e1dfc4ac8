// authgate-check evaluates the gate's disposition for a single request,
// for verifying route configuration and tokens from the command line.
//
//	authgate-check -path /admin/reports \
//	  -admin /admin -protected /dashboard,/profile -authonly /login,/signup
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	authgate "github.com/placelist/authgate"
)

func main() {
	var (
		secret    = flag.String("secret", "", "signing secret; if empty, AUTHGATE_SECRET env is used")
		path      = flag.String("path", "/", "request path to classify")
		query     = flag.String("query", "", "raw query string without the leading '?'")
		token     = flag.String("token", "", "bearer credential to verify; empty means no cookie")
		redirect  = flag.String("redirect", "", "caller-supplied redirect parameter")
		admin     = flag.String("admin", "/admin", "comma-separated admin prefixes")
		protected = flag.String("protected", "/dashboard", "comma-separated protected prefixes")
		authOnly  = flag.String("authonly", "/login,/signup", "comma-separated auth-only prefixes")
		login     = flag.String("login", "/login", "login path for redirects")
		home      = flag.String("home", "/dashboard", "default home for bounces")
		skew      = flag.Duration("skew", 0, "clock skew tolerance for expiry validation")
		algs      = flag.String("algs", "HS256", "comma-separated allowed signing algorithms")
	)
	flag.Parse()

	key := *secret
	if key == "" {
		key = os.Getenv("AUTHGATE_SECRET")
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "a signing secret is required (-secret or AUTHGATE_SECRET)")
		os.Exit(2)
	}

	engine, err := authgate.New().
		WithConfig(authgate.Config{
			Secret:            []byte(key),
			LoginPath:         *login,
			DefaultHome:       *home,
			AdminPrefixes:     splitList(*admin),
			ProtectedPrefixes: splitList(*protected),
			AuthOnlyPrefixes:  splitList(*authOnly),
			ClockSkew:         *skew,
			AllowedAlgorithms: splitList(*algs),
			Metrics:           authgate.MetricsConfig{Enabled: false},
		}).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build engine: %v\n", err)
		os.Exit(2)
	}
	defer engine.Close()

	start := time.Now()
	d := engine.Decide(*path, *query, *token, *redirect)
	elapsed := time.Since(start)

	fmt.Printf("class:    %s\n", engine.Classify(*path))
	fmt.Printf("action:   %s\n", d.Action)
	if d.Location != "" {
		fmt.Printf("location: %s\n", d.Location)
	}
	if d.Reason != "" {
		fmt.Printf("reason:   %s\n", d.Reason)
	}
	if d.Claims != nil {
		fmt.Printf("subject:  %s (staff=%v superuser=%v alg=%s)\n",
			d.Claims.Subject, d.Claims.IsStaff, d.Claims.IsSuperuser, d.Claims.Algorithm)
	}
	fmt.Printf("decided in %s\n", elapsed)

	if !d.Allowed() {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
