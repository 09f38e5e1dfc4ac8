package guard

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	authgate "github.com/placelist/authgate"
	"github.com/placelist/authgate/jwt"
)

func userClaims(isStaff, isSuperuser bool) *jwt.Claims {
	return &jwt.Claims{
		IsStaff:     isStaff,
		IsSuperuser: isSuperuser,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
}

func TestGuardPendingWhileLoading(t *testing.T) {
	guards := []Guard{
		{RequireAdmin: true},
		{RequireAuth: true},
		{RedirectIfAuthenticated: true},
		{},
	}
	for _, g := range guards {
		d := g.Evaluate(Snapshot{Loading: true})
		if d.Outcome != OutcomePending {
			t.Fatalf("guard %+v decided %v while loading", g, d.Outcome)
		}
		if d.Location != "" {
			t.Fatal("pending decision must carry no navigation target")
		}
	}
}

func TestGuardAuthRequiredRedirectsToLogin(t *testing.T) {
	g := Guard{RequireAuth: true, CurrentPath: "/dashboard"}

	d := g.Evaluate(Snapshot{})
	if d.Outcome != OutcomeRedirectLogin {
		t.Fatalf("outcome = %v, want login redirect", d.Outcome)
	}
	want := "/login?redirect=%2Fdashboard"
	if d.Location != want {
		t.Fatalf("location = %q, want %q", d.Location, want)
	}
}

func TestGuardAdminRequiresPrivilege(t *testing.T) {
	g := Guard{RequireAdmin: true, CurrentPath: "/admin/reports"}

	d := g.Evaluate(Snapshot{IsAuthenticated: true, User: userClaims(false, false)})
	if d.Outcome != OutcomeRedirectLogin {
		t.Fatalf("outcome = %v, want login redirect", d.Outcome)
	}
	want := "/login?redirect=%2Fadmin%2Freports&message=admin_required"
	if d.Location != want {
		t.Fatalf("location = %q, want %q", d.Location, want)
	}

	d = g.Evaluate(Snapshot{IsAuthenticated: true, IsAdmin: true, User: userClaims(true, false)})
	if d.Outcome != OutcomeRender {
		t.Fatalf("privileged snapshot should render, got %v", d.Outcome)
	}
}

func TestGuardAuthOnlyBouncesAuthenticated(t *testing.T) {
	g := Guard{RedirectIfAuthenticated: true, Destination: "/business/42"}

	d := g.Evaluate(Snapshot{IsAuthenticated: true, User: userClaims(false, false)})
	if d.Outcome != OutcomeRedirectAway || d.Location != "/business/42" {
		t.Fatalf("decision = %+v, want bounce to /business/42", d)
	}

	d = g.Evaluate(Snapshot{})
	if d.Outcome != OutcomeRender {
		t.Fatalf("unauthenticated caller must see the auth-only view, got %v", d.Outcome)
	}
}

func TestGuardAuthOnlyBlocksOpenRedirect(t *testing.T) {
	g := Guard{RedirectIfAuthenticated: true, Destination: "https://evil.example/phish"}

	d := g.Evaluate(Snapshot{IsAuthenticated: true, User: userClaims(false, false)})
	if d.Outcome != OutcomeRedirectAway || d.Location != "/dashboard" {
		t.Fatalf("decision = %+v, want bounce to default home", d)
	}
}

// The mirror must agree with the server-side engine on every input: same
// verdicts, same redirect locations.
func TestGuardAgreesWithEngineTable(t *testing.T) {
	engine, err := authgate.New().
		WithConfig(authgate.Config{
			Secret:            []byte("0123456789abcdef0123456789abcdef"),
			AdminPrefixes:     []string{"/admin"},
			ProtectedPrefixes: []string{"/dashboard", "/admin"},
			AuthOnlyPrefixes:  []string{"/login"},
		}).
		Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	defer engine.Close()

	sign := func(claims *jwt.Claims) string {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
			SignedString([]byte("0123456789abcdef0123456789abcdef"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return token
	}

	cases := []struct {
		name   string
		path   string
		guard  Guard
		claims *jwt.Claims
	}{
		{"admin-anonymous", "/admin/reports", Guard{RequireAdmin: true, CurrentPath: "/admin/reports"}, nil},
		{"admin-unprivileged", "/admin/reports", Guard{RequireAdmin: true, CurrentPath: "/admin/reports"}, userClaims(false, false)},
		{"admin-staff", "/admin/reports", Guard{RequireAdmin: true, CurrentPath: "/admin/reports"}, userClaims(true, false)},
		{"protected-anonymous", "/dashboard", Guard{RequireAuth: true, CurrentPath: "/dashboard"}, nil},
		{"protected-authenticated", "/dashboard", Guard{RequireAuth: true, CurrentPath: "/dashboard"}, userClaims(false, false)},
		{"authonly-authenticated", "/login", Guard{RedirectIfAuthenticated: true, CurrentPath: "/login"}, userClaims(false, false)},
		{"authonly-anonymous", "/login", Guard{RedirectIfAuthenticated: true, CurrentPath: "/login"}, nil},
	}

	for _, tc := range cases {
		token := ""
		snapshot := Snapshot{}
		if tc.claims != nil {
			token = sign(tc.claims)
			snapshot = Snapshot{
				User:            tc.claims,
				IsAuthenticated: true,
				IsAdmin:         authgate.Privileged(tc.claims.IsStaff, tc.claims.IsSuperuser),
			}
		}

		serverSide := engine.Decide(tc.path, "", token, "")
		clientSide := tc.guard.Evaluate(snapshot)

		serverAllows := serverSide.Allowed()
		clientRenders := clientSide.Outcome == OutcomeRender
		if serverAllows != clientRenders {
			t.Fatalf("%s: engine %v vs guard %v", tc.name, serverSide.Action, clientSide.Outcome)
		}
		if !serverAllows && serverSide.Action == authgate.ActionRedirectToLogin {
			if clientSide.Location != serverSide.Location {
				t.Fatalf("%s: guard location %q != engine location %q",
					tc.name, clientSide.Location, serverSide.Location)
			}
		}
		if serverSide.Action == authgate.ActionRedirectToDefault {
			if clientSide.Outcome != OutcomeRedirectAway || clientSide.Location != serverSide.Location {
				t.Fatalf("%s: guard bounce %+v != engine %q", tc.name, clientSide, serverSide.Location)
			}
		}
	}
}
