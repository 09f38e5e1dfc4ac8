package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers malformed input, signature mismatch, and any
	// failed registered-claim validation.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrAlgorithmNotAllowed marks a syntactically well-formed token whose
	// header names an algorithm outside the allow-list. Security-relevant:
	// the Engine audits it before folding into the unauthenticated branch.
	ErrAlgorithmNotAllowed = errors.New("token algorithm not allowed")
)

// Config defines a public type used by authgate APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	// Secret is the shared HMAC secret. Minimum 256 bits.
	Secret []byte
	// AllowedAlgorithms pins the accepted signing algorithms; HMAC family
	// only. Defaults to HS256.
	AllowedAlgorithms []string
	// Leeway is the clock-skew tolerance applied to exp/iat validation.
	// Bounded to [0, 2m].
	Leeway time.Duration
}

// Claims is the decoded, verified payload of a bearer credential. Claims
// exist only for the duration of one verification call; the gate never
// persists them.
type Claims struct {
	IsStaff     bool `json:"is_staff,omitempty"`
	IsSuperuser bool `json:"is_superuser,omitempty"`

	// Algorithm records the signing method actually used, filled in after
	// verification from the validated token header.
	Algorithm string `json:"-"`

	jwt.RegisteredClaims
}

// Verifier defines a public type used by authgate APIs.
//
// Verifier instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Verifier struct {
	secret  []byte
	allowed map[string]bool
	parser  *jwt.Parser
}

// NewVerifier describes the newverifier operation and its observable behavior.
//
// NewVerifier may return an error when input validation, dependency calls, or security checks fail.
// NewVerifier does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewVerifier(cfg Config) (*Verifier, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("verifier requires a signing secret")
	}
	if len(cfg.Secret) < 32 {
		return nil, errors.New("signing secret must be at least 256 bits")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	algs := cfg.AllowedAlgorithms
	if len(algs) == 0 {
		algs = []string{"HS256"}
	}
	allowed := make(map[string]bool, len(algs))
	for _, alg := range algs {
		switch alg {
		case "HS256", "HS384", "HS512":
			allowed[alg] = true
		default:
			return nil, errors.New("allow-list accepts only HMAC algorithms")
		}
	}

	options := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
	}
	if cfg.Leeway > 0 {
		options = append(options, jwt.WithLeeway(cfg.Leeway))
	}

	return &Verifier{
		secret:  append([]byte(nil), cfg.Secret...),
		allowed: allowed,
		parser:  jwt.NewParser(options...),
	}, nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	if v == nil {
		return nil, ErrTokenInvalid
	}
	if tokenStr == "" {
		return nil, ErrTokenInvalid
	}

	token, err := v.parser.ParseWithClaims(tokenStr, &Claims{}, v.keyFunc)
	if err != nil {
		if errors.Is(err, ErrAlgorithmNotAllowed) {
			return nil, ErrAlgorithmNotAllowed
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(ErrTokenInvalid, jwt.ErrTokenExpired)
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	claims.Algorithm = token.Method.Alg()

	return claims, nil
}

// keyFunc enforces the algorithm allow-list before any key material is
// released. The method-type assertion rejects "none" and every asymmetric
// method outright, independent of the allow-list contents, so a key
// confusion attempt never reaches signature verification with the HMAC
// secret as a public key.
func (v *Verifier) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrAlgorithmNotAllowed
	}
	if !v.allowed[t.Method.Alg()] {
		return nil, ErrAlgorithmNotAllowed
	}
	return v.secret, nil
}
