package authgate

import "errors"

var (
	// ErrMissingSecret is an exported constant or variable used by the access gate.
	ErrMissingSecret = errors.New("signing secret required")
	// ErrWeakSecret is an exported constant or variable used by the access gate.
	ErrWeakSecret = errors.New("signing secret must be at least 256 bits")
	// ErrInvalidClockSkew is an exported constant or variable used by the access gate.
	ErrInvalidClockSkew = errors.New("invalid clock skew configuration")
	// ErrAlgorithmNotAllowed is an exported constant or variable used by the access gate.
	ErrAlgorithmNotAllowed = errors.New("algorithm not in allow-list")
	// ErrInvalidRoutePrefix is an exported constant or variable used by the access gate.
	ErrInvalidRoutePrefix = errors.New("route prefix must begin with a single slash")
	// ErrInvalidGatePath is an exported constant or variable used by the access gate.
	ErrInvalidGatePath = errors.New("login and home paths must begin with a single slash")
	// ErrBuilderUsed is an exported constant or variable used by the access gate.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrEngineNotReady is an exported constant or variable used by the access gate.
	ErrEngineNotReady = errors.New("engine not initialized")
)
