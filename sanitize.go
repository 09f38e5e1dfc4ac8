package authgate

// SanitizeRedirect validates a caller-supplied "return to" target and
// returns it only when it is a same-origin, path-relative string: a single
// leading slash, no authority component, no backslashes, no control bytes.
// Anything else — absolute URLs, protocol-relative "//host" payloads,
// backslash variants the browser would normalize into an authority — yields
// fallback. The caller supplying the candidate may be an attacker, so
// rejection is silent.
//
// SanitizeRedirect is pure and shared by the server-side Engine and the
// client guard mirror so both resolve identical targets for the same input.
func SanitizeRedirect(candidate, fallback string) string {
	if candidate == "" {
		return fallback
	}
	if candidate[0] != '/' {
		return fallback
	}
	if len(candidate) > 1 && (candidate[1] == '/' || candidate[1] == '\\') {
		return fallback
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] == '\\' || candidate[i] < 0x20 || candidate[i] == 0x7f {
			return fallback
		}
	}
	return candidate
}
