package validation

import (
	"regexp"
	"strings"
)

var (
	keyIDPattern       = regexp.MustCompile(`^[0-9a-fA-F]{16}$`)
	fingerprintPattern = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
	// Permissive by intent: dotted atoms or a quoted local part, dotted-label
	// domain or a bracketed IPv4 literal. Stricter grammars would reject
	// addresses the service has historically accepted.
	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
)

// IsString reports whether the value is textual.
func IsString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// IsTrue reports whether the value should be treated as true.
// Textual values are true only when they equal the literal "true"
// (query-flag semantics); all other values follow conventional boolean
// conversion: bools as-is, numbers when non-zero, nil never, and any
// remaining non-nil value always.
func IsTrue(v interface{}) bool {
	switch t := v.(type) {
	case string:
		return t == "true"
	case bool:
		return t
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}

// IsKeyID reports whether the value is a 16-character hex key ID.
func IsKeyID(v interface{}) bool {
	s, ok := v.(string)
	return ok && keyIDPattern.MatchString(s)
}

// IsFingerprint reports whether the value is a 40-character hex v4 key
// fingerprint.
func IsFingerprint(v interface{}) bool {
	s, ok := v.(string)
	return ok && fingerprintPattern.MatchString(s)
}

// IsEmail reports whether the value looks like an email address. The check
// is purely syntactic; no DNS or deliverability verification is performed.
func IsEmail(v interface{}) bool {
	s, ok := v.(string)
	return ok && emailPattern.MatchString(s)
}

// NormalizeEmail returns the canonical lookup form of an email address:
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
