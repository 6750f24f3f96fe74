// Package validation provides the format predicates for key server request
// parameters.
//
// # Overview
//
// Handlers receive key IDs, fingerprints, and email addresses as untyped
// request input. This package offers total predicates over those values:
// malformed or wrong-typed input yields false, never an error or panic.
//
// # Predicates
//
// Identifier formats:
//   - Key ID: exactly 16 hex characters, case-insensitive (short key identifier)
//   - Fingerprint: exactly 40 hex characters, case-insensitive (v4 key identifier)
//   - Email: permissive syntactic shape, no deliverability checking
//
// Value coercion:
//   - IsString: runtime check for a textual value
//   - IsTrue: query-flag semantics ("true" for strings, truthiness otherwise)
//
// # Usage Example
//
//	if !validation.IsKeyID(keyID) {
//		return apierr.New(http.StatusBadRequest, "Invalid key ID")
//	}
//
//	email := validation.NormalizeEmail(rawEmail)
//	if !validation.IsEmail(email) {
//		return apierr.New(http.StatusBadRequest, "Invalid email address")
//	}
//
// # Related Packages
//
//   - pkg/httputil: request parsing built on these predicates
package validation
