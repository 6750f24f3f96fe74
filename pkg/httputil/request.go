package httputil

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/platinummonkey/hkpkit/pkg/apierr"
	"github.com/platinummonkey/hkpkit/pkg/validation"
)

// ForwardedProtoHeader is the trusted reverse-proxy header carrying the
// original client-facing protocol when TLS terminates at a load balancer.
const ForwardedProtoHeader = "X-Forwarded-Proto"

// IsHTTPS reports whether the client connection is secure: either the
// request arrived over TLS directly, or the proxy states https.
func IsHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get(ForwardedProtoHeader), "https")
}

// IsHTTP reports whether the client is explicitly on plaintext HTTP: the
// connection is not secure and the proxy states http. Such clients should
// be redirected to the secure endpoint.
func IsHTTP(r *http.Request) bool {
	return r.TLS == nil && strings.EqualFold(r.Header.Get(ForwardedProtoHeader), "http")
}

// Origin is the externally visible scheme and host of the service.
type Origin struct {
	Protocol string
	Host     string
}

// OriginOf derives the service origin from a request. The protocol is
// https whenever the connection is secure, otherwise plaintext http; the
// host is taken verbatim from the request.
func OriginOf(r *http.Request) Origin {
	protocol := "http"
	if IsHTTPS(r) {
		protocol = "https"
	}
	return Origin{
		Protocol: protocol,
		Host:     r.Host,
	}
}

// URL joins the origin with an optional resource path. The resource is
// appended verbatim, without normalization or escaping; that is the
// caller's responsibility.
func (o Origin) URL(resource string) string {
	return o.Protocol + "://" + o.Host + resource
}

// HKPURL builds the key server protocol URL for the request's host:
// hkps://host when the connection is secure, hkp://host otherwise.
func HKPURL(r *http.Request) string {
	scheme := "hkp"
	if IsHTTPS(r) {
		scheme = "hkps"
	}
	return scheme + "://" + r.Host
}

// KeyQuery identifies a key by one of the supported lookup parameters.
type KeyQuery struct {
	KeyID       string
	Fingerprint string
	Email       string
}

// ParseKeyQuery reads the keyId, fingerprint, and email query parameters
// and validates each one that is present. At least one parameter is
// required. Failures are tagged 400 errors safe to return to the client.
func ParseKeyQuery(r *http.Request) (KeyQuery, error) {
	q := r.URL.Query()
	query := KeyQuery{}

	if keyID := q.Get("keyId"); keyID != "" {
		if !validation.IsKeyID(keyID) {
			return KeyQuery{}, apierr.New(http.StatusBadRequest, "Invalid key ID")
		}
		query.KeyID = strings.ToLower(keyID)
	}
	if fingerprint := q.Get("fingerprint"); fingerprint != "" {
		if !validation.IsFingerprint(fingerprint) {
			return KeyQuery{}, apierr.New(http.StatusBadRequest, "Invalid fingerprint")
		}
		query.Fingerprint = strings.ToLower(fingerprint)
	}
	if email := validation.NormalizeEmail(q.Get("email")); email != "" {
		if !validation.IsEmail(email) {
			return KeyQuery{}, apierr.New(http.StatusBadRequest, "Invalid email address")
		}
		query.Email = email
	}

	if query.KeyID == "" && query.Fingerprint == "" && query.Email == "" {
		return KeyQuery{}, apierr.New(http.StatusBadRequest, "Provide a key ID, fingerprint or email address")
	}
	return query, nil
}

// ParsePathKeyID extracts a path variable and validates it as a key ID.
func ParsePathKeyID(r *http.Request, name string) (string, error) {
	keyID, err := parsePathVar(r, name)
	if err != nil {
		return "", err
	}
	if !validation.IsKeyID(keyID) {
		return "", apierr.New(http.StatusBadRequest, "Invalid key ID")
	}
	return strings.ToLower(keyID), nil
}

// ParsePathFingerprint extracts a path variable and validates it as a
// v4 key fingerprint.
func ParsePathFingerprint(r *http.Request, name string) (string, error) {
	fingerprint, err := parsePathVar(r, name)
	if err != nil {
		return "", err
	}
	if !validation.IsFingerprint(fingerprint) {
		return "", apierr.New(http.StatusBadRequest, "Invalid fingerprint")
	}
	return strings.ToLower(fingerprint), nil
}

func parsePathVar(r *http.Request, name string) (string, error) {
	vars := mux.Vars(r)
	value := vars[name]
	if value == "" {
		return "", apierr.Newf(http.StatusBadRequest, "Missing path parameter %q", name)
	}
	return value, nil
}

// ParseQueryString extracts a string query parameter
func ParseQueryString(r *http.Request, key string, defaultVal string) string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// ParseQueryBool extracts a boolean query parameter. Only the literal
// "true" counts as true; absent or malformed values are false.
func ParseQueryBool(r *http.Request, key string) bool {
	return validation.IsTrue(r.URL.Query().Get(key))
}
