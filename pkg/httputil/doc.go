// Package httputil provides the HTTP request helpers for a key server
// front end: client scheme detection behind a TLS-terminating proxy,
// origin and HKP URL construction, request parameter parsing, response
// writing, and common middleware.
//
// # Scheme Detection
//
// The service normally runs behind a reverse proxy that terminates TLS and
// forwards the client-facing protocol in X-Forwarded-Proto:
//
//	httputil.IsHTTPS(r)   // direct TLS or proxy says "https"
//	httputil.IsHTTP(r)    // no TLS and proxy explicitly says "http"
//
// # URL Construction
//
//	origin := httputil.OriginOf(r)           // {Protocol, Host}
//	origin.URL("/pks/lookup")                // "https://keys.example.com/pks/lookup"
//	httputil.HKPURL(r)                       // "hkps://keys.example.com"
//
// # Request Parsing
//
// Key lookup parameters:
//
//	query, err := httputil.ParseKeyQuery(r)
//	if err != nil {
//		httputil.WriteError(w, err) // tagged 400 with a client-safe message
//		return
//	}
//
// Path parameters (gorilla/mux):
//
//	keyID, err := httputil.ParsePathKeyID(r, "keyID")
//
// # Middleware
//
//	httputil.Chain(
//		httputil.RecoveryMiddleware(logger),
//		httputil.RequestIDMiddleware,
//		httputil.LoggingMiddleware(logger),
//		httputil.MetricsMiddleware(metrics),
//		httputil.RequireHTTPS(nil, logger, metrics),
//	)
//
// # Related Packages
//
//   - pkg/validation: format predicates used by the parsers
//   - pkg/apierr: the tagged error type returned to callers
//   - pkg/observability: the metrics recorded by the middleware
package httputil
