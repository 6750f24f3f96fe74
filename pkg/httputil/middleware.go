package httputil

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/hkpkit/pkg/apierr"
	"github.com/platinummonkey/hkpkit/pkg/contextkeys"
	"github.com/platinummonkey/hkpkit/pkg/observability"
)

// RequireHTTPSConfig defines TLS enforcement configuration
type RequireHTTPSConfig struct {
	// RedirectStatus is the status code used for plaintext redirects
	RedirectStatus int
}

// DefaultRequireHTTPSConfig returns default TLS enforcement settings
func DefaultRequireHTTPSConfig() *RequireHTTPSConfig {
	return &RequireHTTPSConfig{
		RedirectStatus: http.StatusMovedPermanently,
	}
}

// RequireHTTPS redirects clients that are explicitly on plaintext HTTP to
// the same resource on the https origin. Requests that are already secure,
// or whose scheme cannot be determined, pass through untouched.
func RequireHTTPS(config *RequireHTTPSConfig, logger *logrus.Logger, metrics *observability.Metrics) func(http.Handler) http.Handler {
	if config == nil {
		config = DefaultRequireHTTPSConfig()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsHTTP(r) {
				target := Origin{Protocol: "https", Host: r.Host}.URL(r.URL.RequestURI())
				if logger != nil {
					logger.WithFields(logrus.Fields{
						"host": r.Host,
						"path": r.URL.Path,
					}).Info("Redirecting plaintext client to HTTPS")
				}
				if metrics != nil {
					metrics.TLSRedirectsTotal.Inc()
				}
				http.Redirect(w, r, target, config.RedirectStatus)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDMiddleware assigns each request a unique ID, preserving one
// supplied by the client or proxy. The ID is echoed in the response headers
// and stored in the request context.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := contextkeys.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rw.statusCode,
				"duration":   time.Since(start).String(),
				"request_id": contextkeys.GetRequestID(r.Context()),
			}).Info("Request completed")
		})
	}
}

// MetricsMiddleware records request counts and durations
func MetricsMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		})
	}
}

// RecoveryMiddleware recovers from panics and returns an opaque 500 error
func RecoveryMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(logrus.Fields{
						"panic":      rec,
						"stack":      string(debug.Stack()),
						"request_id": contextkeys.GetRequestID(r.Context()),
					}).Error("Recovered from panic in handler")
					// Message stays unexposed so the stack never leaks.
					WriteError(w, &apierr.Error{
						Status:  http.StatusInternalServerError,
						Message: "handler panicked",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Chain chains multiple middleware together
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
