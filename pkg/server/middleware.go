package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/signature"
)

type contextKey string

const signatureKey contextKey = "verified_signature"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// SignatureMiddleware provides HTTP middleware that verifies request
// signatures on inbound requests.
type SignatureMiddleware struct {
	registry     *signature.Registry
	errorHandler ErrorHandler
	optional     bool
	maxAge       time.Duration
	logger       *zap.Logger
}

// NewSignatureMiddleware creates middleware that verifies against the
// default scheme registry.
func NewSignatureMiddleware() *SignatureMiddleware {
	return NewSignatureMiddlewareWithRegistry(signature.DefaultRegistry)
}

// NewSignatureMiddlewareWithRegistry creates middleware with a custom registry.
func NewSignatureMiddlewareWithRegistry(registry *signature.Registry) *SignatureMiddleware {
	return &SignatureMiddleware{
		registry:     registry,
		errorHandler: defaultErrorHandler,
		optional:     false,
		logger:       zap.NewNop(),
	}
}

// SetErrorHandler sets a custom error handler
func (m *SignatureMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether a signature is required.
// If true, unsigned requests are allowed to pass through; signed requests
// are still verified and rejected when invalid.
func (m *SignatureMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetMaxAge rejects signatures older than maxAge. Zero disables the check.
func (m *SignatureMiddleware) SetMaxAge(maxAge time.Duration) {
	m.maxAge = maxAge
}

// SetLogger enables structured logging of verification failures.
func (m *SignatureMiddleware) SetLogger(logger *zap.Logger) {
	m.logger = logger
}

// Wrap wraps an HTTP handler with signature verification
func (m *SignatureMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == "OPTIONS" {
			next.ServeHTTP(w, r)
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			var err error
			bodyBytes, err = io.ReadAll(r.Body)
			r.Body.Close()
			if err != nil {
				m.logger.Warn("failed to read request body",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				http.Error(w, "failed to read request body", http.StatusInternalServerError)
				return
			}
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		var jsonBody []byte
		if len(bodyBytes) > 0 {
			jsonBody = bodyBytes
		}

		var opts []signature.VerifyOption
		if m.maxAge > 0 {
			opts = append(opts, signature.NewerThan(time.Now().Add(-m.maxAge)))
		}

		sig, err := m.registry.VerifyRequest(r.Method, requestURL(r), r.Header, jsonBody, opts...)
		if err != nil {
			if m.optional && errors.Is(err, signature.ErrSignatureNotFound) {
				// Unsigned request, allowed through without a signature in context
				next.ServeHTTP(w, r)
				return
			}

			m.logger.Warn("request signature verification failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			m.errorHandler(w, r, err)
			return
		}

		// Restore body for handler
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		// Add verified signature to context
		ctx := context.WithValue(r.Context(), signatureKey, sig)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SignatureFromContext extracts the verified signature from request context.
// The second return is false for requests that passed through unsigned.
func SignatureFromContext(ctx context.Context) (*signature.Signature, bool) {
	sig, ok := ctx.Value(signatureKey).(*signature.Signature)
	return sig, ok
}

// requestURL reconstructs the full URL the client signed. Go's server-side
// request URL carries only the path and query; scheme and host come from the
// connection and the Host header.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
