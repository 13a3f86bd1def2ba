// Package server provides HTTP middleware for verifying request signatures.
//
// The server package implements HTTP middleware that extracts the X-CH-*
// signature headers from incoming requests, reconstructs the canonical
// payload, and verifies the signature against the claimed signatory before
// the request reaches the handler.
//
// # Basic Usage
//
//	middleware := server.NewSignatureMiddleware()
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    sig, ok := server.SignatureFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "signed by: %s", sig.Signatory)
//	})
//
//	http.Handle("/api/", middleware.Wrap(handler))
//
// # Optional Verification
//
// An unsigned request is a recoverable condition: in optional mode it passes
// through with no signature in the context, while invalid signatures are
// still rejected.
//
//	middleware.SetOptional(true)
//
// # Replay Windows
//
//	// reject signatures older than five minutes
//	middleware.SetMaxAge(5 * time.Minute)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    if errors.Is(err, signature.ErrSignatureNotFound) {
//	        http.Error(w, "signature required", http.StatusUnauthorized)
//	        return
//	    }
//	    http.Error(w, "invalid signature", http.StatusForbidden)
//	})
//
// # How It Works
//
// For each request the middleware:
//
//  1. Lets OPTIONS requests through (CORS preflight is never signed)
//  2. Buffers the body so the handler can still read it
//  3. Extracts the signature from the X-CH-* headers
//  4. Rebuilds the canonical payload from method, URL, and body
//  5. Dispatches to the verifier registered for the signature type
//  6. Puts the verified signature into the request context
//
// Verification failures return 401 Unauthorized by default and never reach
// the handler.
//
// # Thread Safety
//
// The middleware is safe for concurrent use once configured. Configure it
// before serving; the setters are not synchronized with in-flight requests.
package server
