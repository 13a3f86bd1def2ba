// Copyright (C) 2026 Backend Developers LTD
//
// This file is part of compute-horde-facilitator-sdk-go.
//
// compute-horde-facilitator-sdk-go is free software: you can redistribute it
// and/or modify it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// compute-horde-facilitator-sdk-go is distributed in the hope that it will be
// useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with compute-horde-facilitator-sdk-go.  If not, see
// <https://www.gnu.org/licenses/>.

package signature

import (
	"fmt"
	"net/http"
	"time"
)

// Verifier checks raw signatures under a single scheme. Implementations
// carry no mutable cross-call state and are safe for concurrent use.
type Verifier interface {
	// SignatureType is the scheme discriminator this verifier handles.
	SignatureType() string

	// Verify checks the signature bytes against the payload digest and the
	// claimed signatory. Returns an error wrapping ErrSignatureInvalid when
	// the check fails.
	Verify(digest []byte, sig *Signature) error
}

// VerifyOption adjusts signature verification.
type VerifyOption func(*verifyOptions)

type verifyOptions struct {
	newerThan time.Time
}

// NewerThan rejects signatures whose timestamp predates t with
// ErrSignatureTooOld. Use it to bound replay windows.
func NewerThan(t time.Time) VerifyOption {
	return func(o *verifyOptions) {
		o.newerThan = t
	}
}

// VerifySignature verifies a signature against the canonical payload it
// claims to cover, dispatching to the verifier registered in reg for the
// signature's type.
//
// Returns ErrUnknownSignatureType when the type has no registered verifier,
// ErrSignatureInvalid when the cryptographic check fails, and
// ErrSignatureTooOld when a NewerThan bound is violated. A nil error means
// the signature is valid for exactly this payload.
func (r *Registry) VerifySignature(payload []byte, sig *Signature, opts ...VerifyOption) error {
	var options verifyOptions
	for _, opt := range opts {
		opt(&options)
	}

	verifier, err := r.Verifier(sig.SignatureType)
	if err != nil {
		return err
	}

	if err := verifier.Verify(PayloadDigest(payload, sig.TimestampNS), sig); err != nil {
		return err
	}

	if !options.newerThan.IsZero() {
		signedAt := time.Unix(0, sig.TimestampNS)
		if signedAt.Before(options.newerThan) {
			return fmt.Errorf("signed at %s: %w", signedAt.UTC().Format(time.RFC3339), ErrSignatureTooOld)
		}
	}

	return nil
}

// VerifyRequest reconstructs the canonical payload for an inbound request,
// extracts the signature from its headers, and verifies it. Returns the
// verified signature so callers can act on the signatory.
//
// Returns ErrSignatureNotFound when the headers carry no signature.
func (r *Registry) VerifyRequest(method, url string, headers http.Header, jsonBody []byte, opts ...VerifyOption) (*Signature, error) {
	sig, err := FromHeaders(headers)
	if err != nil {
		return nil, err
	}

	payload, err := BuildPayload(method, url, jsonBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	if err := r.VerifySignature(payload, sig, opts...); err != nil {
		return nil, err
	}

	return sig, nil
}

// VerifySignature verifies sig against payload using the DefaultRegistry.
func VerifySignature(payload []byte, sig *Signature, opts ...VerifyOption) error {
	return DefaultRegistry.VerifySignature(payload, sig, opts...)
}

// VerifyRequest verifies an inbound request using the DefaultRegistry.
func VerifyRequest(method, url string, headers http.Header, jsonBody []byte, opts ...VerifyOption) (*Signature, error) {
	return DefaultRegistry.VerifyRequest(method, url, headers, jsonBody, opts...)
}
