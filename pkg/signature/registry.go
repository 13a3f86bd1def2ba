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

import "fmt"

// Registry maps a signature_type discriminator to the verification strategy
// for that scheme. New schemes register themselves without touching the
// dispatch logic.
//
// A Registry must be fully populated before first use. Registration is not
// synchronized: register during program initialization, then treat the
// registry as read-only. Lookups on a populated registry are safe for
// concurrent use.
type Registry struct {
	verifiers map[string]Verifier
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{verifiers: make(map[string]Verifier)}
}

// RegisterVerifier adds a verifier under its SignatureType. Registering a
// type twice panics: two strategies for one discriminator is a wiring bug.
func (r *Registry) RegisterVerifier(v Verifier) {
	sigType := v.SignatureType()
	if _, exists := r.verifiers[sigType]; exists {
		panic(fmt.Sprintf("signature: verifier already registered for type %q", sigType))
	}
	r.verifiers[sigType] = v
}

// Verifier returns the verifier registered for sigType.
// Returns ErrUnknownSignatureType when no verifier was registered.
func (r *Registry) Verifier(sigType string) (Verifier, error) {
	v, ok := r.verifiers[sigType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignatureType, sigType)
	}
	return v, nil
}

// DefaultRegistry holds the verifiers for the schemes this library ships:
// "bittensor" and "ed25519". Package-level VerifySignature and VerifyRequest
// dispatch through it.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.RegisterVerifier(&BittensorVerifier{})
	DefaultRegistry.RegisterVerifier(&Ed25519Verifier{})
}
