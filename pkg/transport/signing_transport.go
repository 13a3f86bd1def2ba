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

package transport

import (
	"fmt"
	"net/http"

	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/signature"
)

// SigningTransport is an http.RoundTripper that signs every request before
// handing it to the base transport. It lets callers keep their own
// http.Client construction (timeouts, proxies, instrumentation) while still
// getting sign-on-send:
//
//	httpClient := &http.Client{
//	    Transport: transport.NewSigningTransport(signer, nil),
//	}
type SigningTransport struct {
	signer signature.Signer
	base   http.RoundTripper
}

// NewSigningTransport creates a SigningTransport.
// If base is nil, http.DefaultTransport is used.
func NewSigningTransport(signer signature.Signer, base http.RoundTripper) *SigningTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &SigningTransport{
		signer: signer,
		base:   base,
	}
}

// RoundTrip signs the request and forwards it. The incoming request is not
// mutated, per the http.RoundTripper contract; the signature headers are set
// on a clone.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.signer == nil {
		return nil, fmt.Errorf("signing transport has no signer configured")
	}

	signed := req.Clone(req.Context())
	if err := signature.SignRequest(req.Context(), signed, t.signer); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	return t.base.RoundTrip(signed)
}
