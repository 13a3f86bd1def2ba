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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Signer produces raw signatures under a single scheme. Implementations
// carry no mutable cross-call state and are safe for concurrent use.
type Signer interface {
	// SignatureType is the scheme discriminator (e.g. "bittensor").
	SignatureType() string

	// Signatory is the identity the signature is attributed to
	// (ss58 hotkey for bittensor, hex public key for ed25519).
	Signatory() string

	// Sign signs the payload digest and returns the raw signature bytes.
	Sign(digest []byte) ([]byte, error)
}

// Sign signs a canonical payload and returns the complete Signature.
// The current time is bound into the signed digest as the timestamp.
func Sign(payload []byte, signer Signer) (*Signature, error) {
	sig := &Signature{
		SignatureType: signer.SignatureType(),
		Signatory:     signer.Signatory(),
		TimestampNS:   time.Now().UnixNano(),
	}

	raw, err := signer.Sign(PayloadDigest(payload, sig.TimestampNS))
	if err != nil {
		return nil, fmt.Errorf("failed to sign payload: %w", err)
	}
	sig.Signature = raw

	return sig, nil
}

// SignRequest signs an HTTP request and attaches the signature to its
// headers. The canonical payload is built from the request method, the full
// URL, and the request body (treated as a JSON body when present). The body
// is left readable for the transport.
func SignRequest(ctx context.Context, req *http.Request, signer Signer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if signer == nil {
		return fmt.Errorf("signer cannot be nil")
	}

	body, err := requestBody(req)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	payload, err := BuildPayload(req.Method, req.URL.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build payload: %w", err)
	}

	sig, err := Sign(payload, signer)
	if err != nil {
		return err
	}
	sig.ToHeaders(req.Header)

	return nil
}

// requestBody returns the request body bytes without consuming them.
// A zero-length body is normalized to nil: HTTP cannot carry the
// distinction between an absent and an empty body across the wire, so
// the verifying side would reconstruct a payload without the json
// member and reject the signature.
func requestBody(req *http.Request) ([]byte, error) {
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, nil
		}
		return body, nil
	}

	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))

	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}
