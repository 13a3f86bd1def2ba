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
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
)

// HeaderPrefix is the prefix of the signature wire headers. The full header
// set is a fixed contract shared with the facilitator service:
//
//	X-CH-Signature-Type: scheme discriminator (e.g. "bittensor")
//	X-CH-Signatory:      claimed identity (ss58 hotkey, hex public key, ...)
//	X-CH-Timestamp-NS:   UNIX timestamp in nanoseconds, decimal
//	X-CH-Signature:      signature bytes, standard base64
const HeaderPrefix = "X-CH-"

// Signature is a detached request signature together with the metadata needed
// to verify it: the scheme it was produced under, the claimed identity of the
// signer, and the timestamp that was bound into the signed digest. A
// Signature is immutable once constructed and only ever valid relative to the
// exact canonical payload it was computed over.
type Signature struct {
	SignatureType string
	Signatory     string
	TimestampNS   int64
	Signature     []byte
}

// ToHeaders writes the signature into the X-CH-* headers.
func (s *Signature) ToHeaders(h http.Header) {
	h.Set(HeaderPrefix+"Signature-Type", s.SignatureType)
	h.Set(HeaderPrefix+"Signatory", s.Signatory)
	h.Set(HeaderPrefix+"Timestamp-NS", strconv.FormatInt(s.TimestampNS, 10))
	h.Set(HeaderPrefix+"Signature", base64.StdEncoding.EncodeToString(s.Signature))
}

// FromHeaders extracts a Signature from the X-CH-* headers.
// Returns ErrSignatureNotFound when any header is absent or malformed;
// callers that accept unsigned requests should check for it with errors.Is.
func FromHeaders(h http.Header) (*Signature, error) {
	sigType := h.Get(HeaderPrefix + "Signature-Type")
	signatory := h.Get(HeaderPrefix + "Signatory")
	timestamp := h.Get(HeaderPrefix + "Timestamp-NS")
	encoded := h.Get(HeaderPrefix + "Signature")

	if sigType == "" || signatory == "" || timestamp == "" || encoded == "" {
		return nil, ErrSignatureNotFound
	}

	timestampNS, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", timestamp, ErrSignatureNotFound)
	}

	sig, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid signature encoding: %w", ErrSignatureNotFound)
	}

	return &Signature{
		SignatureType: sigType,
		Signatory:     signatory,
		TimestampNS:   timestampNS,
		Signature:     sig,
	}, nil
}
