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
	"errors"
	"fmt"
)

var (
	// ErrSignatureNotFound is returned when the signature headers are absent
	// or cannot be parsed. Callers that accept unsigned requests should treat
	// this error as "no signature" rather than as a hard failure.
	ErrSignatureNotFound = errors.New("signature not found in headers")

	// ErrSignatureInvalid is returned when a signature does not verify
	// against the reconstructed payload and the claimed signatory.
	ErrSignatureInvalid = errors.New("signature is invalid")

	// ErrSignatureTooOld is returned when a signature verifies but its
	// timestamp predates the caller-supplied freshness bound.
	// errors.Is(err, ErrSignatureInvalid) holds for this error.
	ErrSignatureTooOld = fmt.Errorf("signature is too old: %w", ErrSignatureInvalid)

	// ErrUnknownSignatureType is returned when no verifier is registered for
	// the signature_type declared by the signature.
	ErrUnknownSignatureType = errors.New("unknown signature type")
)
