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
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// BuildPayload constructs the canonical byte sequence that is signed and
// verified for a request. Both sides of the wire must reconstruct it
// byte-identically, so the policy is fixed:
//
//   - the method is uppercased
//   - the URL is used verbatim, exactly as sent/received
//   - a JSON body, when present, is compacted (whitespace stripped, field
//     order preserved as produced by the caller)
//   - an absent body omits the "json" member entirely; a present-but-empty
//     body serializes as null, so the two never collide
//
// jsonBody must be valid JSON when non-empty.
func BuildPayload(method, url string, jsonBody []byte) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"method":`)
	if err := writeJSONString(&buf, strings.ToUpper(method)); err != nil {
		return nil, err
	}
	buf.WriteString(`,"url":`)
	if err := writeJSONString(&buf, url); err != nil {
		return nil, err
	}
	if jsonBody != nil {
		buf.WriteString(`,"json":`)
		if len(jsonBody) == 0 {
			buf.WriteString("null")
		} else if err := json.Compact(&buf, jsonBody); err != nil {
			return nil, fmt.Errorf("failed to canonicalize JSON body: %w", err)
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// PayloadDigest binds a signature timestamp to the canonical payload. The
// digest is blake2b-512 over the big-endian nanosecond timestamp followed by
// the payload bytes, so replaying a signature with a different timestamp or
// payload changes the signed material.
func PayloadDigest(payload []byte, timestampNS int64) []byte {
	hasher, err := blake2b.New512(nil)
	if err != nil {
		// blake2b.New512 only fails for invalid key sizes; nil key cannot fail
		panic(err)
	}

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(timestampNS))
	hasher.Write(ts[:])
	hasher.Write(payload)

	return hasher.Sum(nil)
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode string: %w", err)
	}
	buf.Write(encoded)
	return nil
}
