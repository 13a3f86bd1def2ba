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
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// ss58Prefix is the substrate generic network id. Bittensor hotkeys use it.
const ss58Prefix = 42

// ss58ChecksumPreamble is the constant hashed in front of the address bytes.
var ss58ChecksumPreamble = []byte("SS58PRE")

// ss58Encode encodes a 32-byte public key as an SS58 address.
func ss58Encode(pubKey []byte) string {
	data := append([]byte{ss58Prefix}, pubKey...)
	return base58.Encode(append(data, ss58Checksum(data)...))
}

// ss58Decode decodes an SS58 address into the 32-byte public key,
// verifying the network prefix and checksum.
func ss58Decode(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("invalid ss58 address %q: %w", address, err)
	}

	// 1-byte prefix + 32-byte public key + 2-byte checksum
	if len(raw) != 35 {
		return nil, fmt.Errorf("invalid ss58 address length %d", len(raw))
	}
	if raw[0] != ss58Prefix {
		return nil, fmt.Errorf("unexpected ss58 network prefix %d", raw[0])
	}

	data, checksum := raw[:33], raw[33:]
	if !bytes.Equal(checksum, ss58Checksum(data)) {
		return nil, fmt.Errorf("ss58 checksum mismatch")
	}

	return data[1:], nil
}

func ss58Checksum(data []byte) []byte {
	hasher, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	hasher.Write(ss58ChecksumPreamble)
	hasher.Write(data)
	return hasher.Sum(nil)[:2]
}
