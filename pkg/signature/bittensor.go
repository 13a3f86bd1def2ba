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

	"github.com/ChainSafe/gossamer/lib/crypto/sr25519"
)

// SignatureTypeBittensor is the discriminator for sr25519 hotkey signatures.
// The signatory is the hotkey's SS58 address.
const SignatureTypeBittensor = "bittensor"

// BittensorSigner signs payload digests with an sr25519 hotkey.
type BittensorSigner struct {
	keypair   *sr25519.Keypair
	signatory string
}

// NewBittensorSigner creates a signer from an existing hotkey keypair.
func NewBittensorSigner(keypair *sr25519.Keypair) (*BittensorSigner, error) {
	if keypair == nil {
		return nil, fmt.Errorf("keypair cannot be nil")
	}

	pub, ok := keypair.Public().(*sr25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type %T", keypair.Public())
	}

	return &BittensorSigner{
		keypair:   keypair,
		signatory: ss58Encode(pub.Encode()),
	}, nil
}

// NewBittensorSignerFromSeed creates a signer from a 32-byte mini secret seed.
func NewBittensorSignerFromSeed(seed []byte) (*BittensorSigner, error) {
	keypair, err := sr25519.NewKeypairFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keypair from seed: %w", err)
	}
	return NewBittensorSigner(keypair)
}

// SignatureType returns "bittensor".
func (s *BittensorSigner) SignatureType() string {
	return SignatureTypeBittensor
}

// Signatory returns the hotkey SS58 address.
func (s *BittensorSigner) Signatory() string {
	return s.signatory
}

// Sign signs the payload digest with the hotkey.
func (s *BittensorSigner) Sign(digest []byte) ([]byte, error) {
	sig, err := s.keypair.Sign(digest)
	if err != nil {
		return nil, fmt.Errorf("sr25519 signing failed: %w", err)
	}
	return sig, nil
}

// BittensorVerifier verifies sr25519 hotkey signatures. The public key is
// recovered from the SS58 address claimed as the signatory.
type BittensorVerifier struct{}

// SignatureType returns "bittensor".
func (v *BittensorVerifier) SignatureType() string {
	return SignatureTypeBittensor
}

// Verify checks the sr25519 signature against the digest and the hotkey
// address in sig.Signatory.
func (v *BittensorVerifier) Verify(digest []byte, sig *Signature) error {
	pubKeyBytes, err := ss58Decode(sig.Signatory)
	if err != nil {
		return fmt.Errorf("invalid signatory: %v: %w", err, ErrSignatureInvalid)
	}

	pubKey, err := sr25519.NewPublicKey(pubKeyBytes)
	if err != nil {
		return fmt.Errorf("invalid signatory public key: %v: %w", err, ErrSignatureInvalid)
	}

	ok, err := pubKey.Verify(digest, sig.Signature)
	if err != nil {
		return fmt.Errorf("signature is malformed: %v: %w", err, ErrSignatureInvalid)
	}
	if !ok {
		return ErrSignatureInvalid
	}

	return nil
}
