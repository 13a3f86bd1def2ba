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
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// SignatureTypeEd25519 is the discriminator for the generic asymmetric-key
// scheme. The signatory is the hex-encoded ed25519 public key.
const SignatureTypeEd25519 = "ed25519"

// Ed25519Signer signs payload digests with an ed25519 private key.
type Ed25519Signer struct {
	privateKey ed25519.PrivateKey
	signatory  string
}

// NewEd25519Signer creates a signer from an ed25519 private key.
func NewEd25519Signer(privateKey ed25519.PrivateKey) (*Ed25519Signer, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid ed25519 private key size %d", len(privateKey))
	}

	pub := privateKey.Public().(ed25519.PublicKey)
	return &Ed25519Signer{
		privateKey: privateKey,
		signatory:  hex.EncodeToString(pub),
	}, nil
}

// SignatureType returns "ed25519".
func (s *Ed25519Signer) SignatureType() string {
	return SignatureTypeEd25519
}

// Signatory returns the hex-encoded public key.
func (s *Ed25519Signer) Signatory() string {
	return s.signatory
}

// Sign signs the payload digest.
func (s *Ed25519Signer) Sign(digest []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, digest), nil
}

// Ed25519Verifier verifies ed25519 signatures against the public key claimed
// as the signatory.
type Ed25519Verifier struct{}

// SignatureType returns "ed25519".
func (v *Ed25519Verifier) SignatureType() string {
	return SignatureTypeEd25519
}

// Verify checks the ed25519 signature against the digest and the hex public
// key in sig.Signatory.
func (v *Ed25519Verifier) Verify(digest []byte, sig *Signature) error {
	pubKey, err := hex.DecodeString(sig.Signatory)
	if err != nil {
		return fmt.Errorf("invalid signatory encoding: %v: %w", err, ErrSignatureInvalid)
	}
	if len(pubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("invalid signatory key size %d: %w", len(pubKey), ErrSignatureInvalid)
	}

	if !ed25519.Verify(ed25519.PublicKey(pubKey), digest, sig.Signature) {
		return ErrSignatureInvalid
	}

	return nil
}
