// Package signature implements request signing and verification for the
// compute horde facilitator.
//
// A request signature binds the HTTP method, the full URL, and the JSON body
// (when present) to a claimed identity. The client signs before sending; the
// facilitator reconstructs the identical canonical payload from the inbound
// request and verifies.
//
// # Canonical Payload
//
// Both sides must produce byte-identical payloads, so construction is fixed:
//
//	payload, err := signature.BuildPayload("POST", "https://facilitator.example.com/api/v1/job-raw/", body)
//
// The method is uppercased, the URL is taken verbatim, and the body is
// compacted without re-sorting its fields. A request without a body and a
// request with an empty body produce different payloads.
//
// # Signing
//
// A Signer is a capability: the scheme name, the signatory identity, and a
// raw signing operation. The library ships two:
//
//	// bittensor hotkey (sr25519, ss58 signatory)
//	signer, err := signature.NewBittensorSignerFromSeed(seed)
//
//	// generic public-key scheme (ed25519, hex signatory)
//	signer, err := signature.NewEd25519Signer(privateKey)
//
// Signing an outgoing request sets the X-CH-* headers:
//
//	err := signature.SignRequest(ctx, req, signer)
//
// The signed digest is blake2b-512 over the big-endian nanosecond timestamp
// followed by the canonical payload, so the timestamp cannot be swapped
// without invalidating the signature.
//
// # Verification
//
// The receiving side uses three entry points:
//
//	sig, err := signature.FromHeaders(r.Header)         // ErrSignatureNotFound when unsigned
//	payload, err := signature.BuildPayload(method, url, body)
//	err = signature.VerifySignature(payload, sig)       // ErrSignatureInvalid / ErrUnknownSignatureType
//
// or combined:
//
//	sig, err := signature.VerifyRequest(method, url, r.Header, body)
//
// Freshness can be enforced with an option:
//
//	err = signature.VerifySignature(payload, sig, signature.NewerThan(time.Now().Add(-5*time.Minute)))
//
// # Scheme Registry
//
// Verification dispatches on the signature_type header through a Registry.
// DefaultRegistry carries "bittensor" and "ed25519"; new schemes register at
// program initialization:
//
//	signature.DefaultRegistry.RegisterVerifier(&MyVerifier{})
//
// An unknown type always fails with ErrUnknownSignatureType, never a silent
// pass.
//
// # Error Handling
//
// All failures are distinct sentinel errors matched with errors.Is:
//
//   - ErrSignatureNotFound: headers absent or unparsable; recoverable,
//     callers decide whether unsigned requests are acceptable
//   - ErrSignatureInvalid: the cryptographic check failed or the payload
//     does not match what was signed
//   - ErrSignatureTooOld: valid but older than the NewerThan bound
//     (also matches ErrSignatureInvalid)
//   - ErrUnknownSignatureType: no verifier registered for the declared type
//
// # Thread Safety
//
// Signers, verifiers, and a populated Registry carry no mutable state and
// are safe for concurrent use. Populate registries during initialization;
// registration itself is not synchronized.
package signature
