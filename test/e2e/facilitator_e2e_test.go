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

package e2e

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/client"
	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/server"
	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/signature"
	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/transport"
)

// TestE2E_SignedJobSubmission runs the full cycle: the facilitator client
// signs a job submission with a bittensor hotkey, the verification middleware
// reconstructs the payload on the serving side and admits the request.
func TestE2E_SignedJobSubmission(t *testing.T) {
	signer, err := signature.NewBittensorSignerFromSeed(bytes.Repeat([]byte("test"), 8))
	require.NoError(t, err)

	var verifiedSignatory string
	middleware := server.NewSignatureMiddleware()
	handler := middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sig, ok := server.SignatureFromContext(r.Context())
		require.True(t, ok)
		verifiedSignatory = sig.Signatory

		body, _ := io.ReadAll(r.Body)
		var submitted map[string]any
		require.NoError(t, json.Unmarshal(body, &submitted))
		assert.Equal(t, "echo 'Hello, World!'", submitted["raw_script"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(client.JobState{
			UUID:   "cdc16167-9fd7-4a75-a0f3-8f861dc1c1f8",
			Status: client.JobStatusSent,
		})
	}))
	facilitator := httptest.NewServer(handler)
	defer facilitator.Close()

	c := client.NewFacilitatorClient("your_token",
		client.WithBaseURL(facilitator.URL),
		client.WithSigner(signer),
	)

	job, err := c.CreateRawJob(context.Background(), "echo 'Hello, World!'", "")

	require.NoError(t, err)
	assert.Equal(t, client.JobStatusSent, job.Status)
	assert.Equal(t, signer.Signatory(), verifiedSignatory)
}

// TestE2E_BittensorScenario covers the canonical interop scenario: a POST to
// /jobs with body {"a":1} signed by a bittensor hotkey must verify, and
// changing a single byte of the body must fail.
func TestE2E_BittensorScenario(t *testing.T) {
	signer, err := signature.NewBittensorSignerFromSeed(bytes.Repeat([]byte("test"), 8))
	require.NoError(t, err)
	assert.Equal(t, byte('5'), signer.Signatory()[0])

	payload, err := signature.BuildPayload("POST", "https://api.example.com/jobs", []byte(`{"a":1}`))
	require.NoError(t, err)

	sig, err := signature.Sign(payload, signer)
	require.NoError(t, err)
	assert.Equal(t, "bittensor", sig.SignatureType)

	// The verifier reconstructs the identical method/url/body
	reconstructed, err := signature.BuildPayload("post", "https://api.example.com/jobs", []byte(`{"a":1}`))
	require.NoError(t, err)
	require.NoError(t, signature.VerifySignature(reconstructed, sig))

	// Any single-byte change to the body must fail
	tampered, err := signature.BuildPayload("POST", "https://api.example.com/jobs", []byte(`{"a":0}`))
	require.NoError(t, err)
	assert.ErrorIs(t, signature.VerifySignature(tampered, sig), signature.ErrSignatureInvalid)
}

// TestE2E_SigningTransportAgainstMiddleware checks that a plain http.Client
// with the signing transport satisfies the middleware.
func TestE2E_SigningTransportAgainstMiddleware(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := signature.NewEd25519Signer(priv)
	require.NoError(t, err)

	middleware := server.NewSignatureMiddleware()
	srv := httptest.NewServer(middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sig, ok := server.SignatureFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "ed25519", sig.SignatureType)
		w.WriteHeader(http.StatusOK)
	})))
	defer srv.Close()

	httpClient := &http.Client{Transport: transport.NewSigningTransport(signer, nil)}

	resp, err := httpClient.Post(srv.URL+"/jobs", "application/json", bytes.NewReader([]byte(`{"a":1}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_EmptyBodySignedRequest checks that a signed POST carrying a
// zero-length body is admitted. The transport sees an empty reader, the
// middleware sees no body bytes; both sides must canonicalize those the
// same way or a validly signed request gets rejected.
func TestE2E_EmptyBodySignedRequest(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := signature.NewEd25519Signer(priv)
	require.NoError(t, err)

	middleware := server.NewSignatureMiddleware()
	srv := httptest.NewServer(middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := server.SignatureFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})))
	defer srv.Close()

	httpClient := &http.Client{Transport: transport.NewSigningTransport(signer, nil)}

	resp, err := httpClient.Post(srv.URL+"/jobs", "application/json", bytes.NewReader([]byte{}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_UnsignedClientRejected checks that a client without a signer is
// turned away by a strict middleware.
func TestE2E_UnsignedClientRejected(t *testing.T) {
	middleware := server.NewSignatureMiddleware()
	srv := httptest.NewServer(middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})))
	defer srv.Close()

	c := client.NewFacilitatorClient("your_token", client.WithBaseURL(srv.URL))

	_, err := c.GetJobs(context.Background(), 1, 10)

	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}
