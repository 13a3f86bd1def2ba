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

// Package transport provides an http.RoundTripper that signs every outgoing
// request.
//
// The FacilitatorClient signs its own requests; this package is for callers
// who talk to signature-verifying services with a plain http.Client and want
// the signing plumbed into the transport layer instead:
//
//	signer, _ := signature.NewBittensorSignerFromSeed(seed)
//	httpClient := &http.Client{
//	    Transport: transport.NewSigningTransport(signer, nil),
//	    Timeout:   30 * time.Second,
//	}
//
//	// every request now carries the X-CH-* signature headers
//	resp, err := httpClient.Post(url, "application/json", body)
//
// The transport clones each request before signing, so retries and redirects
// driven by the caller re-sign from a clean slate. TLS, retries, and
// connection pooling remain the base transport's concern.
package transport
