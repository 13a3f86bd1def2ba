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

// Command verify-server runs a small HTTP server that only admits signed
// requests, demonstrating the server-side verification entry points.
//
// Usage:
//
//	go run ./cmd/examples/verify-server
//	# then send a signed request with the SDK, e.g. the signing transport
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	middleware := server.NewSignatureMiddleware()
	middleware.SetLogger(logger)
	middleware.SetMaxAge(5 * time.Minute)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sig, ok := server.SignatureFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		fmt.Fprintf(w, "hello, %s (scheme %s)\n", sig.Signatory, sig.SignatureType)
	})

	http.Handle("/", middleware.Wrap(handler))

	logger.Info("listening", zap.String("addr", ":8000"))
	if err := http.ListenAndServe(":8000", nil); err != nil {
		log.Fatal(err)
	}
}
