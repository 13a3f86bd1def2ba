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

// Command submit-job submits a docker job to the facilitator, signed with a
// bittensor hotkey, and waits for it to finish.
//
// Usage:
//
//	FACILITATOR_TOKEN=... HOTKEY_SEED_HEX=... go run ./cmd/examples/submit-job
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/client"
	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/signature"
)

func main() {
	token := os.Getenv("FACILITATOR_TOKEN")
	seedHex := os.Getenv("HOTKEY_SEED_HEX")
	if token == "" || seedHex == "" {
		log.Fatal("FACILITATOR_TOKEN and HOTKEY_SEED_HEX must be set")
	}

	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		log.Fatalf("invalid hotkey seed: %v", err)
	}

	signer, err := signature.NewBittensorSignerFromSeed(seed)
	if err != nil {
		log.Fatalf("failed to create signer: %v", err)
	}
	fmt.Printf("signing as hotkey %s\n", signer.Signatory())

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	c := client.NewFacilitatorClient(token,
		client.WithSigner(signer),
		client.WithLogger(logger),
	)

	ctx := context.Background()

	job, err := c.CreateDockerJob(ctx, client.DockerJob{
		DockerImage: "backenddevelopersltd/compute-horde-job-echo:v0-latest",
		Args:        "echo 'Hello, World!'",
	})
	if err != nil {
		log.Fatalf("failed to submit job: %v", err)
	}
	fmt.Printf("submitted job %s, status: %s\n", job.UUID, job.Status)

	finished, err := c.WaitForJob(ctx, job.UUID, 10*time.Minute)
	if err != nil {
		log.Fatalf("failed waiting for job: %v", err)
	}
	fmt.Printf("job finished with status %s\n", finished.Status)
	if finished.Stdout != "" {
		fmt.Printf("stdout:\n%s\n", finished.Stdout)
	}

	if finished.Status == client.JobStatusCompleted {
		if err := c.SubmitJobFeedback(ctx, job.UUID, client.JobFeedback{ResultCorrectness: 1.0}); err != nil {
			log.Fatalf("failed to submit feedback: %v", err)
		}
		fmt.Println("feedback submitted")
	}
}
