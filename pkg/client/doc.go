// Package client provides the facilitator REST API client with optional
// request signing.
//
// The FacilitatorClient wraps a standard http.Client, authenticates with an
// API token, and, when configured with a signer, attaches a detached
// signature to every outgoing request so the facilitator can verify who
// submitted it.
//
// # Basic Usage
//
//	c := client.NewFacilitatorClient(token)
//
//	job, err := c.CreateDockerJob(ctx, client.DockerJob{
//	    DockerImage: "my-image",
//	    UseGPU:      true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	finished, err := c.WaitForJob(ctx, job.UUID, 10*time.Minute)
//
// # Signed Requests
//
//	signer, _ := signature.NewBittensorSignerFromSeed(seed)
//	c := client.NewFacilitatorClient(token, client.WithSigner(signer))
//
// With a signer configured every request carries the X-CH-* signature
// headers. Some operations, such as SubmitJobFeedback, are rejected without
// one; the client surfaces that early as ErrSignerRequired.
//
// # Configuration
//
//	c := client.NewFacilitatorClient(token,
//	    client.WithBaseURL("https://facilitator.staging.example.com/api/v1"),
//	    client.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
//	    client.WithLogger(logger),
//	)
//
// # Error Handling
//
// Non-2xx responses are returned as *StatusError with the status code and
// response body. WaitForJob returns *JobTimeoutError when the job stays in
// progress past the deadline. Transport errors from the underlying
// http.Client pass through wrapped.
//
// # Concurrency
//
// The client is stateless between calls and safe for concurrent use. Both
// blocking and asynchronous call styles are supported: every method takes a
// context, so callers wanting async semantics run them in a goroutine and
// cancel via the context.
package client
