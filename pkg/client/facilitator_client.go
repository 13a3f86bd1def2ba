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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/backend-developers-ltd/compute-horde-facilitator-sdk-go/pkg/signature"
)

// DefaultBaseURL is the production facilitator API endpoint.
const DefaultBaseURL = "https://facilitator.computehorde.io/api/v1"

// pollInterval is the delay between job status polls in WaitForJob.
const pollInterval = 3 * time.Second

// ErrSignerRequired is returned by operations that the facilitator only
// accepts signed. Configure the client with WithSigner to use them.
var ErrSignerRequired = errors.New("this operation requires request signing: configure the client with WithSigner")

// StatusError is an HTTP error response from the facilitator.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %s: %s", e.Status, e.Body)
}

// JobTimeoutError is returned by WaitForJob when the job does not finish
// within the allotted time.
type JobTimeoutError struct {
	JobUUID    string
	Timeout    time.Duration
	LastStatus JobStatus
}

func (e *JobTimeoutError) Error() string {
	return fmt.Sprintf("job %s did not complete within %s, last status: %q", e.JobUUID, e.Timeout, e.LastStatus)
}

// FacilitatorClient talks to the facilitator REST API. When configured with
// a signer, every request is signed before transmission.
//
// The client carries no mutable state and is safe for concurrent use.
type FacilitatorClient struct {
	baseURL    string
	token      string
	signer     signature.Signer
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a FacilitatorClient.
type Option func(*FacilitatorClient)

// WithBaseURL points the client at a non-production facilitator.
func WithBaseURL(baseURL string) Option {
	return func(c *FacilitatorClient) {
		c.baseURL = baseURL
	}
}

// WithSigner makes the client sign every outgoing request.
func WithSigner(signer signature.Signer) Option {
	return func(c *FacilitatorClient) {
		c.signer = signer
	}
}

// WithHTTPClient replaces the underlying http.Client (timeouts, proxies).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *FacilitatorClient) {
		c.httpClient = httpClient
	}
}

// WithLogger enables structured logging of request dispatch and failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *FacilitatorClient) {
		c.logger = logger
	}
}

// NewFacilitatorClient creates a client authenticated with the given API
// token. By default it talks to DefaultBaseURL over http.DefaultClient and
// sends requests unsigned.
func NewFacilitatorClient(token string, opts ...Option) *FacilitatorClient {
	c := &FacilitatorClient{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJobs fetches one page of the caller's jobs.
func (c *FacilitatorClient) GetJobs(ctx context.Context, page, pageSize int) (*JobList, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var jobs JobList
	if err := c.do(ctx, "GET", "/jobs/", params, nil, &jobs); err != nil {
		return nil, err
	}
	return &jobs, nil
}

// GetJob fetches the current state of a single job.
func (c *FacilitatorClient) GetJob(ctx context.Context, jobUUID string) (*JobState, error) {
	if err := validateJobUUID(jobUUID); err != nil {
		return nil, err
	}

	var job JobState
	if err := c.do(ctx, "GET", "/jobs/"+jobUUID+"/", nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateRawJob submits a raw script job.
func (c *FacilitatorClient) CreateRawJob(ctx context.Context, rawScript, inputURL string) (*JobState, error) {
	body := map[string]string{
		"raw_script": rawScript,
		"input_url":  inputURL,
	}

	var job JobState
	if err := c.do(ctx, "POST", "/job-raw/", nil, body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateDockerJob submits a containerized job.
func (c *FacilitatorClient) CreateDockerJob(ctx context.Context, spec DockerJob) (*JobState, error) {
	if spec.Env == nil {
		spec.Env = map[string]string{}
	}

	var job JobState
	if err := c.do(ctx, "POST", "/job-docker/", nil, spec, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// SubmitJobFeedback rates a finished job. The facilitator only accepts
// signed feedback, so the client must be configured with a signer.
func (c *FacilitatorClient) SubmitJobFeedback(ctx context.Context, jobUUID string, feedback JobFeedback) error {
	if c.signer == nil {
		return ErrSignerRequired
	}
	if err := validateJobUUID(jobUUID); err != nil {
		return err
	}
	if err := feedback.Validate(); err != nil {
		return err
	}

	return c.do(ctx, "PUT", "/jobs/"+jobUUID+"/feedback/", nil, feedback, nil)
}

// WaitForJob polls the facilitator until the job is no longer in progress,
// checking every few seconds. Returns JobTimeoutError when the job is still
// in progress after timeout, or the context's error when it is canceled
// first.
func (c *FacilitatorClient) WaitForJob(ctx context.Context, jobUUID string, timeout time.Duration) (*JobState, error) {
	if err := validateJobUUID(jobUUID); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(timeout)
	var lastStatus JobStatus

	for {
		job, err := c.GetJob(ctx, jobUUID)
		if err != nil {
			return nil, err
		}
		if !job.Status.InProgress() {
			return job, nil
		}
		lastStatus = job.Status

		if time.Now().After(deadline) {
			return nil, &JobTimeoutError{JobUUID: jobUUID, Timeout: timeout, LastStatus: lastStatus}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// do sends one API request: marshals the body, attaches the token, signs
// when a signer is configured, and decodes the response into out.
func (c *FacilitatorClient) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+c.token)
	if jsonBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.signer != nil {
		if err := signature.SignRequest(ctx, req, c.signer); err != nil {
			return fmt.Errorf("failed to sign request: %w", err)
		}
	}

	c.logger.Debug("sending facilitator request",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Bool("signed", c.signer != nil),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("facilitator request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
		)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: respBody}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func validateJobUUID(jobUUID string) error {
	if _, err := uuid.Parse(jobUUID); err != nil {
		return fmt.Errorf("invalid job UUID %q: %w", jobUUID, err)
	}
	return nil
}
