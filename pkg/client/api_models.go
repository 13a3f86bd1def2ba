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

import "fmt"

// JobStatus is the lifecycle state the facilitator reports for a job.
type JobStatus string

const (
	JobStatusFailed    JobStatus = "Failed"
	JobStatusRejected  JobStatus = "Rejected"
	JobStatusSent      JobStatus = "Sent"
	JobStatusAccepted  JobStatus = "Accepted"
	JobStatusCompleted JobStatus = "Completed"
)

// InProgress reports whether the job is still being worked on.
func (s JobStatus) InProgress() bool {
	return s == JobStatusSent || s == JobStatusAccepted
}

// JobState is the facilitator's view of a single job.
type JobState struct {
	UUID              string    `json:"uuid"`
	Status            JobStatus `json:"status"`
	Stdout            string    `json:"stdout,omitempty"`
	OutputDownloadURL string    `json:"output_download_url,omitempty"`
}

// JobList is one page of jobs.
type JobList struct {
	Count   int        `json:"count"`
	Results []JobState `json:"results"`
}

// DockerJob describes a containerized job submission.
type DockerJob struct {
	DockerImage string            `json:"docker_image"`
	Args        string            `json:"args"`
	Env         map[string]string `json:"env"`
	UseGPU      bool              `json:"use_gpu"`
	InputURL    string            `json:"input_url"`
}

// JobFeedback rates a completed job.
//
// ResultCorrectness expresses the correctness of the job's result as a float
// between 0.0 (completely incorrect) and 1.0 (completely correct).
// ExpectedDuration, when set, is the expected completion time in seconds and
// can highlight executor-side performance issues.
type JobFeedback struct {
	ResultCorrectness float64  `json:"result_correctness"`
	ExpectedDuration  *float64 `json:"expected_duration,omitempty"`
}

// Validate checks the feedback value ranges before submission.
func (f *JobFeedback) Validate() error {
	if f.ResultCorrectness < 0.0 || f.ResultCorrectness > 1.0 {
		return fmt.Errorf("result_correctness must be within [0.0, 1.0], got %v", f.ResultCorrectness)
	}
	if f.ExpectedDuration != nil && *f.ExpectedDuration <= 0.0 {
		return fmt.Errorf("expected_duration must be positive, got %v", *f.ExpectedDuration)
	}
	return nil
}
