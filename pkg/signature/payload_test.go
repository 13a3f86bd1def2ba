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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload_Deterministic(t *testing.T) {
	// Test Case 1: Identical inputs must yield identical bytes

	body := []byte(`{"a": 1, "b": [2, 3]}`)

	first, err := BuildPayload("POST", "https://api.example.com/jobs", body)
	require.NoError(t, err)
	second, err := BuildPayload("POST", "https://api.example.com/jobs", body)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPayload_MethodUppercased(t *testing.T) {
	// Test Case 2: Method casing must not change the payload

	lower, err := BuildPayload("get", "https://api.example.com/jobs", nil)
	require.NoError(t, err)
	upper, err := BuildPayload("GET", "https://api.example.com/jobs", nil)
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestBuildPayload_BodyCompacted(t *testing.T) {
	// Test Case 3: Whitespace is stripped, field order is preserved

	spaced, err := BuildPayload("POST", "https://api.example.com/jobs", []byte("{\n  \"b\": 2,\n  \"a\": 1\n}"))
	require.NoError(t, err)
	compact, err := BuildPayload("POST", "https://api.example.com/jobs", []byte(`{"b":2,"a":1}`))
	require.NoError(t, err)

	assert.Equal(t, compact, spaced)

	// Re-sorting the fields is a different payload
	sorted, err := BuildPayload("POST", "https://api.example.com/jobs", []byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.NotEqual(t, compact, sorted)
}

func TestBuildPayload_AbsentVsEmptyBody(t *testing.T) {
	// Test Case 4: No body and empty body must never collide

	noBody, err := BuildPayload("POST", "https://api.example.com/jobs", nil)
	require.NoError(t, err)
	emptyBody, err := BuildPayload("POST", "https://api.example.com/jobs", []byte{})
	require.NoError(t, err)

	assert.NotEqual(t, noBody, emptyBody)
}

func TestBuildPayload_InvalidJSON(t *testing.T) {
	// Test Case 5: A body that is not valid JSON is rejected

	_, err := BuildPayload("POST", "https://api.example.com/jobs", []byte(`{"a":`))
	require.Error(t, err)
}

func TestBuildPayload_WireFormat(t *testing.T) {
	// Test Case 6: The canonical byte layout is a fixed wire contract

	payload, err := BuildPayload("post", "https://api.example.com/jobs?x=1", []byte(`{"a": 1}`))
	require.NoError(t, err)

	assert.Equal(t, `{"method":"POST","url":"https://api.example.com/jobs?x=1","json":{"a":1}}`, string(payload))
}

func TestPayloadDigest_TimestampBound(t *testing.T) {
	// Test Case 7: Changing the timestamp changes the digest

	payload := []byte(`{"method":"GET","url":"https://api.example.com/jobs"}`)

	first := PayloadDigest(payload, 1)
	second := PayloadDigest(payload, 2)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
