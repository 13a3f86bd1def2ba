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

// Package facilitatorsdk provides version information for
// compute-horde-facilitator-sdk-go and the facilitator API it targets.
package facilitatorsdk

const (
	// Version is the current version of compute-horde-facilitator-sdk-go
	Version = "1.0.0"

	// FacilitatorAPIVersion is the facilitator REST API version this library speaks
	FacilitatorAPIVersion = "v1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SDKVersion            string
	FacilitatorAPIVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SDKVersion:            Version,
		FacilitatorAPIVersion: FacilitatorAPIVersion,
	}
}
