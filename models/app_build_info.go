// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains plain data types shared by the fht2p binaries.
package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD and shown by -V/--version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are reported as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the version line, e.g. "0.9.0 (f9dbc530 2026-10-17)".
// Unknown commit and date are left out.
func (a AppBuildInfo) String() string {
	var details []string
	if a.buildCommit != notAvailable {
		details = append(details, a.buildCommit)
	}
	if a.buildDate != notAvailable {
		details = append(details, a.buildDate)
	}

	if len(details) == 0 {
		return a.buildVersion
	}

	return a.buildVersion + " (" + strings.Join(details, " ") + ")"
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}

	return s
}
