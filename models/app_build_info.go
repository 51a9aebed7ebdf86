// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable is reported for build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// the startup log line for diagnostics and release traceability.
type AppBuildInfo struct {
	appName      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are replaced with "N/A".
func NewAppBuildInfo(appName, buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		appName:      orNotAvailable(appName),
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// AppName returns the program name.
func (a AppBuildInfo) AppName() string {
	return a.appName
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

// String renders the name and version as "<name> v<version>".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s v%s", a.appName, a.buildVersion)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
