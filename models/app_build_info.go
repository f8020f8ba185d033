// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds build metadata injected through linker flags.
// The client shows it in the about overlay together with the server version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the version stamped into the binary.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit hash of the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
