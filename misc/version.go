// Package misc keeps build-time program identification.
package misc

import "strings"

// Set at build time with -ldflags "-X csslearn/misc.version=... -X csslearn/misc.buildHash=...".
var (
	version   = "dev"
	buildHash = "unknown"
	appName   = "csslearn"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git hash of the sources program was built from.
func GetGitHash() string {
	return strings.TrimSpace(buildHash)
}

// GetAppName returns name used for logs, reports and temporary files.
func GetAppName() string {
	return appName
}
