// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by the linker: -X layercss/misc.version=... -X layercss/misc.githash=...
var (
	version = "dev"
	githash = "unknown"
	appName = ""
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}

// GetAppName returns program name without extension, used for log and
// report file names.
func GetAppName() string {
	if appName != "" {
		return appName
	}
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		return "layercss"
	}
	return name
}
