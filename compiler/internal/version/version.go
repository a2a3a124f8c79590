// Package version reports the loxc build identity. The variables are set at
// link time:
//
//	go build -ldflags "-X github.com/desilang/lox/compiler/internal/version.Version=0.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// String is the one-line form, e.g. "loxc 0.1.0 (development)".
func String() string {
	return fmt.Sprintf("loxc %s (%s)", Version, GitCommit)
}

// Long is the multi-line form printed by `loxc version`.
func Long() string {
	return fmt.Sprintf("loxc v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
