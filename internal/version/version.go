// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package version reports the interact build for the -version flag.
package version

import (
	"fmt"
	"runtime"
)

// Version is replaced at release time:
//
//	go build -ldflags "-X github.com/aplane-algo/interact/internal/version.Version=1.0.0" ./cmd/interact
var Version = "dev"

// String returns the version with the platform it was built for.
func String() string {
	return fmt.Sprintf("%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
