// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"os"
	"strings"

	"github.com/goplus/vsort/internal/scheme"
)

// SchemeVar names the environment variable holding the default scheme.
const SchemeVar = "VSORT_SCHEME"

// Scheme returns the scheme to sort with when no flag selects one.
func Scheme() string {
	if s := strings.TrimSpace(os.Getenv(SchemeVar)); s != "" {
		return s
	}
	return scheme.Default
}
