// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"testing"

	"github.com/goplus/vsort/internal/scheme"
)

func TestScheme(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", scheme.Default},
		{"   ", scheme.Default},
		{"semver", "semver"},
		{" lexical\n", "lexical"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(SchemeVar, tt.value)
			if got := Scheme(); got != tt.want {
				t.Errorf("Scheme() with %s=%q = %q, want %q", SchemeVar, tt.value, got, tt.want)
			}
		})
	}
}
