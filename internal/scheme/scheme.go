// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheme names the orderings vsort can sort with.
package scheme

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goplus/vsort/pkgs/gnu"
	"golang.org/x/mod/semver"
)

// Comparator compares two strings and returns:
//   - a negative value if a < b
//   - zero if a == b
//   - a positive value if a > b
type Comparator func(a, b string) int

// Default is the scheme used when none is requested.
const Default = "gnu"

// ErrUnknown is returned by Lookup for a name that is not registered.
var ErrUnknown = errors.New("unknown scheme")

var schemes = map[string]Comparator{
	"gnu":     gnu.Compare,
	"verrev":  compareVerrev,
	"semver":  compareSemver,
	"lexical": strings.Compare,
}

// Lookup returns the comparator registered under name.
func Lookup(name string) (Comparator, error) {
	c, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, valid schemes: %s", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names returns the registered scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reverse returns a comparator ordering the other way round.
func Reverse(c Comparator) Comparator {
	return func(a, b string) int {
		return c(b, a)
	}
}

// compareVerrev orders by chunks alone, ignoring file name rules, and
// falls back to byte order so that "1.01" and "1.1" keep a fixed order.
func compareVerrev(a, b string) int {
	if c := gnu.CompareVersion(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// compareSemver orders semantic versions by precedence. The "v" prefix is
// optional. Strings that are not semantic versions sort first, and ties
// (invalid versions, "v1.2" vs "v1.2.0", build metadata) are broken by
// gnu.Compare.
func compareSemver(a, b string) int {
	va, vb := semverOf(a), semverOf(b)
	okA, okB := semver.IsValid(va), semver.IsValid(vb)
	switch {
	case okA && !okB:
		return 1
	case !okA && okB:
		return -1
	case okA && okB:
		if c := semver.Compare(va, vb); c != 0 {
			return c
		}
	}
	return gnu.Compare(a, b)
}

func semverOf(s string) string {
	if strings.HasPrefix(s, "v") {
		return s
	}
	return "v" + s
}
