package gnu

/* Compare file names containing version numbers.

   Copyright (C) 1995 Ian Jackson <iwj10@cus.cam.ac.uk>
   Copyright (C) 2001 Anthony Towns <aj@azure.humbug.org.au>
   Copyright (C) 2008-2025 Free Software Foundation, Inc.

   This file is free software: you can redistribute it and/or modify
   it under the terms of the GNU Lesser General Public License as
   published by the Free Software Foundation, either version 3 of the
   License, or (at your option) any later version.

   This file is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Lesser General Public License for more details.

   You should have received a copy of the GNU Lesser General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.  */

import (
	"cmp"
	"slices"
	"strings"
)

// Compare compares two strings in version sort order (sort -V, ls -v) and
// returns:
// -1 if a < b
//
//	0 if a == b
//	1 if a > b
//
// The rules, in order:
//   - "", "." and ".." sort first, in that order.
//   - Names starting with '.' sort before the others. When both start
//     with '.', one dot is dropped from each.
//   - The names without their extensions are compared by CompareVersion,
//     then the whole names are.
//   - Remaining ties are broken by byte order, so Compare only returns 0
//     for identical strings.
func Compare(a, b string) int {
	if c, ok := comparePrivileged(a, b); ok {
		return c
	}

	aHidden, bHidden := a[0] == '.', b[0] == '.'
	switch {
	case aHidden && !bHidden:
		return -1
	case !aHidden && bHidden:
		return 1
	case aHidden && bHidden:
		a, b = a[1:], b[1:]
	}

	aBase, _ := SplitExtension(a)
	bBase, _ := SplitExtension(b)
	if c := CompareVersion(aBase, bBase); c != 0 {
		return c
	}
	if c := CompareVersion(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts names in place in version sort order.
func Sort(names []string) {
	slices.SortFunc(names, Compare)
}

// SortStable is like Sort, but keeps equal elements in their original
// order. Only identical strings compare equal.
func SortStable(names []string) {
	slices.SortStableFunc(names, Compare)
}

// comparePrivileged orders "", "." and ".." before everything else.
// ok is false when neither a nor b is one of them.
func comparePrivileged(a, b string) (c int, ok bool) {
	ra, rb := privilege(a), privilege(b)
	if ra == unprivileged && rb == unprivileged {
		return 0, false
	}
	return cmp.Compare(ra, rb), true
}

const unprivileged = 3

func privilege(s string) int {
	switch s {
	case "":
		return 0
	case ".":
		return 1
	case "..":
		return 2
	}
	return unprivileged
}
