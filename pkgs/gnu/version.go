// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gnu implements the version sort ordering of GNU coreutils
// (sort -V, ls -v), in which numbers embedded in names compare by value.
package gnu

import (
	"cmp"
	"iter"
	"strings"
)

// CompareVersion compares two strings chunk by chunk, the way GNU verrevcmp
// does, and returns -1, 0 or +1.
//
// Each string is split into alternating non-digit and digit runs. Non-digit
// runs compare character by character using the rules of order, digit runs
// compare by numeric value. Leading zeros are ignored and a missing digit run
// counts as zero, so "a", "a0" and "a000" are all equal.
//
// CompareVersion does not know about file names: use Compare for the full
// version sort ordering.
func CompareVersion(a, b string) int {
	ca, cb := chunker{a}, chunker{b}
	for !ca.done() || !cb.done() {
		aText, aDigits := ca.next()
		bText, bDigits := cb.next()

		if c := compareText(aText, bText); c != 0 {
			return c
		}
		if c := compareDigits(aDigits, bDigits); c != 0 {
			return c
		}
	}
	return 0
}

// Chunks returns the (non-digit, digit) runs of s from left to right.
// Either run of a pair may be empty; the sequence ends when s is consumed.
func Chunks(s string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		c := chunker{s}
		for !c.done() {
			if !yield(c.next()) {
				return
			}
		}
	}
}

// chunker walks a string one chunk at a time.
// Once done, next keeps returning two empty runs.
type chunker struct {
	s string
}

func (c *chunker) done() bool {
	return c.s == ""
}

func (c *chunker) next() (text, digits string) {
	i := 0
	for i < len(c.s) && !isDigit(c.s[i]) {
		i++
	}
	j := i
	for j < len(c.s) && isDigit(c.s[j]) {
		j++
	}
	text, digits = c.s[:i], c.s[i:j]
	c.s = c.s[j:]
	return
}

// compareText compares two non-digit runs. The shorter run is padded with
// absent, which ranks above '~' and below everything else.
func compareText(a, b string) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		if c := cmp.Compare(rank(a, i), rank(b, i)); c != 0 {
			return c
		}
	}
	return 0
}

// compareDigits compares two digit runs by numeric value without parsing
// them, so runs of any length compare correctly.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
