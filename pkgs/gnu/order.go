// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnu

// absent is the rank of the position past the end of a non-digit run.
const absent = 0

// order returns the sorting priority of a character
// '~': -1, letters: ASCII value, others: ASCII value + 256
//
// Digits never reach order: a digit ends the non-digit run and is
// ranked as absent by rank.
func order(c byte) int {
	if c == '~' {
		return -1
	} else if isAlpha(c) {
		return int(c)
	}
	return int(c) + 256
}

// rank returns the priority of s[i], or absent when i is past the end of s.
//
// Multi-byte UTF-8 sequences are ranked byte by byte. UTF-8 keeps code
// point order and none of its bytes are ASCII letters, so this is the
// same as ranking whole code points.
func rank(s string, i int) int {
	if i >= len(s) {
		return absent
	}
	return order(s[i])
}

// isDigit checks if the character is a digit
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha checks if the character is a letter
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
