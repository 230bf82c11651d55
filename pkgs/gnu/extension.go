// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnu

// SplitExtension splits s into its base and its file name extension, so
// that base+ext == s.
//
// The extension is the longest suffix matching
//
//	(\.[A-Za-z~][A-Za-z0-9~]*)*$
//
// so "hello-8.0.12.tar.gz" splits into "hello-8.0.12" and ".tar.gz", and a
// name ending in a dot has no extension at all.
func SplitExtension(s string) (base, ext string) {
	split := len(s)
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == '.' {
			// A dot only starts an extension when followed by a letter or '~'.
			if i+1 == len(s) || !isExtStart(s[i+1]) {
				break
			}
			split = i
			continue
		}
		if !isExtStart(c) && !isDigit(c) {
			break
		}
	}
	return s[:split], s[split:]
}

func isExtStart(c byte) bool {
	return isAlpha(c) || c == '~'
}
