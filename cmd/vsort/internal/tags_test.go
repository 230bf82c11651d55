// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"context"
	"fmt"
	"testing"

	"github.com/goplus/vsort/internal/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVCS serves tags from memory, keyed by remote.
type fakeVCS map[string][]string

func (f fakeVCS) Tags(ctx context.Context, remote string) ([]string, error) {
	tags, ok := f[remote]
	if !ok {
		return nil, fmt.Errorf("repository %s not found", remote)
	}
	return tags, nil
}

func useVCS(t *testing.T, v vcs.VCS) {
	t.Helper()
	saved := newVCS
	newVCS = func() vcs.VCS { return v }
	t.Cleanup(func() { newVCS = saved })
}

var remotes = fakeVCS{
	"https://example.com/app": {"v1.10.0", "v1.2.0", "v1.9.0", "v1.10.0-rc1"},
	"https://example.com/lib": {"v0.3", "v1.2.0", "v0.10"},
	"https://example.com/new": nil,
}

func TestTags(t *testing.T) {
	useVCS(t, remotes)

	out, err := execute(t, "", "tags", "https://example.com/app", "https://example.com/lib")
	require.NoError(t, err)
	assert.Equal(t, "v0.3\nv0.10\nv1.2.0\nv1.9.0\nv1.10.0\nv1.10.0-rc1\n", out)
}

func TestTagsSemver(t *testing.T) {
	useVCS(t, remotes)

	out, err := execute(t, "", "tags", "--scheme", "semver", "-j", "1", "https://example.com/app")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0\nv1.9.0\nv1.10.0-rc1\nv1.10.0\n", out)
}

func TestTagsLatest(t *testing.T) {
	useVCS(t, remotes)

	out, err := execute(t, "", "tags", "--latest",
		"https://example.com/app", "https://example.com/new", "https://example.com/lib")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/app\tv1.10.0-rc1\nhttps://example.com/lib\tv1.2.0\n", out)
}

func TestTagsReverse(t *testing.T) {
	useVCS(t, remotes)

	out, err := execute(t, "", "tags", "-r", "https://example.com/lib")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0\nv0.10\nv0.3\n", out)
}

func TestTagsError(t *testing.T) {
	useVCS(t, remotes)

	_, err := execute(t, "", "tags", "https://example.com/app", "https://example.com/gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://example.com/gone")
}

func TestTagsJobs(t *testing.T) {
	useVCS(t, remotes)

	_, err := execute(t, "", "tags", "-j", "0", "https://example.com/app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs")
}
