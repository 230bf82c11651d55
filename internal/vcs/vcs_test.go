// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcs

import (
	"context"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{"empty", "", nil},
		{"blank", "\n\n", nil},
		{
			name:   "tags",
			output: "1111\trefs/tags/v1.0.0\n2222\trefs/tags/v1.10.0\n3333\trefs/tags/release/2.0\n",
			want:   []string{"v1.0.0", "v1.10.0", "release/2.0"},
		},
		{
			name:   "crlf",
			output: "1111\trefs/tags/v1.0.0\r\n2222\trefs/tags/v2\r\n",
			want:   []string{"v1.0.0", "v2"},
		},
		{
			name:   "malformed lines",
			output: "garbage\n1111\trefs/tags/v1\n",
			want:   []string{"v1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTags(tt.output); !slices.Equal(got, tt.want) {
				t.Errorf("parseTags(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestGitVCS_Tags(t *testing.T) {
	dir := initRepo(t, "v1.0.0", "v1.10.0", "v1.9.0")

	tags, err := NewGitVCS().Tags(context.Background(), dir)
	if err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	slices.Sort(tags)
	if want := []string{"v1.0.0", "v1.10.0", "v1.9.0"}; !slices.Equal(tags, want) {
		t.Errorf("Tags = %q, want %q", tags, want)
	}
}

func TestGitVCS_TagsNoTags(t *testing.T) {
	dir := initRepo(t)

	tags, err := NewGitVCS().Tags(context.Background(), dir)
	if err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("Tags = %q, want none", tags)
	}
}

func TestGitVCS_TagsMissingRemote(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	_, err := NewGitVCS().Tags(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Tags on a missing repository should fail")
	}
}

func TestWithGitPath(t *testing.T) {
	v := NewGitVCS(WithGitPath(filepath.Join(t.TempDir(), "no-such-git")))
	if g := v.(*gitVCS); g.git == "git" {
		t.Fatal("WithGitPath did not set the git path")
	}
	if _, err := v.Tags(context.Background(), "."); err == nil {
		t.Fatal("Tags with a missing git binary should fail")
	}
}

// initRepo creates a repository with one commit and the given tags.
func initRepo(t *testing.T, tags ...string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		config := []string{
			"-c", "user.name=vsort",
			"-c", "user.email=vsort@example.com",
			"-c", "commit.gpgsign=false",
			"-c", "tag.gpgsign=false",
		}
		cmd := exec.Command("git", append(config, args...)...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	git("init", "-q")
	git("commit", "-q", "--allow-empty", "-m", "init")
	for _, tag := range tags {
		git("tag", tag)
	}
	return dir
}
