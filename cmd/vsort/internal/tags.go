// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"
	"slices"

	"github.com/goplus/vsort/internal/scheme"
	"github.com/goplus/vsort/internal/vcs"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	tagsLatest  bool
	tagsReverse bool
	tagsJobs    int
)

// newVCS is replaced in tests.
var newVCS = func() vcs.VCS {
	return vcs.NewGitVCS()
}

var tagsCmd = &cobra.Command{
	Use:   "tags REMOTE...",
	Short: "List remote git tags in version order",
	Long: `Tags lists the tags of each git REMOTE (a URL or a local path), merged
and sorted in version order. With --latest it prints the greatest tag of
each remote instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().BoolVarP(&tagsLatest, "latest", "l", false, "Print only the greatest tag of each remote")
	tagsCmd.Flags().BoolVarP(&tagsReverse, "reverse", "r", false, "Reverse the result of comparisons")
	tagsCmd.Flags().IntVarP(&tagsJobs, "jobs", "j", 4, "Number of remotes to query at once")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	compare, err := comparator()
	if err != nil {
		return err
	}
	if tagsReverse {
		compare = scheme.Reverse(compare)
	}
	if tagsJobs < 1 {
		return fmt.Errorf("invalid --jobs %d: must be at least 1", tagsJobs)
	}

	v := newVCS()
	results := make([][]string, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(tagsJobs)
	for i, remote := range args {
		g.Go(func() error {
			log.Debugf("listing tags of %s", remote)
			tags, err := v.Tags(ctx, remote)
			if err != nil {
				return err
			}
			log.Debugf("%s has %d tags", remote, len(tags))
			results[i] = tags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tagsLatest {
		for i, remote := range args {
			if len(results[i]) == 0 {
				log.Infof("%s has no tags", remote)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", remote, slices.MaxFunc(results[i], compare))
		}
		return nil
	}

	var all []string
	for _, tags := range results {
		all = append(all, tags...)
	}
	slices.SortFunc(all, compare)
	for _, tag := range slices.Compact(all) {
		fmt.Fprintln(out, tag)
	}
	return nil
}
