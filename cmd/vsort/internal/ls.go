// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goplus/vsort/internal/scheme"
	"github.com/spf13/cobra"
)

var (
	lsAll     bool
	lsReverse bool
	lsSlash   bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List a directory in version order",
	Long:  `Ls lists the entries of dir, or of the current directory, one per line in version order like ls -1v.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().BoolVarP(&lsAll, "all", "a", false, "Do not ignore entries starting with .")
	lsCmd.Flags().BoolVarP(&lsReverse, "reverse", "r", false, "Reverse order while sorting")
	lsCmd.Flags().BoolVarP(&lsSlash, "slash", "p", false, "Append / to directories")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	compare, err := comparator()
	if err != nil {
		return err
	}
	if lsReverse {
		compare = scheme.Reverse(compare)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	if lsAll {
		names = append(names, ".", "..")
	}
	isDir := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if !lsAll && strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
		isDir[name] = e.IsDir()
	}
	slices.SortFunc(names, compare)

	for _, name := range names {
		if lsSlash && (isDir[name] || name == "." || name == "..") {
			name += "/"
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
