// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"

	"github.com/goplus/vsort/pkgs/gnu"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split NAME...",
	Short: "Show how names split into base and extension",
	Long:  `Split prints each NAME as its base and extension separated by a tab.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		base, ext := gnu.SplitExtension(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", base, ext)
	}
	return nil
}
