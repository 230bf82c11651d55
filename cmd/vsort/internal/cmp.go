// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "Compare two strings in version order",
	Long:  `Cmp prints "<", "=" or ">" as A sorts before, equal to, or after B.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCmp,
}

func init() {
	rootCmd.AddCommand(cmpCmd)
}

func runCmp(cmd *cobra.Command, args []string) error {
	compare, err := comparator()
	if err != nil {
		return err
	}

	op := "="
	switch c := compare(args[0], args[1]); {
	case c < 0:
		op = "<"
	case c > 0:
		op = ">"
	}
	fmt.Fprintln(cmd.OutOrStdout(), op)
	return nil
}
