// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/goplus/vsort/internal/scheme"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	sortReverse bool
	sortUnique  bool
	sortZero    bool
	sortCheck   bool
	sortOutput  string
)

var sortCmd = &cobra.Command{
	Use:   "sort [file...]",
	Short: "Sort lines in version order",
	Long: `Sort reads lines from the given files, or standard input when none or "-"
is given, and writes them sorted in version order.`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "Reverse the result of comparisons")
	sortCmd.Flags().BoolVarP(&sortUnique, "unique", "u", false, "Output only the first of lines that compare equal")
	sortCmd.Flags().BoolVarP(&sortZero, "zero-terminated", "z", false, "Line delimiter is NUL, not newline")
	sortCmd.Flags().BoolVarP(&sortCheck, "check", "c", false, "Check for sorted input; do not sort")
	sortCmd.Flags().StringVarP(&sortOutput, "output", "o", "", "Write result to file instead of standard output")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	compare, err := comparator()
	if err != nil {
		return err
	}
	if sortReverse {
		compare = scheme.Reverse(compare)
	}

	sep := byte('\n')
	if sortZero {
		sep = 0
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	var lines []string
	for _, name := range args {
		recs, err := readRecords(cmd.InOrStdin(), name, sep)
		if err != nil {
			return err
		}
		log.Debugf("read %d lines from %s", len(recs), name)
		lines = append(lines, recs...)
	}

	if sortCheck {
		return checkSorted(lines, compare, sortUnique)
	}

	slices.SortStableFunc(lines, compare)
	if sortUnique {
		lines = slices.CompactFunc(lines, func(a, b string) bool {
			return compare(a, b) == 0
		})
	}

	if sortOutput == "" {
		return writeRecords(cmd.OutOrStdout(), lines, sep)
	}
	f, err := os.Create(sortOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := writeRecords(f, lines, sep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readRecords reads the sep-terminated records of the named file,
// or of stdin when name is "-".
func readRecords(stdin io.Reader, name string, sep byte) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return splitRecords(string(data), sep), nil
}

// splitRecords splits data at sep. A final separator does not start
// another record.
func splitRecords(data string, sep byte) []string {
	if data == "" {
		return nil
	}
	data = strings.TrimSuffix(data, string(sep))
	return strings.Split(data, string(sep))
}

func writeRecords(w io.Writer, recs []string, sep byte) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		bw.WriteString(rec)
		bw.WriteByte(sep)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// checkSorted reports the first record out of order. With strict set,
// records comparing equal to their predecessor are out of order too.
func checkSorted(recs []string, compare scheme.Comparator, strict bool) error {
	for i := 1; i < len(recs); i++ {
		c := compare(recs[i-1], recs[i])
		if c > 0 || (strict && c == 0) {
			return fmt.Errorf("disorder at line %d: %s", i+1, recs[i])
		}
	}
	return nil
}
