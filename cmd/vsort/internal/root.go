// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"context"
	"os"
	"os/signal"

	"github.com/goplus/vsort/internal/env"
	"github.com/goplus/vsort/internal/scheme"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	schemeName string
)

var rootCmd = &cobra.Command{
	Use:   "vsort",
	Short: "vsort sorts names in version order",
	Long: `vsort sorts file names, package names and release tags so that numbers
embedded in them compare by value, the way GNU sort -V and ls -v do.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&schemeName, "scheme", "",
		"Ordering scheme: gnu, verrev, semver or lexical (default $"+env.SchemeVar+" or "+scheme.Default+")")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}

// comparator returns the comparator selected by --scheme or the environment.
func comparator() (scheme.Comparator, error) {
	name := schemeName
	if name == "" {
		name = env.Scheme()
	}
	log.Debugf("using scheme %s", name)
	return scheme.Lookup(name)
}
