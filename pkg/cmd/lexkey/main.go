// Copyright 2024 The Lexkey Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// lexkey is a command line helper for generating and inspecting
// order-maintenance keys, mostly useful for debugging stored sequences and
// for seeding fixtures. Keys are passed and printed in their hex form.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/orderlabs/lexkey/pkg/lexkey"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lexkey",
	Short:         "generate and inspect order-maintenance keys",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "print the default (reference) key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(lexkey.Default())
		return nil
	},
}

var beforeCmd = &cobra.Command{
	Use:   "before <key>",
	Short: "print a key strictly before the given key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := lexkey.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(lexkey.Before(k))
		return nil
	},
}

var afterCmd = &cobra.Command{
	Use:   "after <key>",
	Short: "print a key strictly after the given key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := lexkey.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(lexkey.After(k))
		return nil
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <key> <key>",
	Short: "print a key strictly between two keys",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := lexkey.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := lexkey.Parse(args[1])
		if err != nil {
			return err
		}
		k, err := lexkey.Between(a, b)
		if err != nil {
			return err
		}
		fmt.Println(k)
		return nil
	},
}

var seqOpts struct {
	count int
	lower string
	upper string
}

var seqCmd = &cobra.Command{
	Use:   "seq",
	Short: "print an ascending chain of fresh keys",
	Long: `Print an ascending chain of fresh keys, one per line of a table.
With --lower and/or --upper, every generated key stays strictly inside the
given bounds; with neither, the chain starts at the default key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seqOpts.count < 1 {
			return errors.Newf("--count must be positive, got %d", seqOpts.count)
		}
		var lower, upper *lexkey.Key
		if seqOpts.lower != "" {
			k, err := lexkey.Parse(seqOpts.lower)
			if err != nil {
				return errors.Wrap(err, "--lower")
			}
			lower = &k
		}
		if seqOpts.upper != "" {
			k, err := lexkey.Parse(seqOpts.upper)
			if err != nil {
				return errors.Wrap(err, "--upper")
			}
			upper = &k
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"seq", "key", "bytes"})
		for i := 0; i < seqOpts.count; i++ {
			k, err := lexkey.New(lower, upper)
			if err != nil {
				return err
			}
			table.Append([]string{
				strconv.Itoa(i + 1),
				k.String(),
				strconv.Itoa(len(k.Bytes())),
			})
			// Chain off the freshly minted key so the sequence ascends.
			prev := k
			lower = &prev
		}
		table.Render()
		return nil
	},
}

func init() {
	seqCmd.Flags().IntVarP(&seqOpts.count, "count", "n", 10, "number of keys to generate")
	seqCmd.Flags().StringVar(&seqOpts.lower, "lower", "", "hex key every result must follow")
	seqCmd.Flags().StringVar(&seqOpts.upper, "upper", "", "hex key every result must precede")
	rootCmd.AddCommand(defaultCmd, beforeCmd, afterCmd, betweenCmd, seqCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
