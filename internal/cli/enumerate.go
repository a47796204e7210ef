// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dtinv/lattice"
)

// NewSummandsCommand creates the summands command.
func NewSummandsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summands <d>",
		Short: "List the summands of d in the standard cone",
		Example: `  dtinv summands 1,1
  dtinv summands "(2,0,1)" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := parseVectors(args, 0)
			if err != nil {
				return err
			}
			d := ds[0]
			sums, err := lattice.Summands(lattice.StandardCone(d.Rank()), d)
			if err != nil {
				return computeError("summands", err)
			}
			entries := make([]Entry, len(sums))
			for i, e := range sums {
				entries[i] = Entry{Key: e.String()}
			}

			return writeEntries(cmd.OutOrStdout(), rootOpts.Format, "summands", entries)
		},
	}
}

// NewPartitionsCommand creates the partitions command.
func NewPartitionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "partitions <d>",
		Short:         "List the partitions of d in the standard cone",
		Example:       `  dtinv partitions 1,2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := parseVectors(args, 0)
			if err != nil {
				return err
			}
			d := ds[0]
			parts, err := lattice.Partitions(lattice.StandardCone(d.Rank()), d)
			if err != nil {
				return computeError("partitions", err)
			}
			entries := make([]Entry, len(parts))
			for i, p := range parts {
				entries[i] = Entry{Key: p.String()}
			}

			return writeEntries(cmd.OutOrStdout(), rootOpts.Format, "partitions", entries)
		},
	}
}
