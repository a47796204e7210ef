// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dtinv/lattice"
	"github.com/katalvlaran/dtinv/motive"
	"github.com/katalvlaran/dtinv/stability"
)

// problemCommand builds a command that loads a problem file and emits the
// entries computed by run.
func problemCommand(rootOpts *RootOptions, use, short, example string, minArgs int,
	run func(c *stability.Condition, ds []lattice.Vector) ([]Entry, error)) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Example:       example,
		Args:          cobra.MinimumNArgs(minArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCondition(path)
			if err != nil {
				return err
			}
			ds, err := parseVectors(args, c.Rank())
			if err != nil {
				return err
			}
			entries, err := run(c, ds)
			if err != nil {
				return err
			}

			return writeEntries(cmd.OutOrStdout(), rootOpts.Format, cmd.Name(), entries)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "problem file (YAML)")

	return cmd
}

// NewObjectsCommand creates the objects command.
func NewObjectsCommand(rootOpts *RootOptions) *cobra.Command {
	return problemCommand(rootOpts, "objects <d>",
		"Print the motive of representations for every summand of d",
		`  dtinv objects -c kronecker.yaml 1,1`, 1,
		func(c *stability.Condition, ds []lattice.Vector) ([]Entry, error) {
			var entries []Entry
			for _, d := range ds {
				terms, err := c.Category().MotiveOfObjects().Below(d)
				if err != nil {
					return nil, computeError("objects", err)
				}
				for _, t := range terms {
					entries = append(entries, Entry{Key: t.Vector.String(), Value: t.Value.String()})
				}
			}

			return entries, nil
		})
}

// NewHNCommand creates the hn command.
func NewHNCommand(rootOpts *RootOptions) *cobra.Command {
	return problemCommand(rootOpts, "hn <d>",
		"List the Harder–Narasimhan types of d",
		`  dtinv hn -c kronecker.yaml 2,2`, 1,
		func(c *stability.Condition, ds []lattice.Vector) ([]Entry, error) {
			var entries []Entry
			for _, d := range ds {
				types, err := c.HNTypes(d)
				if err != nil {
					return nil, computeError("hn", err)
				}
				for _, t := range types {
					ordered, err := t.Ordered(c.PhaseOf)
					if err != nil {
						return nil, computeError("hn", err)
					}
					key := ""
					for i, p := range ordered {
						if i > 0 {
							key += " > "
						}
						key += p.String()
					}
					entries = append(entries, Entry{Key: key, Value: "L^" + strconv.Itoa(t.Exponent)})
				}
			}

			return entries, nil
		})
}

// NewSemistablesCommand creates the semistables command.
func NewSemistablesCommand(rootOpts *RootOptions) *cobra.Command {
	return problemCommand(rootOpts, "semistables <d>...",
		"Print the motive of semistable representations",
		`  dtinv semistables -c kronecker.yaml 1,1 2,2`, 1,
		func(c *stability.Condition, ds []lattice.Vector) ([]Entry, error) {
			return evalEach(ds, "semistables", c.MotiveOfSemistables().At)
		})
}

// NewDTCommand creates the dt command.
func NewDTCommand(rootOpts *RootOptions) *cobra.Command {
	return problemCommand(rootOpts, "dt <d>...",
		"Print motivic Donaldson–Thomas invariants",
		`  dtinv dt -c kronecker.yaml 1,0 1,1 2,2`, 1,
		func(c *stability.Condition, ds []lattice.Vector) ([]Entry, error) {
			return evalEach(ds, "dt", c.DTInvariants().At)
		})
}

func evalEach(ds []lattice.Vector, command string, at func(lattice.Vector) (motive.Motive, error)) ([]Entry, error) {
	entries := make([]Entry, 0, len(ds))
	for _, d := range ds {
		v, err := at(d)
		if err != nil {
			return nil, computeError(command, err)
		}
		entries = append(entries, Entry{Key: d.String(), Value: v.String()})
	}

	return entries, nil
}
