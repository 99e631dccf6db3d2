package cmd

import (
	"fmt"
	"io"

	"unit-converter/core/units"

	"github.com/spf13/cobra"
)

// unitsCmd prints the unit catalog.
var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List supported units",
	Long:  `Lists the supported units of every category, or of a single category when one is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := units.Categories()
		if len(args) == 1 {
			c, err := units.ParseCategory(args[0])
			if err != nil {
				return err
			}
			categories = []units.Category{c}
		}

		out := cmd.OutOrStdout()
		for _, c := range categories {
			if err := printUnits(out, c); err != nil {
				return err
			}
		}
		return nil
	},
}

func printUnits(out io.Writer, c units.Category) error {
	list, err := units.UnitsOf(c)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%s:\n", c); err != nil {
		return err
	}
	for _, u := range list {
		if _, err := fmt.Fprintf(out, "  %-18s %s\n", u.ID, u.Label); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(unitsCmd)
}
