package cmd

import (
	"encoding/json"
	"fmt"

	"unit-converter/core/metrics"
	"unit-converter/feature/conversion"
	"unit-converter/feature/conversion/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertCategory string
	convertJSON     bool
)

// convertCmd runs a single conversion without starting the server.
var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value between two units",
	Long: `Converts a value using the same validation and rounding as POST /convert.

Examples:
  unit-converter convert 1 mile kilometer --category length
  unit-converter convert 100 celsius fahrenheit --category temperature --json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := conversion.NewService(zap.NewNop(), metrics.New())

		res, err := svc.Convert(models.ConvertRequest{
			Value:    args[0],
			FromUnit: args[1],
			ToUnit:   args[2],
			Category: convertCategory,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if convertJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		_, err = fmt.Fprintf(out, "%g %s = %g %s\n", res.FromValue, res.FromUnit, res.Result, res.ToUnit)
		return err
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "Measurement category (length, weight, volume, temperature, area)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Print the result as JSON")
	_ = convertCmd.MarkFlagRequired("category")

	RootCmd.AddCommand(convertCmd)
}
