package cli

import (
	"github.com/peoplereg/people/internal/people"
	"github.com/peoplereg/people/internal/render"
	"github.com/spf13/cobra"
)

var displayFormat string

var displayCmd = &cobra.Command{
	Use:   "display <filename>",
	Short: "Show every person in the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisplay,
}

func init() {
	displayCmd.Flags().StringVar(&displayFormat, "format", "", "Output format (table, json, yaml)")
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(displayFormat)
	if err != nil {
		return err
	}

	records, err := people.Load(args[0])
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), records, opts)
}
