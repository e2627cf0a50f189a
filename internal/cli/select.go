package cli

import (
	"github.com/peoplereg/people/internal/people"
	"github.com/peoplereg/people/internal/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var selectFormat string

var selectCmd = &cobra.Command{
	Use:   "select <filename> <surname>",
	Short: "Show the people with a given surname",
	Long: `Show the people whose surname matches exactly (case-sensitive), in
registry order.`,
	Args: cobra.ExactArgs(2),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&selectFormat, "format", "", "Output format (table, json, yaml)")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(selectFormat)
	if err != nil {
		return err
	}

	records, err := people.Load(args[0])
	if err != nil {
		return err
	}

	matches := people.SelectBySurname(records, args[1])
	log.WithFields(log.Fields{"surname": args[1], "matches": len(matches)}).Debug("selected records")
	return render.Write(cmd.OutOrStdout(), matches, opts)
}
