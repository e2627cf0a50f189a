package cli

import (
	"fmt"

	"github.com/peoplereg/people/internal/people"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <filename> <surname> <name> <zodiac> <birthday>",
	Short: "Add a person to the registry",
	Long: `Add a person to the registry file, creating it if needed.

The birthday is given as D.M.YYYY. After the record is appended the whole
registry is re-sorted by birthdate and written back.`,
	Args: cobra.ExactArgs(5),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	filename := args[0]

	p, err := people.NewPerson(args[1], args[2], args[3], args[4])
	if err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	records, err := people.AddToFile(filename, p)
	if err != nil {
		return fmt.Errorf("adding to %s: %w", filename, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s) to %s; %d record(s) total.\n",
		p.Surname, p.Name, p.Birthday, filename, len(records))
	return nil
}
