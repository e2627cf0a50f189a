package cli

import (
	"fmt"
	"io"

	"github.com/peoplereg/people/internal/branding"
	"github.com/peoplereg/people/internal/config"
	"github.com/peoplereg/people/internal/logging"
	"github.com/peoplereg/people/internal/people"
	"github.com/peoplereg/people/internal/render"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagLang     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a small registry of people (surname, name, zodiac sign,
birthday) in a JSON file, sorted by birthdate.

Examples:
  ` + branding.CLIName() + ` add people.json Smith John Aries 1.5.1990
  ` + branding.CLIName() + ` display people.json
  ` + branding.CLIName() + ` select people.json Smith`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logging.Setup(cmd.ErrOrStderr(), logLevel())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Table language (en, ru); overrides the lang config key")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// printError writes err to w, one line per schema issue for registry
// validation failures.
func printError(w io.Writer, err error) {
	if ve, ok := people.AsValidationError(err); ok {
		fmt.Fprintf(w, "Error: %s does not match the registry schema:\n", ve.Path)
		for _, issue := range ve.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func logLevel() string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return config.LogLevel()
}

// renderOptions resolves the output format and language from flags, then
// config. Values outside what config set accepts are rejected.
func renderOptions(format string) (render.Options, error) {
	if format == "" {
		format = config.Format()
	}
	if err := config.Validate(config.KeyFormat, format); err != nil {
		return render.Options{}, err
	}

	lang := flagLang
	if lang == "" {
		lang = config.Lang()
	}
	if err := config.Validate(config.KeyLang, lang); err != nil {
		return render.Options{}, err
	}
	return render.Options{Format: format, Lang: lang}, nil
}
