package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"distpack/pkg/logging"
	"distpack/pkg/version"
)

var debugMode bool

var rootLogger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "distpack",
	Short: "distpack packages a project directory for distribution",
	Long: `distpack selects the files of a project directory according to ignore
rules (.packignore, .distignore or .gitignore) and packages them into a
single compressed ZIP archive.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugMode {
			if err := logging.Setup(true, "distpack", version.Version); err != nil {
				return err
			}
			rootLogger = logging.Logger
		}
		return nil
	},
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	if logger != nil {
		rootLogger = logger
	}
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}
