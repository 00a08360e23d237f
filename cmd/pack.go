package cmd

import (
	"github.com/spf13/cobra"

	"distpack/pkg/pack"
)

var packOpts struct {
	directory string
	output    string
	workers   int
	yes       bool
}

// packCmd builds the distribution archive for a project directory.
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build the distribution archive",
	Long: `Select the files of the project directory according to its ignore rules
and write them into a compressed ZIP archive, together with a sha256
checksum sidecar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := pack.Run(pack.Options{
			Root:       packOpts.directory,
			Output:     packOpts.output,
			MaxWorkers: packOpts.workers,
			AssumeYes:  packOpts.yes,
		}, rootLogger)
		return err
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOpts.directory, "directory", "C", ".", "Project directory to package")
	packCmd.Flags().StringVarP(&packOpts.output, "output", "o", "", "Archive path (defaults to <name>-<version>.zip next to the project root)")
	packCmd.Flags().IntVar(&packOpts.workers, "workers", 0, "Number of checksum workers (0 = number of CPUs)")
	packCmd.Flags().BoolVarP(&packOpts.yes, "yes", "y", false, "Overwrite an existing archive without asking")

	RootCmd.AddCommand(packCmd)
}
