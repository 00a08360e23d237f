package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"distpack/pkg/pack"
)

var listDirectory string

// listCmd previews the file selection without writing an archive.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the files that would be packaged",
	Long: `Apply the project's ignore rules and print the resulting file tree
without writing anything. Useful for checking an ignore file before
building the archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := pack.Select(listDirectory, rootLogger)
		if err != nil {
			return err
		}
		fmt.Print(pack.Tree(listDirectory, entries))
		fmt.Printf("\n%d files selected\n", len(entries))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listDirectory, "directory", "C", ".", "Project directory to inspect")

	RootCmd.AddCommand(listCmd)
}
