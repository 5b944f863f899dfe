// Command listfiles writes the names of the regular files in the working
// directory to filesinfolder.txt, one per line.
package main

import (
	"log"
	"os"

	"github.com/listfiles/listfiles"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "listfiles",
	Short: "List the regular files in the working directory",
	Long: `listfiles writes the name of every regular file in the working directory
to ` + listfiles.DefaultOutputName + `, one per line. Subdirectories are skipped.
The output file is overwritten on each run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listfiles.Run(listfiles.DefaultConfig())
	},
}

func run() int {
	logger := log.New(os.Stderr, "listfiles: ", 0)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
