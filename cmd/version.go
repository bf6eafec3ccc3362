package cmd

import (
	"fmt"

	"minired-cli/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of minired",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("minired CLI Version:", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
