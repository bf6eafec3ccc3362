package cmd

import (
	feedtui "minired-cli/feed_tui"
	"minired-cli/term"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `minired [command] [flags]`,
	Short: "Mini Red Social: posts y comentarios desde la terminal",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) {
	err := feedtui.StartFeedUI()

	if err != nil {
		term.OutputErrorAndExit("Error starting UI: %v", err)
	}
}
