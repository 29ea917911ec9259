package main

import (
	"github.com/spf13/cobra"
)

// version is set via -ldflags "-X main.version=..." at release build time;
// it stays "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the xesthora version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
