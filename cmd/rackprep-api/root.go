package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "rackprep-api",
	Short: "Server racking time estimation API",
}

func init() {
	rootCmd.AddCommand(runCmd)
}
