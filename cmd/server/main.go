// Package main is the entry point for the dungeon layout server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dungeon-api",
	Short: "Dungeon layout generation service",
	Long:  `dungeon-api generates procedural rectangular dungeon layouts and serves them over HTTP, with a websocket stream of generation checkpoints.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
}
