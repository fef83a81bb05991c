// Package main is the entry point for the pixself-api server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pixself-api",
	Short: "Pixself Studio API Server",
	Long:  `Pixself Studio API serves the character asset catalog, composite rendering, and the discount-aware checkout pipeline.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
