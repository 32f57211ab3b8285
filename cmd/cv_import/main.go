// Package main provides the entry point for the CV import preview CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_import",
	Short: "CV import preview engine",
	Long:  "cv_import turns free-form CV/résumé text into a structured, reviewable import preview: profile fragment, achievements, work history and diagnostics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
