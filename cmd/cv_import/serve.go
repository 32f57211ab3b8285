package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-import/internal/schemas"
	"github.com/jonathan/cv-import/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the CV import preview endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:       servePort,
		SchemaPath: schemas.ResolveSchemaPath(schemas.PreviewSchemaFile),
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
