package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-import/internal/config"
	"github.com/jonathan/cv-import/internal/extraction"
	"github.com/jonathan/cv-import/internal/ingestion"
	"github.com/jonathan/cv-import/internal/observability"
	"github.com/jonathan/cv-import/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a CV document into an import preview",
	Long:  "Parse a plain-text or HTML CV document and print the structured import preview as JSON. The preview is best-effort and reviewable; nothing is persisted.",
	RunE:  runParse,
}

var (
	parseInput   string
	parseOut     string
	parseHTML    bool
	parseVerbose bool
	parseConfig  string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInput, "input", "i", "", "Path to the CV text or HTML file")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Output directory for preview and metadata (default: stdout)")
	parseCmd.Flags().BoolVar(&parseHTML, "html", false, "Treat the input file as HTML")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed extraction summaries")
	parseCmd.Flags().StringVar(&parseConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Input:   parseInput,
		Out:     parseOut,
		HTML:    parseHTML,
		Verbose: parseVerbose,
	}
	if parseConfig != "" {
		fileCfg, err := config.LoadConfig(parseConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		text     string
		metadata *ingestion.Metadata
		err      error
	)
	if cfg.HTML {
		text, metadata, err = ingestion.IngestFromHTMLFile(cfg.Input)
	} else {
		text, metadata, err = ingestion.IngestFromFile(cfg.Input)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest CV: %w", err)
	}

	preview := extraction.ParsePreview(text)

	previewJSON, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preview: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.PreviewSchemaFile); schemaPath != "" {
		if err := schemas.ValidatePreview(schemaPath, previewJSON); err != nil {
			return fmt.Errorf("preview failed schema validation: %w", err)
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintPreview(preview)
	}

	if cfg.Out == "" {
		fmt.Fprintln(os.Stdout, string(previewJSON))
		return nil
	}

	if err := os.MkdirAll(cfg.Out, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	previewPath := filepath.Join(cfg.Out, "cv_import.preview.json")
	if err := os.WriteFile(previewPath, previewJSON, 0644); err != nil {
		return fmt.Errorf("failed to write preview file: %w", err)
	}
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(cfg.Out, "cv_import.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Preview:  %s\n", previewPath)
	fmt.Fprintf(os.Stdout, "Metadata: %s\n", metaPath)
	return nil
}
