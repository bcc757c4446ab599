package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/david4096/sparql-agent-sub003/config"
	"github.com/david4096/sparql-agent-sub003/loader"
	"github.com/david4096/sparql-agent-sub003/record"
	"github.com/david4096/sparql-agent-sub003/shex"
	"github.com/david4096/sparql-agent-sub003/validation"
)

func validateCmd() *cobra.Command {
	overrides := &config.Config{}

	cmd := &cobra.Command{
		Use:   "validate [flags] RECORD_FILE...",
		Short: "Validate record files against a shape",
		Long: `Validate loads YAML/JSON record files (doublestar globs supported),
validates every record against the selected shape, and prints one
report per record. The exit code is 1 when any record is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(overrides)
			if err != nil {
				return err
			}

			schema, shapeID, err := loadSchema(cfg)
			if err != nil {
				return err
			}

			records, err := loadRecords(args)
			if err != nil {
				return err
			}

			validator := validation.New(schema, validation.WithWorkers(cfg.Validation.Workers))
			reports, err := validator.ValidateBatch(records, shapeID)
			if err != nil {
				return err
			}

			invalid := 0
			for _, report := range reports {
				if !report.IsValid() {
					invalid++
				}
				if err := printReport(report, cfg.Validation.Format); err != nil {
					return err
				}
			}

			slog.Debug("validation complete",
				"records", len(reports), "invalid", invalid, "shape", shapeID)
			if invalid > 0 {
				// Reports already describe the failures; just set the exit code.
				cmd.SilenceErrors = true
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overrides.Schema.Path, "schema", "s", "", "schema file path")
	cmd.Flags().StringVar(&overrides.Schema.Shape, "shape", "", "shape identifier, e.g. '<PersonShape>'")
	cmd.Flags().IntVar(&overrides.Validation.Workers, "workers", 0, "batch validation workers")
	cmd.Flags().StringVar(&overrides.Validation.Format, "format", "", "report format: text or json")
	return cmd
}

// loadSchema parses the configured schema and picks the target shape:
// the configured one, or the schema's first shape when unset.
func loadSchema(cfg *config.Config) (*shex.Schema, string, error) {
	if cfg.Schema.Path == "" {
		return nil, "", fmt.Errorf("no schema file configured (use --schema or shexval.yaml)")
	}
	schema, err := loader.FromFile(cfg.Schema.Path)
	if err != nil {
		return nil, "", err
	}

	shapeID := cfg.Schema.Shape
	if shapeID == "" {
		ids := schema.ShapeIDs()
		if len(ids) == 0 {
			return nil, "", fmt.Errorf("schema %s declares no shapes", cfg.Schema.Path)
		}
		shapeID = ids[0]
		slog.Debug("no shape configured, using first declared shape", "shape", shapeID)
	}
	return schema, shapeID, nil
}

func loadRecords(patterns []string) ([]*record.Record, error) {
	files, err := loader.ExpandGlobs(patterns)
	if err != nil {
		return nil, err
	}
	var records []*record.Record
	for _, file := range files {
		recs, err := record.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

func printReport(report *validation.Report, format string) error {
	if format == "json" {
		data, err := report.ToJSON()
		if err != nil {
			return fmt.Errorf("serialize report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Print(report.Render())
	return nil
}
