package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/david4096/sparql-agent-sub003/config"
	"github.com/david4096/sparql-agent-sub003/loader"
)

func inspectCmd() *cobra.Command {
	overrides := &config.Config{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the schema's prefix table and shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(overrides)
			if err != nil {
				return err
			}
			if cfg.Schema.Path == "" {
				return fmt.Errorf("no schema file configured (use --schema or shexval.yaml)")
			}

			schema, err := loader.FromFile(cfg.Schema.Path)
			if err != nil {
				return err
			}

			info := schema.Info()

			fmt.Println("Prefixes:")
			labels := make([]string, 0, len(info.Prefixes))
			for label := range info.Prefixes {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Printf("  %s: <%s>\n", label, info.Prefixes[label])
			}

			fmt.Println("Shapes:")
			for _, sh := range info.Shapes {
				closed := ""
				if sh.Closed {
					closed = " CLOSED"
				}
				fmt.Printf("  %s  %d constraint(s)%s\n", sh.ID, sh.ConstraintCount, closed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overrides.Schema.Path, "schema", "s", "", "schema file path")
	return cmd
}
