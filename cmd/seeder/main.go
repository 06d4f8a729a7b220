package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mmrzaf/seeder/internal/app"
	"github.com/mmrzaf/seeder/internal/config"
	"github.com/mmrzaf/seeder/internal/export"
	"github.com/mmrzaf/seeder/internal/hashing"
	"github.com/mmrzaf/seeder/internal/infra/repos/runs"
	"github.com/mmrzaf/seeder/internal/infra/repos/schemas"
	"github.com/mmrzaf/seeder/internal/logging"
	"github.com/mmrzaf/seeder/internal/registry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfg        *config.Config
	schemasDir string
	exportDir  string
	historyDB  string
	logLevel   string
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("config: %v", err))
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Synthetic record generator",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&schemasDir, "schemas-dir", cfg.SchemasDir, "Schemas directory")
	rootCmd.PersistentFlags().StringVar(&exportDir, "export-dir", cfg.ExportDir, "Export directory")
	rootCmd.PersistentFlags().StringVar(&historyDB, "history-db", cfg.HistoryDB, "Run history database (SQLite path or postgres:// URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(typesCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(runsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSeeder wires a Seeder from the global flags. The returned func
// releases the history database and flushes the logger.
func newSeeder(withExports bool) (*app.Seeder, func(), error) {
	logger := logging.NewLoggerWithWriter(logLevel, os.Stderr)
	var files *export.Files
	if withExports {
		var err error
		if files, err = export.NewFiles(exportDir); err != nil {
			return nil, nil, err
		}
	}
	s := app.NewSeeder(registry.DefaultGeneratorRegistry(), schemas.NewFileRepository(schemasDir), files, logger, cfg.DefaultCount)

	closeFn := func() { _ = logger.Sync() }
	if historyDB != "" {
		repo, err := runs.Open(historyDB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open history: %w", err)
		}
		s.SetHistory(repo)
		closeFn = func() {
			_ = repo.Close()
			_ = logger.Sync()
		}
	}
	return s, closeFn, nil
}

func typesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List field types",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.DefaultGeneratorRegistry()
			names := reg.List()

			if format == "json" {
				out := make([]map[string]string, 0, len(names))
				for _, n := range names {
					entry := map[string]string{"name": n}
					if target, ok := reg.AliasOf(n); ok {
						entry["alias_of"] = target
					}
					out = append(out, entry)
				}
				data, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tALIAS OF")
			for _, n := range names {
				target, _ := reg.AliasOf(n)
				fmt.Fprintf(w, "%s\t%s\n", n, target)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	return cmd
}

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage schemas",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := schemas.NewFileRepository(schemasDir).List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTABLE\tFIELDS\tCOUNT")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", s.ID, s.Name, s.Table, len(s.Fields), s.Count)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id|path>",
		Short: "Show schema details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := newSeeder(false)
			if err != nil {
				return err
			}
			defer closeFn()

			schema, err := s.LoadSchema(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(schema)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := newSeeder(false)
			if err != nil {
				return err
			}
			defer closeFn()

			schema, err := s.LoadSchema(args[0])
			if err != nil {
				return err
			}
			if err := s.Validator().ValidateSchema(schema); err != nil {
				fmt.Println(color.RedString("Validation failed: %v", err))
				return err
			}
			fingerprint, err := hashing.HashSchema(schema)
			if err != nil {
				return err
			}
			fmt.Printf("%s (fingerprint %s)\n", color.GreenString("Schema '%s' is valid", schema.Name), fingerprint[:12])
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect run history",
	}

	var (
		limit  int
		status string
		format string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := newSeeder(false)
			if err != nil {
				return err
			}
			defer closeFn()

			list, err := s.Runs(limit, status)
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCHEMA\tORIGIN\tCOUNT\tSEED\tSTATUS\tSTARTED")
			for _, r := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
					r.ID[:8], r.SchemaName, r.Origin, r.Count, r.Seed, statusColor(r.Status), r.StartedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Limit results")
	listCmd.Flags().StringVar(&status, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <run_id>",
		Short: "Show run details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if historyDB == "" {
				return app.ErrHistoryDisabled
			}
			repo, err := runs.Open(historyDB)
			if err != nil {
				return err
			}
			defer repo.Close()

			run, err := repo.Get(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(run)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}
