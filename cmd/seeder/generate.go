package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/export"
	"github.com/mmrzaf/seeder/internal/infra/repos/schemas"
	"github.com/mmrzaf/seeder/internal/validation"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	var (
		file     string
		count    int
		seed     int64
		formats  []string
		output   string
		table    string
		dialect  string
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "generate [schema id|name|path]",
		Short: "Generate records from a schema and export them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeFn, err := newSeeder(!toStdout)
			if err != nil {
				return err
			}
			defer closeFn()

			var schema *domain.Schema
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if schema, err = schemas.Parse(data, filepath.Ext(file)); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if schema.ID == "" {
					schema.ID = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
				}
				if schema.Name == "" {
					schema.Name = schema.ID
				}
			case len(args) == 1:
				if schema, err = s.LoadSchema(args[0]); err != nil {
					return err
				}
			default:
				return fmt.Errorf("a schema argument or --file is required")
			}

			if table == "" {
				table = schema.Table
			}
			if table == "" && needsTable(formats) {
				if table, err = defaultTable(schema.ID); err != nil {
					return err
				}
			}
			if output == "" {
				output = schema.ID
			}
			for _, f := range formats {
				if !validation.IsValidFormat(f) {
					return fmt.Errorf("unsupported format: %s", f)
				}
				if toStdout && f == domain.FormatSQLite {
					return fmt.Errorf("sqlite output cannot be written to stdout")
				}
			}

			var countOverride *int
			if cmd.Flags().Changed("count") {
				countOverride = &count
			}
			var seedOverride *int64
			if cmd.Flags().Changed("seed") {
				seedOverride = &seed
			}

			res, err := s.SeedSchema(schema, countOverride, seedOverride)
			if err != nil {
				return err
			}

			if toStdout {
				return writeStdout(res.Records, formats, table, dialect)
			}

			fmt.Fprintf(os.Stderr, "%s %s records from '%s' in %s (seed %d)\n",
				color.GreenString("generated"),
				humanize.Comma(int64(len(res.Records))),
				schema.Name,
				res.Duration.Round(time.Microsecond),
				res.Seed,
			)
			if len(res.Records) == 0 {
				fmt.Fprintln(os.Stderr, color.YellowString("nothing to export"))
				return nil
			}
			for _, f := range formats {
				path, err := s.Export(f, output, table, dialect)
				if err != nil {
					return fmt.Errorf("%s export: %w", f, err)
				}
				size := ""
				if info, err := os.Stat(path); err == nil {
					size = humanize.Bytes(uint64(info.Size()))
				}
				fmt.Fprintf(os.Stderr, "  %s %s (%s)\n", color.CyanString("%-6s", f), path, size)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file path outside the schemas directory")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of records (overrides the schema)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG (overrides the schema)")
	cmd.Flags().StringSliceVar(&formats, "format", []string{domain.FormatJSON}, "Export formats (json,csv,sql,sqlite)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Export file name without extension (defaults to the schema id)")
	cmd.Flags().StringVar(&table, "table", "", "Table name for sql and sqlite exports")
	cmd.Flags().StringVar(&dialect, "dialect", domain.DialectNaive, "SQL dialect (naive|postgres)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write to stdout instead of the export directory")
	return cmd
}

func needsTable(formats []string) bool {
	for _, f := range formats {
		if f == domain.FormatSQL || f == domain.FormatSQLite {
			return true
		}
	}
	return false
}

// defaultTable turns a schema id such as "my-schema" or "2024.orders" into a
// usable table name.
func defaultTable(id string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(id) {
		if r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	table := b.String()
	if table != "" && unicode.IsDigit(rune(table[0])) {
		table = "t_" + table
	}
	if !validation.IsValidIdentifier(table) {
		return "", fmt.Errorf("cannot derive a table name from schema id %q; pass --table", id)
	}
	return table, nil
}

func writeStdout(rs domain.RecordSet, formats []string, table, dialect string) error {
	for _, f := range formats {
		var err error
		switch f {
		case domain.FormatJSON:
			err = export.WriteJSON(os.Stdout, rs)
		case domain.FormatCSV:
			err = export.WriteCSV(os.Stdout, rs)
		case domain.FormatSQL:
			err = export.WriteSQL(os.Stdout, rs, table, dialect)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
