package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"autobot_site_go/config"
	"autobot_site_go/db"
	"autobot_site_go/models"
	"autobot_site_go/services"

	"github.com/spf13/cobra"
)

var (
	since  string
	out    string
	upload bool
)

var rootCmd = &cobra.Command{
	Use:   "export-leads",
	Short: "Export contact form leads to a spreadsheet",
	Long: `Writes every lead (or those created since a date) to an .xlsx workbook.
With --upload the workbook is also stored in R2, or in the local export
directory when R2 is not configured.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		from, err := parseSince(since, cfg.Timezone)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		leads, err := services.ListLeads(ctx, db.DB, from)
		if err != nil {
			return err
		}

		buf, err := services.ExportLeadsXLSX(leads)
		if err != nil {
			return err
		}
		data := buf.Bytes()

		if out != "" {
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Printf("Wrote %d leads to %s\n", len(leads), out)
		}

		if upload {
			services.InitializeStorage(cfg)
			key := services.GenerateExportKey("leads", time.Now(), ".xlsx")
			result, err := services.Storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)))
			if err != nil {
				return fmt.Errorf("failed to upload export: %w", err)
			}
			fmt.Printf("Uploaded %d leads to %s\n", len(leads), result.Key)
		}

		if out == "" && !upload {
			fmt.Printf("Found %d leads; pass --out or --upload to save them\n", len(leads))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import leads from a workbook's Leads sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		if _, err := openDatabase(); err != nil {
			return err
		}
		defer db.Close()

		result, err := services.ImportLeadsXLSX(cmd.Context(), services.NewGormLeadStore(db.DB), file)
		if err != nil {
			return err
		}

		fmt.Printf("Processed %d rows: %d imported, %d failed\n", result.TotalProcessed, result.SuccessCount, result.FailedCount)
		for _, msg := range result.Errors {
			fmt.Printf("  %s\n", msg)
		}
		if result.FailedCount > 0 {
			return fmt.Errorf("%d rows failed to import", result.FailedCount)
		}
		return nil
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <key>",
	Short: "Download a stored export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services.InitializeStorage(config.Load())

		reader, err := services.Storage.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		path := out
		if path == "" {
			path = filepath.Base(args[0])
		}
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer file.Close()

		written, err := io.Copy(file, reader)
		if err != nil {
			return fmt.Errorf("failed to download %s: %w", args[0], err)
		}
		fmt.Printf("Downloaded %s (%d bytes) to %s\n", args[0], written, path)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a stored export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services.InitializeStorage(config.Load())

		if err := services.Storage.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&since, "since", "", "only export leads created on or after this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVarP(&out, "out", "o", "", "write the workbook to this path")
	rootCmd.Flags().BoolVar(&upload, "upload", false, "store the workbook in R2 or the local export directory")
	rootCmd.AddCommand(importCmd, fetchCmd, deleteCmd)
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func openDatabase() (*config.Config, error) {
	cfg := config.Load()
	if err := db.Initialize(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Printf("[INFO] Connected to database")
	return cfg, nil
}

// parseSince reads --since in the site timezone. Empty means all leads.
func parseSince(value, timezone string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	t, err := services.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since: %w", err)
	}
	return t, nil
}
