package cmd

import (
	"context"
	"fmt"
	"os"

	"game-catalog/core/config"
	"game-catalog/core/logger"
	"game-catalog/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the cache and the raw archive",
	Long:  `Checks that the cache tables match their models and that the raw document archive is reachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the cache table schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false)
	},
}

// archiveCmd represents the integrity archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check and fix the raw document archive",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, archiveCmd)
	archiveCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the archive bucket when missing")
}

func runIntegrityChecks(ctx context.Context, runSchema, runArchive bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	archive, err := openArchive(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}
	db := connectOptional(cfg.Database, logg)

	svc := integrity.NewService(archive, sourceNames, db, cacheModels, logg)

	if runSchema {
		logg.Info("Checking cache schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Fatal("Schema check failed", zap.Error(err))
		}
		for table, tbl := range report.Tables {
			logg.Info("Cache table",
				zap.String("table", table),
				zap.String("status", tbl.Status),
				zap.Int64("rows", tbl.Rows),
				zap.Strings("missing_columns", tbl.MissingColumns),
				zap.Strings("type_mismatches", tbl.TypeMismatches))
		}
		if report.Matched {
			logg.Info("Cache schema is intact.")
		} else {
			logg.Warn("Cache schema drift detected", zap.Strings("errors", report.Errors))
			logg.Info("Run migrate to update the cache tables.")
		}
	}

	if runArchive {
		logg.Info("Checking raw archive...")
		report, err := svc.CheckArchive(ctx)
		if err != nil {
			logg.Fatal("Archive check failed", zap.Error(err))
		}

		if report.Exists {
			for _, source := range sourceNames {
				logg.Info("Archived documents", zap.String("source", source), zap.Int("documents", report.Documents[source]))
			}
		} else {
			logg.Warn("Archive bucket is missing", zap.String("bucket", report.Bucket))
			if !runSchema && fixFlag {
				logg.Info("Creating archive bucket...")
				if err := svc.FixArchive(ctx); err != nil {
					logg.Fatal("Failed to create archive bucket", zap.Error(err))
				}
			} else if !runSchema {
				logg.Info("Run with --fix to create the bucket.")
			}
		}
	}
}
