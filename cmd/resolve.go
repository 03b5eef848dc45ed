package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"game-catalog/core/config"
	"game-catalog/core/logger"
	"game-catalog/core/pipeline"
	"game-catalog/core/storage"
	"game-catalog/feature/bgg"
	"game-catalog/feature/csi"
	"game-catalog/feature/mm"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	resolveMode   string
	resolveBatch  int
	resolveSync   bool
	resolveReplay bool
)

// resolveCmd runs one request through a source pipeline and prints the result.
var resolveCmd = &cobra.Command{
	Use:   "resolve <bgg|csi|mm> <id>",
	Short: "Resolve catalog data for one identifier or a batch",
	Long: `Resolve catalog data from the remote source, the cache or both and print the result as JSON.

Examples:
  # Fetch one game from BoardGameGeek
  resolve bgg 224517

  # Fetch ten consecutive games in one request
  resolve bgg 224517 --batch 10

  # Merge the remote record into the cache
  resolve csi 91234 --mode hybrid --sync

  # Re-parse an archived document without calling the source
  resolve mm 4410 --replay`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveMode, "mode", string(pipeline.ModeRemote), "Resolution mode (remote, cache, hybrid)")
	resolveCmd.Flags().IntVar(&resolveBatch, "batch", 1, "Number of consecutive identifiers (bgg only)")
	resolveCmd.Flags().BoolVar(&resolveSync, "sync", false, "Write changed records back to the cache (hybrid only)")
	resolveCmd.Flags().BoolVar(&resolveReplay, "replay", false, "Serve archived documents instead of calling the source")

	RootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[1], err)
	}
	mode, err := pipeline.ParseMode(resolveMode)
	if err != nil {
		return err
	}
	req := pipeline.Request{ID: id, Mode: mode, Batch: resolveBatch, Sync: resolveSync}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	db := connectOptional(cfg.Database, logg)

	var archive *storage.Archive
	if cfg.Sources.Archive || resolveReplay {
		if archive, err = openArchive(cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	cat := openCatalog(cfg, db, archive, logg, catalogOptions{replay: resolveReplay})

	switch args[0] {
	case bgg.Name:
		return printResult(ctx, cat.bgg, req, logg)
	case csi.Name:
		return printResult(ctx, cat.csi, req, logg)
	case mm.Name:
		return printResult(ctx, cat.mm, req, logg)
	default:
		return fmt.Errorf("unknown source %q, expected one of %v", args[0], sourceNames)
	}
}

func printResult[T any](ctx context.Context, p *pipeline.Pipeline[T], req pipeline.Request, logg *zap.Logger) error {
	if req.Batch > 1 && !p.Batch() {
		return fmt.Errorf("source %s does not support batch requests", p.Name())
	}

	res, err := p.Resolve(ctx, req)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if _, err := fmt.Fprintln(os.Stdout, string(data)); err != nil {
		return err
	}

	logg.Debug("Resolve printed", zap.Int("records", len(res.Records)), zap.Int("failures", len(res.Failures)))
	return nil
}
