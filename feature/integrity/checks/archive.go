package checks

import (
	"context"
	"fmt"

	"game-catalog/core/storage"

	"go.uber.org/zap"
)

// ArchiveReport is the result of a raw document archive check.
type ArchiveReport struct {
	Bucket    string         `json:"bucket"`
	Exists    bool           `json:"exists"`
	Documents map[string]int `json:"documents"`
}

// CheckArchive verifies the archive bucket and counts the documents of each source.
func CheckArchive(ctx context.Context, archive *storage.Archive, sources []string) (*ArchiveReport, error) {
	if archive == nil {
		return nil, fmt.Errorf("archive is not configured")
	}

	exists, err := archive.Exists(ctx)
	if err != nil {
		return nil, err
	}
	report := &ArchiveReport{
		Bucket:    archive.Bucket(),
		Exists:    exists,
		Documents: make(map[string]int, len(sources)),
	}
	if !exists {
		return report, nil
	}

	for _, source := range sources {
		n, err := archive.Count(ctx, source)
		if err != nil {
			return nil, err
		}
		report.Documents[source] = n
	}
	return report, nil
}

// FixArchive creates the archive bucket when it is missing.
func FixArchive(ctx context.Context, archive *storage.Archive, logger *zap.Logger) error {
	if archive == nil {
		return fmt.Errorf("archive is not configured")
	}
	if err := archive.Ensure(ctx); err != nil {
		logger.Error("Failed to create archive bucket", zap.String("bucket", archive.Bucket()), zap.Error(err))
		return err
	}
	logger.Info("Archive bucket ready", zap.String("bucket", archive.Bucket()))
	return nil
}
