package integrity

import (
	"context"

	"game-catalog/core/storage"
	"game-catalog/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	archive *storage.Archive
	sources []string
	db      *gorm.DB
	models  []any
	logger  *zap.Logger
}

// NewService creates a new integrity service. archive and db may be nil; the checks
// that need them then report an error.
func NewService(archive *storage.Archive, sources []string, db *gorm.DB, models []any, logger *zap.Logger) *Service {
	return &Service{
		archive: archive,
		sources: sources,
		db:      db,
		models:  models,
		logger:  logger,
	}
}

// CheckSchema compares the cache tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.models...)
}

// CheckArchive inspects the raw document archive.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	return checks.CheckArchive(ctx, s.archive, s.sources)
}

// FixArchive creates the archive bucket.
func (s *Service) FixArchive(ctx context.Context) error {
	return checks.FixArchive(ctx, s.archive, s.logger)
}
