package cmd

import (
	"game-catalog/core/config"
	"game-catalog/core/database"
	"game-catalog/core/pipeline"
	"game-catalog/core/storage"
	"game-catalog/feature/bgg"
	bggmodels "game-catalog/feature/bgg/models"
	"game-catalog/feature/csi"
	csimodels "game-catalog/feature/csi/models"
	"game-catalog/feature/external"
	"game-catalog/feature/mm"
	mmmodels "game-catalog/feature/mm/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sourceNames lists every catalog source, in archive check order.
var sourceNames = []string{bgg.Name, csi.Name, mm.Name}

// cacheModels lists the models backing the cache tables.
var cacheModels = []any{&bggmodels.Game{}, &csimodels.Price{}, &mmmodels.Price{}}

// archiveFormats maps a source to the file extension of its raw documents.
var archiveFormats = map[string]string{bgg.Name: "xml", csi.Name: "html", mm.Name: "html"}

// catalog holds the wired pipelines of every source.
type catalog struct {
	db      *gorm.DB
	archive *storage.Archive

	bgg *pipeline.Pipeline[bggmodels.Game]
	csi *pipeline.Pipeline[csimodels.Price]
	mm  *pipeline.Pipeline[mmmodels.Price]

	bggStore external.Store[bggmodels.Game]
	csiStore external.Store[csimodels.Price]
	mmStore  external.Store[mmmodels.Price]
}

// catalogOptions tunes how the pipelines are wired.
type catalogOptions struct {
	// replay serves archived documents instead of calling the sources.
	replay bool
}

// openCatalog wires the pipelines. db may be nil; archive is only used when
// archiving or replay is enabled.
func openCatalog(cfg *config.Config, db *gorm.DB, archive *storage.Archive, logg *zap.Logger, o catalogOptions) *catalog {
	opts := []pipeline.Option{pipeline.WithMaxBatch(cfg.Sources.MaxBatch)}
	if cfg.Sources.Archive && archive != nil && !o.replay {
		opts = append(opts, pipeline.WithArchiver(archive))
	}

	bggSource := bgg.NewSource(cfg.Sources, nil)
	csiSource := csi.NewSource(cfg.Sources, nil)
	mmSource := mm.NewSource(cfg.Sources, nil)
	if o.replay && archive != nil {
		bggSource.Fetcher = archive.Replay(bgg.Name, true)
		csiSource.Fetcher = archive.Replay(csi.Name, false)
		mmSource.Fetcher = archive.Replay(mm.Name, false)
	}

	c := &catalog{db: db, archive: archive}

	var bggRepo pipeline.Repository[bggmodels.Game]
	bggRepo, c.bggStore = stores[bggmodels.Game](db, bgg.KeyColumn)
	c.bgg = pipeline.New(bggSource, bggRepo, logg, opts...)

	var csiRepo pipeline.Repository[csimodels.Price]
	csiRepo, c.csiStore = stores[csimodels.Price](db, csi.KeyColumn)
	c.csi = pipeline.New(csiSource, csiRepo, logg, opts...)

	var mmRepo pipeline.Repository[mmmodels.Price]
	mmRepo, c.mmStore = stores[mmmodels.Price](db, mm.KeyColumn)
	c.mm = pipeline.New(mmSource, mmRepo, logg, opts...)

	return c
}

// stores returns the cache repository behind both interfaces, or untyped nils when
// no database is connected.
func stores[T any](db *gorm.DB, key string) (pipeline.Repository[T], external.Store[T]) {
	if db == nil {
		return nil, nil
	}
	repo := database.NewRepository[T](db, key)
	return repo, repo
}

// connectOptional connects to the cache database, logging instead of failing.
func connectOptional(cfg database.Config, logg *zap.Logger) *gorm.DB {
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	logg.Info("Connected to cache database", zap.String("driver", cfg.Driver))
	return db
}

// openArchive creates the raw document archive.
func openArchive(cfg storage.Config) (*storage.Archive, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return storage.NewArchive(client, cfg.Bucket, archiveFormats), nil
}
