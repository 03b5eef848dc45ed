package bgg

import (
	"game-catalog/feature/bgg/models"
	"game-catalog/feature/external"

	"go.uber.org/zap"
)

// KeyColumn is the primary key column of the BoardGameGeek cache table.
const KeyColumn = "bgg_id"

// Route exposes the BoardGameGeek source at /external/bggdata.
func Route() external.Route[models.Game] {
	return external.Route[models.Game]{
		Source: Name,
		Path:   "/external/bggdata",
		Param:  "bggid",
		Key:    func(r *models.Game) int64 { return r.BGGID },
	}
}

// NewFeature creates the BoardGameGeek HTTP feature. store may be nil when no database is connected.
func NewFeature(resolver external.Resolver[models.Game], store external.Store[models.Game], logger *zap.Logger) *external.Feature[models.Game] {
	return external.NewFeature(Route(), resolver, store, logger)
}
