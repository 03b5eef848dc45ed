package mm

import (
	"game-catalog/feature/mm/models"
	"game-catalog/feature/external"

	"go.uber.org/zap"
)

// KeyColumn is the primary key column of the MiniatureMarket cache table.
const KeyColumn = "mm_id"

// Route exposes the MiniatureMarket source at /external/mmdata.
func Route() external.Route[models.Price] {
	return external.Route[models.Price]{
		Source: Name,
		Path:   "/external/mmdata",
		Param:  "mmid",
		Key:    func(r *models.Price) int64 { return r.MMID },
	}
}

// NewFeature creates the MiniatureMarket HTTP feature. store may be nil when no database is connected.
func NewFeature(resolver external.Resolver[models.Price], store external.Store[models.Price], logger *zap.Logger) *external.Feature[models.Price] {
	return external.NewFeature(Route(), resolver, store, logger)
}
