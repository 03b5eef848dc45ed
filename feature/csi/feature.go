package csi

import (
	"game-catalog/feature/csi/models"
	"game-catalog/feature/external"

	"go.uber.org/zap"
)

// KeyColumn is the primary key column of the CoolStuffInc cache table.
const KeyColumn = "csi_id"

// Route exposes the CoolStuffInc source at /external/csidata.
func Route() external.Route[models.Price] {
	return external.Route[models.Price]{
		Source: Name,
		Path:   "/external/csidata",
		Param:  "csiid",
		Key:    func(r *models.Price) int64 { return r.CSIID },
	}
}

// NewFeature creates the CoolStuffInc HTTP feature. store may be nil when no database is connected.
func NewFeature(resolver external.Resolver[models.Price], store external.Store[models.Price], logger *zap.Logger) *external.Feature[models.Price] {
	return external.NewFeature(Route(), resolver, store, logger)
}
