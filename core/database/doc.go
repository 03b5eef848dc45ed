// Package database handles the catalog cache connection, record storage and schema inspection.
//
// It wraps GORM (Go Object Relational Mapping) to configure MySQL or SQLite connections
// from the application's configuration.
//
// # Connect
//
// Connect opens the database selected by Config.Driver. MySQL is the production
// store; SQLite serves local runs and tests.
//
// # Repository
//
// Repository[T] is the generic cache store used by the resolve pipeline. Records are
// keyed by their source identifier and written with an upsert, so a write after a
// hybrid merge replaces every column of the previous row.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table, which the integrity check compares
// against the columns each cache model expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	repo := database.NewRepository[models.Game](db, "bgg_id")
//	game, err := repo.ReadByID(ctx, 224517)
package database
