package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"game-catalog/core/config"
	"game-catalog/core/loader"
	"game-catalog/core/logger"
	"game-catalog/core/middleware/auth"
	"game-catalog/core/middleware/rayid"
	"game-catalog/feature/bgg"
	"game-catalog/feature/csi"
	"game-catalog/feature/integrity"
	"game-catalog/feature/mm"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "game-catalog/docs/swagger"
)

// @title Game Catalog API
// @version 1.0
// @description API for resolving and curating board game catalog data.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		db := connectOptional(cfg.Database, logg)

		// 4. Initialize Storage
		archive, err := openArchive(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if cfg.Sources.Archive {
			if err := archive.Ensure(cmd.Context()); err != nil {
				logg.Warn("Archive bucket unavailable", zap.Error(err))
			}
		}

		// 5. Wire Pipelines
		cat := openCatalog(cfg, db, archive, logg, catalogOptions{})

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(bgg.NewFeature(cat.bgg, cat.bggStore, logg))
		mgr.Register(csi.NewFeature(cat.csi, cat.csiStore, logg))
		mgr.Register(mm.NewFeature(cat.mm, cat.mmStore, logg))
		mgr.Register(integrity.NewFeature(archive, sourceNames, db, cacheModels, logg))

		// RayID must be first to trace everything.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger is public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
