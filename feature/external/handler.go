package external

import (
	"game-catalog/core/errs"
	"game-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SyncStatusHeader carries the write-back status of a sync=y request.
const SyncStatusHeader = "X-Sync-Status"

// Handler handles HTTP requests for one source.
type Handler[T any] struct {
	service *Service[T]
}

// NewHandler creates a new HTTP handler.
func NewHandler[T any](service *Service[T]) *Handler[T] {
	return &Handler[T]{service: service}
}

// RegisterRoutes registers the source routes.
func (h *Handler[T]) RegisterRoutes(app fiber.Router) {
	path := h.service.route.Path
	app.Get(path, h.HandleGet)
	app.Put(path, h.HandlePut)
	app.Post(path, h.HandlePost)
	app.Delete(path, h.HandleDelete)
}

// HandleGet resolves one record or a batch.
// @Summary Get Catalog Data
// @Description Resolve catalog data from the remote source, the cache (db) or both (hybrid). Batches are supported by bgg only.
// @Tags external
// @Produce json
// @Param source query string false "Source mode: the source name, db or hybrid"
// @Param batch query int false "Number of consecutive identifiers (bgg only, at most sources.max_batch)"
// @Param sync query string false "Write merged records back in hybrid mode (y|n)"
// @Success 200 {object} map[string]interface{} "Record, or batch result"
// @Header 200 {string} X-Sync-Status "written, unchanged or failed when sync=y"
// @Failure 400 {object} ErrorResponse "Invalid Parameters"
// @Failure 404 {object} ErrorResponse "Game Not Found"
// @Failure 502 {object} ErrorResponse "Source Error"
// @Failure 503 {object} ErrorResponse "Server Timeout 503"
// @Failure 504 {object} ErrorResponse "Transport Error"
// @Router /external/{source}data [get]
func (h *Handler[T]) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	q := Query{
		ID:     c.Query(h.service.route.Param),
		Source: c.Query("source"),
		Batch:  c.Query("batch"),
		Sync:   c.Query("sync"),
	}

	res, req, err := h.service.Resolve(c.Context(), q)
	if err != nil {
		l.Warn("Catalog request failed", zap.String("kind", string(errs.KindOf(err))), zap.Error(err))
		return respondError(c, err)
	}

	if res.Sync != nil {
		c.Set(SyncStatusHeader, res.Sync.Status())
		if len(res.Sync.Failed) > 0 {
			l.Warn("Records served but not synced",
				zap.Int("failed", len(res.Sync.Failed)),
				zap.String("reason", res.Sync.Failed[0].Detail))
		}
	}
	if req.Batch == 1 {
		return c.JSON(res.First())
	}
	return c.JSON(res)
}

// HandlePut upserts a record in the cache.
// @Summary Upsert Catalog Data
// @Tags external
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid Parameters"
// @Failure 500 {object} ErrorResponse "Database Operation Error"
// @Router /external/{source}data [put]
func (h *Handler[T]) HandlePut(c *fiber.Ctx) error {
	rec, err := h.body(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Put(c.Context(), c.Query(h.service.route.Param), rec); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Cache upsert failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Operation Successful", Detail: "The Put Request Completed Successfully"})
}

// HandlePost inserts a record into the cache.
// @Summary Insert Catalog Data
// @Tags external
// @Accept json
// @Produce json
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid Parameters"
// @Failure 500 {object} ErrorResponse "Database Operation Error"
// @Router /external/{source}data [post]
func (h *Handler[T]) HandlePost(c *fiber.Ctx) error {
	rec, err := h.body(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Post(c.Context(), rec); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Cache insert failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: "Operation Successful", Detail: "The Post Request Completed Successfully"})
}

// HandleDelete removes a record from the cache.
// @Summary Delete Catalog Data
// @Tags external
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid Parameters"
// @Failure 404 {object} ErrorResponse "Game Not Found"
// @Router /external/{source}data [delete]
func (h *Handler[T]) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Query(h.service.route.Param)); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Cache delete failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Operation Successful", Detail: "The Delete Request Completed Successfully"})
}

func (h *Handler[T]) body(c *fiber.Ctx) (*T, error) {
	if len(c.Body()) == 0 {
		return nil, errs.New(errs.InvalidParameters, "There was no valid %s data provided.", h.service.route.Source)
	}
	rec := new(T)
	if err := c.BodyParser(rec); err != nil {
		return nil, errs.Wrap(errs.InvalidParameters, err, "The %s data could not be decoded.", h.service.route.Source)
	}
	return rec, nil
}
