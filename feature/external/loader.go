package external

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for one source.
type Feature[T any] struct {
	service *Service[T]
	handler *Handler[T]
}

// NewFeature creates the feature for route. store may be nil when no database is connected.
func NewFeature[T any](route Route[T], resolver Resolver[T], store Store[T], logger *zap.Logger) *Feature[T] {
	svc := NewService(route, resolver, store, logger)
	return &Feature[T]{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature[T]) Name() string {
	return f.service.route.Source
}

// IsEnabled checks if the feature is enabled.
func (f *Feature[T]) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature[T]) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
