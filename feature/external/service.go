package external

import (
	"context"

	"game-catalog/core/errs"
	"game-catalog/core/pipeline"

	"go.uber.org/zap"
)

// Service handles the requests of one source.
type Service[T any] struct {
	route    Route[T]
	resolver Resolver[T]
	store    Store[T]
	logger   *zap.Logger
}

// NewService creates a service. store may be nil when no database is connected.
func NewService[T any](route Route[T], resolver Resolver[T], store Store[T], logger *zap.Logger) *Service[T] {
	return &Service[T]{
		route:    route,
		resolver: resolver,
		store:    store,
		logger:   logger.With(zap.String("source", route.Source)),
	}
}

// Resolve validates the query and runs it through the pipeline.
func (s *Service[T]) Resolve(ctx context.Context, q Query) (*pipeline.Result[T], pipeline.Request, error) {
	req, err := s.route.Request(q, s.resolver.MaxBatch())
	if err != nil {
		return nil, req, err
	}
	res, err := s.resolver.Resolve(ctx, req)
	return res, req, err
}

// Put upserts rec. A non-empty idParam must match the record identifier.
func (s *Service[T]) Put(ctx context.Context, idParam string, rec *T) error {
	if err := s.validate(idParam, rec); err != nil {
		return err
	}
	store, err := s.cache()
	if err != nil {
		return err
	}
	return store.WriteByID(ctx, rec)
}

// Post inserts rec.
func (s *Service[T]) Post(ctx context.Context, rec *T) error {
	if err := s.validate("", rec); err != nil {
		return err
	}
	store, err := s.cache()
	if err != nil {
		return err
	}
	return store.Create(ctx, rec)
}

// Delete removes the cached record named by idParam.
func (s *Service[T]) Delete(ctx context.Context, idParam string) error {
	id, err := s.route.ID(idParam)
	if err != nil {
		return err
	}
	store, err := s.cache()
	if err != nil {
		return err
	}
	return store.DeleteByID(ctx, id)
}

func (s *Service[T]) validate(idParam string, rec *T) error {
	if rec == nil {
		return errs.New(errs.InvalidParameters, "There was no valid %s data provided.", s.route.Source)
	}
	id := s.route.Key(rec)
	if id < 1 {
		return errs.New(errs.InvalidParameters, "The provided record has no %s.", s.route.Param)
	}
	if idParam == "" {
		return nil
	}
	want, err := s.route.ID(idParam)
	if err != nil {
		return err
	}
	if want != id {
		return errs.New(errs.InvalidParameters, "The %s parameter %d does not match the record %d.", s.route.Param, want, id)
	}
	return nil
}

func (s *Service[T]) cache() (Store[T], error) {
	if s.store == nil {
		return nil, errs.New(errs.RepositoryFault, "The database is not connected.")
	}
	return s.store, nil
}
