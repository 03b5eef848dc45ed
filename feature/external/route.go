package external

import (
	"context"
	"strconv"
	"strings"

	"game-catalog/core/errs"
	"game-catalog/core/pipeline"
)

// Resolver resolves records; *pipeline.Pipeline satisfies it.
type Resolver[T any] interface {
	Resolve(ctx context.Context, req pipeline.Request) (*pipeline.Result[T], error)
	// MaxBatch is the largest accepted batch; 1 when the source cannot batch.
	MaxBatch() int
}

// Store is the CRUD surface of the cache; *database.Repository satisfies it.
type Store[T any] interface {
	WriteByID(ctx context.Context, rec *T) error
	Create(ctx context.Context, rec *T) error
	DeleteByID(ctx context.Context, id int64) error
}

// Route describes how one source is exposed.
type Route[T any] struct {
	// Source is the source name, also the source query value selecting remote mode.
	Source string
	// Path is the route path, e.g. /external/bggdata.
	Path string
	// Param is the identifier query parameter, e.g. bggid.
	Param string
	// Key returns a record's identifier.
	Key func(*T) int64
}

// Query holds the raw GET parameters.
type Query struct {
	ID     string
	Source string
	Batch  string
	Sync   string
}

// Request converts the query into a pipeline request. maxBatch is the largest batch the
// source accepts; 1 or less means no batching.
func (r Route[T]) Request(q Query, maxBatch int) (pipeline.Request, error) {
	id, err := r.ID(q.ID)
	if err != nil {
		return pipeline.Request{}, err
	}

	req := pipeline.Request{ID: id, Batch: 1}

	switch source := strings.ToLower(strings.TrimSpace(q.Source)); source {
	case "", r.Source:
		req.Mode = pipeline.ModeRemote
	case "db":
		req.Mode = pipeline.ModeCache
	case "hybrid":
		req.Mode = pipeline.ModeHybrid
	default:
		return pipeline.Request{}, errs.New(errs.InvalidParameters,
			"The source parameter value of %s is not a valid source value.", q.Source)
	}

	if b := strings.TrimSpace(q.Batch); b != "" {
		n, err := strconv.Atoi(b)
		if err != nil || n < 1 {
			return pipeline.Request{}, errs.New(errs.InvalidParameters,
				"The batch parameter value of %s is not a valid batch size.", q.Batch)
		}
		if n > 1 && maxBatch <= 1 {
			return pipeline.Request{}, errs.New(errs.InvalidParameters,
				"The %s source does not support batch requests.", r.Source)
		}
		if n > maxBatch {
			return pipeline.Request{}, errs.New(errs.InvalidParameters,
				"The batch parameter value of %s exceeds the maximum batch size of %d.", q.Batch, maxBatch)
		}
		if !pipeline.Fits(id, n) {
			return pipeline.Request{}, errs.New(errs.InvalidParameters,
				"The batch of %d from %s %d runs past the largest identifier.", n, r.Param, id)
		}
		req.Batch = n
	}

	switch strings.ToLower(strings.TrimSpace(q.Sync)) {
	case "", "n":
	case "y":
		req.Sync = true
	default:
		return pipeline.Request{}, errs.New(errs.InvalidParameters,
			"The sync parameter value of %s is not a valid sync value.", q.Sync)
	}

	if req.Mode == pipeline.ModeCache && req.Batch > 1 {
		return pipeline.Request{}, errs.New(errs.InvalidParameters,
			"The current version does not support batch requests from the database.")
	}
	return req, nil
}

// ID parses the identifier parameter.
func (r Route[T]) ID(v string) (int64, error) {
	if strings.TrimSpace(v) == "" {
		return 0, errs.New(errs.InvalidParameters, "The %s parameter is required.", r.Param)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id < 1 {
		return 0, errs.New(errs.InvalidParameters, "The %s parameter value of %s is not a valid identifier.", r.Param, v)
	}
	return id, nil
}
