package pipeline

import (
	"context"
	"time"

	"game-catalog/core/errs"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// cacheReadLimit bounds concurrent cache reads during a hybrid batch.
const cacheReadLimit = 8

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	archiver Archiver
	maxBatch int
}

// WithArchiver stores every successfully fetched document through a.
func WithArchiver(a Archiver) Option {
	return func(o *options) {
		o.archiver = a
	}
}

// WithMaxBatch caps the identifiers one request may expand to. Values below one keep
// DefaultMaxBatch.
func WithMaxBatch(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBatch = n
		}
	}
}

// Pipeline resolves records of type T for one source.
type Pipeline[T any] struct {
	source   Source[T]
	repo     Repository[T]
	logger   *zap.Logger
	archiver Archiver
	maxBatch int
	flight   singleflight.Group
}

// New creates a pipeline. repo may be nil, in which case cache and hybrid modes fail
// with RepositoryFault.
func New[T any](source Source[T], repo Repository[T], logger *zap.Logger, opts ...Option) *Pipeline[T] {
	o := options{maxBatch: DefaultMaxBatch}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline[T]{
		source:   source,
		repo:     repo,
		logger:   logger.With(zap.String("source", source.Name)),
		archiver: o.archiver,
		maxBatch: o.maxBatch,
	}
}

// Name returns the source name.
func (p *Pipeline[T]) Name() string {
	return p.source.Name
}

// Batch reports whether the source accepts multi-identifier requests.
func (p *Pipeline[T]) Batch() bool {
	return p.source.Fetcher != nil && p.source.Fetcher.Batch()
}

// MaxBatch returns the largest accepted batch, 1 when the source cannot batch.
func (p *Pipeline[T]) MaxBatch() int {
	if !p.Batch() {
		return 1
	}
	return p.maxBatch
}

// Resolve runs one request through the pipeline.
func (p *Pipeline[T]) Resolve(ctx context.Context, req Request) (*Result[T], error) {
	if err := req.Validate(p.maxBatch); err != nil {
		return nil, err
	}

	start := time.Now()
	ids := Expand(req.ID, req.Batch)
	l := p.logger.With(
		zap.Int64("id", req.ID),
		zap.Int("batch", req.Batch),
		zap.String("mode", string(req.Mode)),
	)

	var (
		res *Result[T]
		err error
	)
	switch req.Mode {
	case ModeRemote:
		res, err = p.resolveRemote(ctx, ids)
	case ModeCache:
		res, err = p.resolveCache(ctx, req.ID)
	case ModeHybrid:
		res, err = p.resolveHybrid(ctx, ids, req.Sync)
	}
	if err != nil {
		l.Warn("Resolve failed",
			zap.String("kind", string(errs.KindOf(err))),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	fields := []zap.Field{
		zap.Int("records", len(res.Records)),
		zap.Int("failures", len(res.Failures)),
		zap.Int("fallbacks", len(res.Fallbacks)),
		zap.Int("changes", len(res.Changes)),
		zap.Duration("duration", time.Since(start)),
	}
	if res.Sync != nil {
		fields = append(fields,
			zap.Int("sync_written", len(res.Sync.Written)),
			zap.Int("sync_failed", len(res.Sync.Failed)))
	}
	l.Info("Resolve completed", fields...)
	return res, nil
}

func (p *Pipeline[T]) resolveRemote(ctx context.Context, ids []int64) (*Result[T], error) {
	found, missing, err := p.fetchRemote(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := &Result[T]{}
	var firstErr error
	for _, id := range ids {
		if rec := found[id]; rec != nil {
			res.Records = append(res.Records, rec)
			continue
		}
		if firstErr == nil {
			firstErr = missing[id]
		}
		res.Failures = append(res.Failures, newFailure(id, missing[id]))
	}
	if len(res.Records) == 0 {
		return nil, p.nothingFound(ids, firstErr)
	}
	return res, nil
}

// nothingFound returns the single identifier's own error, or NotFound for a batch.
func (p *Pipeline[T]) nothingFound(ids []int64, first error) error {
	if len(ids) == 1 {
		return first
	}
	return errs.Wrap(errs.NotFound, first, "none of %s %d..%d were found", p.source.Name, ids[0], ids[len(ids)-1])
}

func (p *Pipeline[T]) resolveCache(ctx context.Context, id int64) (*Result[T], error) {
	rec, err := p.readCache(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.New(errs.NotFound, "%s %d is not in the cache", p.source.Name, id)
	}
	return &Result[T]{Records: []*T{rec}}, nil
}

func (p *Pipeline[T]) resolveHybrid(ctx context.Context, ids []int64, sync bool) (*Result[T], error) {
	if p.repo == nil {
		return nil, errs.New(errs.RepositoryFault, "no repository is configured for %s", p.source.Name)
	}

	var (
		found     map[int64]*T
		missing   map[int64]error
		remoteErr error
		cached    = make([]*T, len(ids))
		cacheErrs = make([]error, len(ids))
	)

	// Goroutines never return errors so one failure cannot cancel the others.
	var g errgroup.Group
	g.SetLimit(cacheReadLimit + 1)
	g.Go(func() error {
		found, missing, remoteErr = p.fetchRemote(ctx, ids)
		return nil
	})
	for i, id := range ids {
		g.Go(func() error {
			cached[i], cacheErrs[i] = p.readCache(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	res := &Result[T]{}
	var (
		firstErr error
		pending  []*T
	)
	fail := func(id int64, err error) {
		if firstErr == nil {
			firstErr = err
		}
		res.Failures = append(res.Failures, newFailure(id, err))
	}

	for i, id := range ids {
		if cacheErrs[i] != nil {
			fail(id, cacheErrs[i])
			continue
		}

		remote := found[id]
		if remote == nil {
			reason := remoteErr
			if reason == nil {
				reason = missing[id]
			}
			if cached[i] == nil {
				fail(id, reason)
				continue
			}
			res.Fallbacks = append(res.Fallbacks, newFailure(id, reason))
		}

		merged, err := p.source.Table.Merge(remote, cached[i])
		if err != nil {
			fail(id, err)
			continue
		}
		res.Records = append(res.Records, merged.Record)
		if !merged.Changed {
			continue
		}
		res.Changes = append(res.Changes, Change{
			ID:         id,
			FirstSeen:  cached[i] == nil,
			Overridden: merged.Overridden,
		})
		pending = append(pending, merged.Record)
	}

	if len(res.Records) == 0 {
		return nil, p.nothingFound(ids, firstErr)
	}
	if sync {
		res.Sync = p.writeBack(ctx, pending)
	}
	return res, nil
}

func (p *Pipeline[T]) writeBack(ctx context.Context, records []*T) *SyncReport {
	report := &SyncReport{Written: []int64{}}
	for _, rec := range records {
		id := p.source.Table.Key(rec)
		if err := p.repo.WriteByID(ctx, rec); err != nil {
			err = errs.From(err, errs.RepositoryFault)
			p.logger.Error("Cache write failed", zap.Int64("id", id), zap.Error(err))
			report.Failed = append(report.Failed, newFailure(id, err))
			continue
		}
		report.Written = append(report.Written, id)
	}
	return report
}

func (p *Pipeline[T]) readCache(ctx context.Context, id int64) (*T, error) {
	if p.repo == nil {
		return nil, errs.New(errs.RepositoryFault, "no repository is configured for %s", p.source.Name)
	}
	rec, err := p.repo.ReadByID(ctx, id)
	if err != nil {
		return nil, errs.From(err, errs.RepositoryFault)
	}
	return rec, nil
}

// fetchRemote returns the records found, the per-identifier reason for every identifier
// not found, and a total error when nothing could be parsed at all.
func (p *Pipeline[T]) fetchRemote(ctx context.Context, ids []int64) (map[int64]*T, map[int64]error, error) {
	if p.source.Fetcher == nil {
		return nil, nil, errs.New(errs.ClientFault, "%s has no remote fetcher", p.source.Name)
	}

	found := make(map[int64]*T, len(ids))
	missing := make(map[int64]error)

	if len(ids) > 1 && p.source.Fetcher.Batch() && p.source.ParseBatch != nil {
		raw, err := p.fetchDocument(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		records, err := p.source.ParseBatch(raw)
		if err != nil {
			return nil, nil, errs.From(err, errs.Malformed)
		}
		for _, rec := range records {
			found[p.source.Table.Key(rec)] = rec
		}
		for _, id := range ids {
			if found[id] == nil {
				missing[id] = errs.New(errs.NotFound, "%s %d is not in the batch response", p.source.Name, id)
			}
		}
		return found, missing, nil
	}

	for _, id := range ids {
		rec, err := p.fetchOne(ctx, id)
		if err != nil {
			if len(ids) == 1 {
				return nil, nil, err
			}
			missing[id] = err
			continue
		}
		found[id] = rec
	}
	return found, missing, nil
}

func (p *Pipeline[T]) fetchOne(ctx context.Context, id int64) (*T, error) {
	raw, err := p.fetchDocument(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	rec, err := p.source.Parse(id, raw)
	if err != nil {
		return nil, errs.From(err, errs.Malformed)
	}
	return rec, nil
}

// fetchDocument collapses concurrent fetches of the same identifiers into one round trip.
// The shared fetch ignores cancellation of whichever caller started it and is bounded by
// the fetcher's own timeout; each caller stops waiting when its own ctx is done.
func (p *Pipeline[T]) fetchDocument(ctx context.Context, ids []int64) ([]byte, error) {
	shared := context.WithoutCancel(ctx)
	ch := p.flight.DoChan(flightKey(p.source.Name, ids), func() (any, error) {
		out := p.source.Fetcher.Fetch(shared, ids...)
		if err := out.Err(); err != nil {
			return nil, err
		}
		p.archive(shared, ids, out.Body)
		return out.Body, nil
	})

	select {
	case <-ctx.Done():
		return nil, errs.Wrap(errs.TransportFault, ctx.Err(), "%s fetch of %d identifiers abandoned", p.source.Name, len(ids))
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.([]byte), nil
	}
}

func (p *Pipeline[T]) archive(ctx context.Context, ids []int64, raw []byte) {
	if p.archiver == nil {
		return
	}
	if err := p.archiver.Archive(ctx, p.source.Name, ids, raw); err != nil {
		p.logger.Warn("Raw document archive failed", zap.Int64s("ids", ids), zap.Error(err))
	}
}
