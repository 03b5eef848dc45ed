package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"math"
	"sync"
	"testing"
	"time"

	"game-catalog/core/errs"
	"game-catalog/core/fetch"
	"game-catalog/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type game struct {
	ID   int64
	Name string
	Year *int
	Note string
}

func ptr[V any](v V) *V { return &v }

func gameTable() *reconcile.Table[game] {
	return reconcile.NewTable(func(g *game) int64 { return g.ID },
		reconcile.Name("name", func(g *game) *string { return &g.Name }),
		reconcile.Number("year", func(g *game) **int { return &g.Year }),
		reconcile.Curated[game]("note"),
	)
}

// Documents are lines of "id|name|year".
func parseLine(line string) (*game, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return nil, errs.New(errs.Malformed, "bad line %q", line)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, errs.New(errs.Malformed, "bad id %q", parts[0])
	}
	g := &game{ID: id, Name: parts[1]}
	if parts[2] != "" {
		y, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, errs.New(errs.Malformed, "bad year %q", parts[2])
		}
		g.Year = &y
	}
	return g, nil
}

func parseOne(_ int64, raw []byte) (*game, error) {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return nil, errs.New(errs.NotFound, "empty document")
	}
	return parseLine(body)
}

func parseMany(raw []byte) ([]*game, error) {
	var out []*game
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		g, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil, errs.New(errs.NotFound, "empty batch")
	}
	return out, nil
}

type fakeFetcher struct {
	mu        sync.Mutex
	batch     bool
	responses map[string]fetch.Outcome
	calls     []string
}

func key(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (f *fakeFetcher) Fetch(_ context.Context, ids ...int64) fetch.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := key(ids)
	f.calls = append(f.calls, k)
	if out, ok := f.responses[k]; ok {
		return out
	}
	return fetch.Outcome{Kind: fetch.NotFound, Status: 404, Detail: "not found: " + k}
}

func (f *fakeFetcher) Batch() bool { return f.batch }

func ok(body string) fetch.Outcome {
	return fetch.Outcome{Kind: fetch.Success, Status: 200, Body: []byte(body)}
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ReadByID(ctx context.Context, id int64) (*game, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(*game)
	return rec, args.Error(1)
}

func (m *mockRepo) WriteByID(ctx context.Context, rec *game) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type recordingArchiver struct {
	mu    sync.Mutex
	saved []string
	err   error
}

func (a *recordingArchiver) Archive(_ context.Context, source string, ids []int64, raw []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.saved = append(a.saved, fmt.Sprintf("%s/%s:%s", source, key(ids), raw))
	return a.err
}

func newPipeline(f *fakeFetcher, repo Repository[game], opts ...Option) *Pipeline[game] {
	src := Source[game]{
		Name:    "test",
		Fetcher: f,
		Parse:   parseOne,
		Table:   gameTable(),
	}
	if f != nil && f.batch {
		src.ParseBatch = parseMany
	}
	return New(src, repo, nil, opts...)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, []int64{100, 101, 102}, Expand(100, 3))
	assert.Equal(t, []int64{100}, Expand(100, 1))
	assert.Nil(t, Expand(100, 0))
	assert.Equal(t, []int64{math.MaxInt64 - 1, math.MaxInt64}, Expand(math.MaxInt64-1, 2))
	assert.Nil(t, Expand(math.MaxInt64, 2), "range past MaxInt64")
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(math.MaxInt64, 1))
	assert.False(t, Fits(math.MaxInt64, 2))
	assert.False(t, Fits(math.MaxInt64-1, 5))
	assert.False(t, Fits(1, 0))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Hybrid")
	require.NoError(t, err)
	assert.Equal(t, ModeHybrid, m)

	_, err = ParseMode("everywhere")
	assert.True(t, errs.Is(err, errs.InvalidParameters))
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		ok   bool
	}{
		{"Valid", Request{ID: 1, Mode: ModeRemote, Batch: 1}, true},
		{"ZeroID", Request{ID: 0, Mode: ModeRemote, Batch: 1}, false},
		{"ZeroBatch", Request{ID: 1, Mode: ModeRemote, Batch: 0}, false},
		{"BadMode", Request{ID: 1, Mode: "x", Batch: 1}, false},
		{"CacheBatch", Request{ID: 1, Mode: ModeCache, Batch: 2}, false},
		{"HybridBatch", Request{ID: 1, Mode: ModeHybrid, Batch: 5, Sync: true}, true},
		{"LastID", Request{ID: math.MaxInt64, Mode: ModeRemote, Batch: 1}, true},
		{"RangeOverflow", Request{ID: math.MaxInt64, Mode: ModeRemote, Batch: 2}, false},
		{"RangeOverflowNearEnd", Request{ID: math.MaxInt64 - 1, Mode: ModeHybrid, Batch: 5}, false},
		{"AtMaxBatch", Request{ID: 1, Mode: ModeRemote, Batch: DefaultMaxBatch}, true},
		{"OverMaxBatch", Request{ID: 1, Mode: ModeHybrid, Batch: 2000000000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(0)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errs.Is(err, errs.InvalidParameters))
			}
		})
	}
}

func TestResolve_RemoteSingle(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("7|Abyss|2014")}}
	arch := &recordingArchiver{}
	p := newPipeline(f, nil, WithArchiver(arch))

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeRemote, Batch: 1})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Abyss", res.First().Name)
	assert.Equal(t, 2014, *res.First().Year)
	assert.Empty(t, res.Failures)
	assert.Equal(t, []string{"test/7:7|Abyss|2014"}, arch.saved)
}

func TestResolve_RemoteNotFound(t *testing.T) {
	p := newPipeline(&fakeFetcher{}, nil)

	_, err := p.Resolve(context.Background(), Request{ID: 9, Mode: ModeRemote, Batch: 1})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestResolve_RemoteMalformed(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("garbage")}}
	p := newPipeline(f, nil)

	_, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeRemote, Batch: 1})
	assert.True(t, errs.Is(err, errs.Malformed))
}

func TestResolve_RemoteRateLimited(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{
		"7": {Kind: fetch.RateLimited, Status: 503, Detail: "slow down"},
	}}
	arch := &recordingArchiver{}
	p := newPipeline(f, nil, WithArchiver(arch))

	_, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeRemote, Batch: 1})
	assert.True(t, errs.Is(err, errs.RateLimited))
	assert.Empty(t, arch.saved)
}

func TestResolve_RemoteBatchPartial(t *testing.T) {
	f := &fakeFetcher{batch: true, responses: map[string]fetch.Outcome{
		"100,101,102": ok("100|A|2000\n102|C|\n"),
	}}
	p := newPipeline(f, nil)

	res, err := p.Resolve(context.Background(), Request{ID: 100, Mode: ModeRemote, Batch: 3})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, int64(100), res.Records[0].ID)
	assert.Equal(t, int64(102), res.Records[1].ID)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, int64(101), res.Failures[0].ID)
	assert.Equal(t, errs.NotFound, res.Failures[0].Kind)
	assert.Equal(t, []string{"100,101,102"}, f.calls)
}

func TestResolve_RemoteBatchNothingFound(t *testing.T) {
	f := &fakeFetcher{batch: true, responses: map[string]fetch.Outcome{
		"100,101": ok(""),
	}}
	p := newPipeline(f, nil)

	_, err := p.Resolve(context.Background(), Request{ID: 100, Mode: ModeRemote, Batch: 2})
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestResolve_RemotePerIDBatch(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{
		"1": ok("1|One|"),
		"2": {Kind: fetch.ServerFault, Status: 500, Detail: "boom"},
		"3": ok("3|Three|"),
	}}
	p := newPipeline(f, nil)

	res, err := p.Resolve(context.Background(), Request{ID: 1, Mode: ModeRemote, Batch: 3})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, Failure{ID: 2, Kind: errs.ServerFault, Detail: "boom"}, res.Failures[0])
	assert.Equal(t, []string{"1", "2", "3"}, f.calls)
}

func TestResolve_CacheBatchRejected(t *testing.T) {
	repo := &mockRepo{}
	p := newPipeline(&fakeFetcher{}, repo)

	_, err := p.Resolve(context.Background(), Request{ID: 1, Mode: ModeCache, Batch: 2})
	assert.True(t, errs.Is(err, errs.InvalidParameters))
	repo.AssertNotCalled(t, "ReadByID", mock.Anything, mock.Anything)
}

func TestResolve_Cache(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(5)).Return(&game{ID: 5, Name: "Cached"}, nil)
	repo.On("ReadByID", mock.Anything, int64(6)).Return(nil, nil)
	repo.On("ReadByID", mock.Anything, int64(8)).Return(nil, errors.New("connection refused"))
	f := &fakeFetcher{}
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 5, Mode: ModeCache, Batch: 1})
	require.NoError(t, err)
	assert.Equal(t, "Cached", res.First().Name)

	_, err = p.Resolve(context.Background(), Request{ID: 6, Mode: ModeCache, Batch: 1})
	assert.True(t, errs.Is(err, errs.NotFound))

	_, err = p.Resolve(context.Background(), Request{ID: 8, Mode: ModeCache, Batch: 1})
	assert.True(t, errs.Is(err, errs.RepositoryFault))

	assert.Empty(t, f.calls)
}

func TestResolve_CacheWithoutRepository(t *testing.T) {
	p := newPipeline(&fakeFetcher{}, nil)

	_, err := p.Resolve(context.Background(), Request{ID: 5, Mode: ModeCache, Batch: 1})
	assert.True(t, errs.Is(err, errs.RepositoryFault))
}

func TestResolve_HybridIdenticalSkipsWrite(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("7|Abyss|2014")}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(7)).Return(&game{ID: 7, Name: "abyss", Year: ptr(2014), Note: "kept"}, nil)
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeHybrid, Batch: 1, Sync: true})
	require.NoError(t, err)
	assert.Equal(t, "abyss", res.First().Name)
	assert.Equal(t, "kept", res.First().Note)
	assert.Empty(t, res.Changes)
	require.NotNil(t, res.Sync)
	assert.Empty(t, res.Sync.Written)
	repo.AssertNotCalled(t, "WriteByID", mock.Anything, mock.Anything)
}

func TestResolve_HybridOverridesAndSyncs(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("7|Abyss|2015")}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(7)).Return(&game{ID: 7, Name: "Abyss", Year: ptr(2014), Note: "kept"}, nil)
	repo.On("WriteByID", mock.Anything, mock.MatchedBy(func(g *game) bool {
		return g.ID == 7 && *g.Year == 2015 && g.Note == "kept"
	})).Return(nil)
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeHybrid, Batch: 1, Sync: true})
	require.NoError(t, err)
	assert.Equal(t, 2015, *res.First().Year)
	require.Len(t, res.Changes, 1)
	assert.False(t, res.Changes[0].FirstSeen)
	assert.Equal(t, reconcile.FieldChange{Cached: "2014", Remote: "2015"}, res.Changes[0].Overridden["year"])
	assert.Equal(t, []int64{7}, res.Sync.Written)
	repo.AssertExpectations(t)
}

func TestResolve_HybridWithoutSyncDoesNotWrite(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("7|Abyss|2015")}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(7)).Return(&game{ID: 7, Name: "Abyss", Year: ptr(2014)}, nil)
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeHybrid, Batch: 1})
	require.NoError(t, err)
	assert.Len(t, res.Changes, 1)
	assert.Nil(t, res.Sync)
	repo.AssertNotCalled(t, "WriteByID", mock.Anything, mock.Anything)
}

func TestResolve_HybridFirstSighting(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("7|Abyss|2014")}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(7)).Return(nil, nil)
	repo.On("WriteByID", mock.Anything, mock.Anything).Return(nil)
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeHybrid, Batch: 1, Sync: true})
	require.NoError(t, err)
	require.Len(t, res.Changes, 1)
	assert.True(t, res.Changes[0].FirstSeen)
	assert.Equal(t, []int64{7}, res.Sync.Written)
}

func TestResolve_HybridFallsBackToCache(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{
		"7": {Kind: fetch.ServerFault, Status: 502, Detail: "bad gateway"},
	}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(7)).Return(&game{ID: 7, Name: "Abyss"}, nil)
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeHybrid, Batch: 1, Sync: true})
	require.NoError(t, err)
	assert.Equal(t, "Abyss", res.First().Name)
	require.Len(t, res.Fallbacks, 1)
	assert.Equal(t, errs.ServerFault, res.Fallbacks[0].Kind)
	assert.Empty(t, res.Changes)
	repo.AssertNotCalled(t, "WriteByID", mock.Anything, mock.Anything)
}

func TestResolve_HybridNothingAnywhere(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(7)).Return(nil, nil)
	p := newPipeline(&fakeFetcher{}, repo)

	_, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeHybrid, Batch: 1})
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestResolve_HybridSyncFailureIsNonFatal(t *testing.T) {
	f := &fakeFetcher{batch: true, responses: map[string]fetch.Outcome{
		"1,2": ok("1|One|2001\n2|Two|2002"),
	}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(1)).Return(nil, nil)
	repo.On("ReadByID", mock.Anything, int64(2)).Return(nil, nil)
	repo.On("WriteByID", mock.Anything, mock.MatchedBy(func(g *game) bool { return g.ID == 1 })).Return(nil)
	repo.On("WriteByID", mock.Anything, mock.MatchedBy(func(g *game) bool { return g.ID == 2 })).Return(errors.New("disk full"))
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 1, Mode: ModeHybrid, Batch: 2, Sync: true})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, []int64{1}, res.Sync.Written)
	require.Len(t, res.Sync.Failed, 1)
	assert.Equal(t, int64(2), res.Sync.Failed[0].ID)
	assert.Equal(t, errs.RepositoryFault, res.Sync.Failed[0].Kind)
}

func TestResolve_HybridCacheErrorIsPerID(t *testing.T) {
	f := &fakeFetcher{batch: true, responses: map[string]fetch.Outcome{
		"1,2": ok("1|One|\n2|Two|"),
	}}
	repo := &mockRepo{}
	repo.On("ReadByID", mock.Anything, int64(1)).Return(nil, errors.New("timeout"))
	repo.On("ReadByID", mock.Anything, int64(2)).Return(&game{ID: 2, Name: "Two"}, nil)
	p := newPipeline(f, repo)

	res, err := p.Resolve(context.Background(), Request{ID: 1, Mode: ModeHybrid, Batch: 2})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, int64(2), res.Records[0].ID)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, errs.RepositoryFault, res.Failures[0].Kind)
}

func TestResolve_ArchiveFailureIsIgnored(t *testing.T) {
	f := &fakeFetcher{responses: map[string]fetch.Outcome{"7": ok("7|Abyss|")}}
	p := newPipeline(f, nil, WithArchiver(&recordingArchiver{err: errors.New("bucket gone")}))

	res, err := p.Resolve(context.Background(), Request{ID: 7, Mode: ModeRemote, Batch: 1})
	require.NoError(t, err)
	assert.Equal(t, "Abyss", res.First().Name)
}

func TestResolve_BatchOverConfiguredMax(t *testing.T) {
	f := &fakeFetcher{batch: true}
	p := newPipeline(f, nil, WithMaxBatch(2))
	assert.Equal(t, 2, p.MaxBatch())

	_, err := p.Resolve(context.Background(), Request{ID: 100, Mode: ModeRemote, Batch: 3})
	assert.True(t, errs.Is(err, errs.InvalidParameters))
	assert.Empty(t, f.calls)
}

func TestPipeline_MaxBatch(t *testing.T) {
	assert.Equal(t, DefaultMaxBatch, newPipeline(&fakeFetcher{batch: true}, nil).MaxBatch())
	assert.Equal(t, 1, newPipeline(&fakeFetcher{}, nil, WithMaxBatch(50)).MaxBatch())
}

// gateFetcher blocks every fetch until release is closed or the fetch context ends.
type gateFetcher struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (g *gateFetcher) Fetch(ctx context.Context, _ ...int64) fetch.Outcome {
	g.once.Do(func() { close(g.started) })
	select {
	case <-g.release:
		return ok("7|Abyss|2014")
	case <-ctx.Done():
		return fetch.Outcome{Kind: fetch.TransportFault, Detail: ctx.Err().Error()}
	}
}

func (g *gateFetcher) Batch() bool { return false }

func TestResolve_SharedFetchSurvivesCallerCancel(t *testing.T) {
	g := &gateFetcher{started: make(chan struct{}), release: make(chan struct{})}
	p := New(Source[game]{Name: "test", Fetcher: g, Parse: parseOne, Table: gameTable()}, nil, nil)
	req := Request{ID: 7, Mode: ModeRemote, Batch: 1}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := p.Resolve(ctxA, req)
		errA <- err
	}()
	<-g.started

	type outcome struct {
		res *Result[game]
		err error
	}
	doneB := make(chan outcome, 1)
	go func() {
		res, err := p.Resolve(context.Background(), req)
		doneB <- outcome{res, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	err := <-errA
	assert.True(t, errs.Is(err, errs.TransportFault), "cancelled caller stops waiting: %v", err)

	close(g.release)
	b := <-doneB
	require.NoError(t, b.err)
	assert.Equal(t, "Abyss", b.res.First().Name)
}
