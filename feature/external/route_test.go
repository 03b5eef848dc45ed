package external

import (
	"testing"

	"game-catalog/core/errs"
	"game-catalog/core/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_Request(t *testing.T) {
	r := itemRoute()

	tests := []struct {
		name     string
		q        Query
		maxBatch int
		want     pipeline.Request
	}{
		{"Defaults", Query{ID: "7"}, 1, pipeline.Request{ID: 7, Mode: pipeline.ModeRemote, Batch: 1}},
		{"SourceName", Query{ID: "7", Source: "ITEM"}, 1, pipeline.Request{ID: 7, Mode: pipeline.ModeRemote, Batch: 1}},
		{"DB", Query{ID: "7", Source: "db"}, 1, pipeline.Request{ID: 7, Mode: pipeline.ModeCache, Batch: 1}},
		{"HybridSync", Query{ID: "7", Source: "hybrid", Sync: "Y"}, 1, pipeline.Request{ID: 7, Mode: pipeline.ModeHybrid, Batch: 1, Sync: true}},
		{"SyncNo", Query{ID: "7", Source: "hybrid", Sync: "n"}, 1, pipeline.Request{ID: 7, Mode: pipeline.ModeHybrid, Batch: 1}},
		{"Batch", Query{ID: "100", Batch: "3"}, 10, pipeline.Request{ID: 100, Mode: pipeline.ModeRemote, Batch: 3}},
		{"BatchOfOneOnPlainSource", Query{ID: "100", Batch: "1"}, 1, pipeline.Request{ID: 100, Mode: pipeline.ModeRemote, Batch: 1}},
		{"BatchAtMax", Query{ID: "100", Batch: "10"}, 10, pipeline.Request{ID: 100, Mode: pipeline.ModeRemote, Batch: 10}},
		{"LastIdentifier", Query{ID: "9223372036854775807", Batch: "1"}, 10, pipeline.Request{ID: 9223372036854775807, Mode: pipeline.ModeRemote, Batch: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Request(tt.q, tt.maxBatch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoute_RequestInvalid(t *testing.T) {
	r := itemRoute()

	tests := []struct {
		name     string
		q        Query
		maxBatch int
	}{
		{"MissingID", Query{}, 10},
		{"TextID", Query{ID: "abc"}, 10},
		{"ZeroID", Query{ID: "0"}, 10},
		{"BadSource", Query{ID: "1", Source: "web"}, 10},
		{"BadBatch", Query{ID: "1", Batch: "many"}, 10},
		{"ZeroBatch", Query{ID: "1", Batch: "0"}, 10},
		{"BatchNotSupported", Query{ID: "1", Batch: "2"}, 1},
		{"BadSync", Query{ID: "1", Sync: "yes"}, 10},
		{"CacheBatch", Query{ID: "1", Source: "db", Batch: "2"}, 10},
		{"BatchOverMax", Query{ID: "1", Source: "hybrid", Batch: "2000000000"}, 100},
		{"BatchJustOverMax", Query{ID: "1", Batch: "11"}, 10},
		{"RangeOverflow", Query{ID: "9223372036854775807", Batch: "2"}, 10},
		{"RangeOverflowNearEnd", Query{ID: "9223372036854775806", Source: "hybrid", Batch: "5"}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Request(tt.q, tt.maxBatch)
			assert.True(t, errs.Is(err, errs.InvalidParameters), "got %v", err)
		})
	}
}

func TestStatus(t *testing.T) {
	tests := map[errs.Kind]int{
		errs.NotFound:          404,
		errs.Malformed:         502,
		errs.RateLimited:       503,
		errs.ServerFault:       502,
		errs.ClientFault:       400,
		errs.TransportFault:    504,
		errs.RepositoryFault:   500,
		errs.InvalidParameters: 400,
	}
	for kind, want := range tests {
		assert.Equal(t, want, Status(kind), string(kind))
	}
}
