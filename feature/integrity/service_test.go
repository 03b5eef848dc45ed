package integrity

import (
	"context"
	"testing"

	"game-catalog/core/database"
	"game-catalog/core/storage"
	"game-catalog/core/storage/mocks"
	csimodels "game-catalog/feature/csi/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCache(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &csimodels.Price{}))
	return db
}

func TestService_Schema(t *testing.T) {
	svc := NewService(nil, nil, setupCache(t), []any{&csimodels.Price{}}, zap.NewNop())

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report)
	assert.Contains(t, report.Tables, "csi_prices")
}

func TestService_SchemaWithoutDatabase(t *testing.T) {
	svc := NewService(nil, nil, nil, []any{&csimodels.Price{}}, zap.NewNop())

	_, err := svc.CheckSchema()
	assert.Error(t, err)
}

func TestService_Archive(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog-raw").Return(false, nil).Once()
	client.On("MakeBucket", mock.Anything, "catalog-raw", mock.Anything).Return(nil)
	client.On("BucketExists", mock.Anything, "catalog-raw").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "catalog-raw", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	svc := NewService(storage.NewArchive(client, "catalog-raw", nil), []string{"mm"}, nil, nil, zap.NewNop())
	ctx := context.Background()

	report, err := svc.CheckArchive(ctx)
	require.NoError(t, err)
	assert.False(t, report.Exists)

	require.NoError(t, svc.FixArchive(ctx))

	report, err = svc.CheckArchive(ctx)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.Equal(t, map[string]int{"mm": 0}, report.Documents)
}
