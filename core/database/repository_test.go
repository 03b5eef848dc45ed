package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"game-catalog/core/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type record struct {
	RecordID  int64    `gorm:"column:record_id;primaryKey;autoIncrement:false"`
	Name      string   `gorm:"column:name"`
	Tags      []string `gorm:"column:tags;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (record) TableName() string { return "records" }

func setupRepository(t *testing.T) *Repository[record] {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db, &record{}))
	return NewRepository[record](db, "record_id")
}

func setupMockRepository(t *testing.T) (*Repository[record], sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return NewRepository[record](db, "record_id"), mock
}

func TestRepository_ReadMissing(t *testing.T) {
	repo := setupRepository(t)

	rec, err := repo.ReadByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRepository_WriteAndRead(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.WriteByID(ctx, &record{RecordID: 42, Name: "Abyss", Tags: []string{"a", "b"}}))

	rec, err := repo.ReadByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Abyss", rec.Name)
	assert.Equal(t, []string{"a", "b"}, rec.Tags)
}

func TestRepository_WriteReplaces(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.WriteByID(ctx, &record{RecordID: 42, Name: "Abyss", Tags: []string{"a"}}))
	require.NoError(t, repo.WriteByID(ctx, &record{RecordID: 42, Name: "Abyss: Kraken", Tags: []string{"b", "c"}}))

	rec, err := repo.ReadByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Abyss: Kraken", rec.Name)
	assert.Equal(t, []string{"b", "c"}, rec.Tags)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &record{RecordID: 7, Name: "One"}))
	err := repo.Create(ctx, &record{RecordID: 7, Name: "Two"})
	assert.True(t, errs.Is(err, errs.InvalidParameters))
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &record{RecordID: 7, Name: "One"}))
	require.NoError(t, repo.DeleteByID(ctx, 7))

	rec, err := repo.ReadByID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, rec)

	err = repo.DeleteByID(ctx, 7)
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestRepository_ReadError(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `records` WHERE `record_id` = ?")).
		WillReturnError(errors.New("connection reset"))

	rec, err := repo.ReadByID(context.Background(), 5)
	assert.Nil(t, rec)
	assert.True(t, errs.Is(err, errs.RepositoryFault))
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_WriteError(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `records`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.WriteByID(context.Background(), &record{RecordID: 5, Name: "Five"})
	assert.True(t, errs.Is(err, errs.RepositoryFault))
	assert.NoError(t, mock.ExpectationsWereMet())
}
