package migrate

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ruposhibhojon/ruposhi-backend/pkg/config"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/db"
	"github.com/ruposhibhojon/ruposhi-backend/pkg/logger"
)

func openSQLite(t *testing.T) *db.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	client := db.NewFromConn(conn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestMaybeRunDevSkipsOutsideDev(t *testing.T) {
	client := openSQLite(t)
	cfg := &config.Config{
		App:          config.AppConfig{Env: "prod"},
		FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: true, UseSQLite: true},
	}
	require.NoError(t, MaybeRunDev(context.Background(), cfg, logger.New(logger.Options{ServiceName: "test"}), client))
	require.False(t, client.DB().Migrator().HasTable("food_listings"))
}

func TestMaybeRunDevBuildsSQLiteSchema(t *testing.T) {
	client := openSQLite(t)
	cfg := &config.Config{
		App:          config.AppConfig{Env: "dev"},
		FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: true, UseSQLite: true},
	}
	require.NoError(t, MaybeRunDev(context.Background(), cfg, logger.New(logger.Options{ServiceName: "test"}), client))
	for _, table := range []string{"food_listings", "food_requests", "users"} {
		require.True(t, client.DB().Migrator().HasTable(table), table)
	}
}

func TestEmbeddedSourceListsMigrationsInOrder(t *testing.T) {
	src, err := Source("")
	require.NoError(t, err)

	sqlDB, err := openSQLite(t).DB().DB()
	require.NoError(t, err)

	p, err := newProvider(sqlDB, goose.DialectSQLite3, src)
	require.NoError(t, err)

	var versions []int64
	for _, s := range p.ListSources() {
		versions = append(versions, s.Version)
	}
	require.Equal(t, []int64{20250301090000, 20250301090500, 20250301091000}, versions)
}

func TestSourceRejectsMissingDir(t *testing.T) {
	_, err := Source(t.TempDir() + "/missing")
	require.Error(t, err)
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	src, err := Source("")
	require.NoError(t, err)
	sqlDB, err := openSQLite(t).DB().DB()
	require.NoError(t, err)

	require.ErrorContains(t, Run(context.Background(), sqlDB, src, "redo", nil), "unsupported")
	require.Error(t, MigrateToVersion(context.Background(), sqlDB, src, "latest", nil))
}
