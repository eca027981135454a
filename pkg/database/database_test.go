package database_test

import (
	"path/filepath"
	"testing"

	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/testutil"
	"quiz_progress_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMotivationsIsIdempotent(t *testing.T) {
	db := testutil.DB(t)

	require.NoError(t, db.Model(&model.MotivationTemplate{}).
		Where("state = ?", string(progress.StateUrgency)).
		Update("content", "custom {missed}").Error)

	require.NoError(t, database.SeedMotivations(db))

	var count int64
	require.NoError(t, db.Model(&model.MotivationTemplate{}).Count(&count).Error)
	assert.Equal(t, int64(len(progress.MotivationalStates())), count)

	var urgency model.MotivationTemplate
	require.NoError(t, db.Where("state = ?", string(progress.StateUrgency)).First(&urgency).Error)
	assert.Equal(t, "custom {missed}", urgency.Content)
}

func TestInitDBSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.db")
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", SQLitePath: path},
	}

	db, err := database.InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
}

func TestInitDBSkipsMigrationInRelease(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "release"},
		Database: config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "p.db")},
	}

	db, err := database.InitDB(cfg)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.False(t, db.Migrator().HasTable(&model.LearningPlan{}))
}

func TestInitDBUnknownDriver(t *testing.T) {
	_, err := database.InitDB(&config.Config{Database: config.DatabaseConfig{Driver: "postgres"}})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitRedisDisabled(t *testing.T) {
	rdb, err := database.InitRedis(&config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, rdb)
}
