package database

import (
	"fmt"
	"os"
	"path/filepath"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table the service owns, in migration order.
func Models() []interface{} {
	return []interface{}{
		&model.StudentProfile{},
		&model.LearningPlan{},
		&model.WeeklyPlan{},
		&model.QuizSubmission{},
		&model.AcademyAssignment{},
		&model.MotivationTemplate{},
	}
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		if cfg.SQLitePath != ":memory:" && !strings.HasPrefix(cfg.SQLitePath, "file:") {
			if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
				if err := os.MkdirAll(dir, os.ModePerm); err != nil {
					return nil, err
				}
			}
		}
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	d, err := dialector(&cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Database.Driver))

	// release 模式下默认跳过迁移，除非显式指定 -migrate
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		logger.Log.Info("Skipping migration in release mode")
		return db, nil
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logger.Log.Info("Database migration completed")

	return db, nil
}

// Migrate creates the schema and inserts the default motivation templates.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return SeedMotivations(db)
}

// SeedMotivations inserts the built-in template for every state that has none.
func SeedMotivations(db *gorm.DB) error {
	for _, state := range progress.MotivationalStates() {
		var count int64
		if err := db.Model(&model.MotivationTemplate{}).Where("state = ?", string(state)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		tpl := &model.MotivationTemplate{
			State:     string(state),
			Content:   progress.DefaultMessages[state],
			IsEnabled: true,
		}
		if err := db.Create(tpl).Error; err != nil {
			return err
		}
	}
	return nil
}
