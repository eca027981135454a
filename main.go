// @title Quiz Progress API
// @version 1.0
// @description 学习计划排期与进度跟踪服务。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"path/filepath"
	"quiz_progress_backend/internal/app"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/pkg/database"
	"quiz_progress_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移（含激励文案种子数据），完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	if cfg.MigrateOnly {
		runMigrations(cfg)
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.ConfigPath = filepath.Join(*configDir, "config.yaml")
	application.Run()
}

// runMigrations 只连接数据库，不启动 Redis、追踪和 HTTP 服务
func runMigrations(cfg *config.Config) {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("数据库迁移完成，退出程序")
}
