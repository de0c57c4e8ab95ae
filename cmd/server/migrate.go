package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stu-dashboard/backend/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "按默认表名创建开发/测试用的数据表",
	Long:  "执行内嵌的 MySQL 迁移脚本。生产环境的表或视图由数据侧维护，通常无需执行。",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			return fmt.Errorf("数据库连接失败: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
		}
		defer sqlDB.Close()

		files, err := database.MigrationFiles()
		if err != nil {
			return fmt.Errorf("读取迁移文件失败: %w", err)
		}
		logger.Info("开始执行数据库迁移", zap.Int("files", len(files)))

		return database.RunMigrations(sqlDB, logger)
	},
}
