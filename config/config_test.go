package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:3000" {
		t.Errorf("期望监听 0.0.0.0:3000，实际=%s", cfg.Server.Addr())
	}
	if cfg.Database.Port != 3306 {
		t.Errorf("期望 db.port=3306，实际=%d", cfg.Database.Port)
	}
	if len(cfg.Server.CORS.AllowOrigins) != 1 || cfg.Server.CORS.AllowOrigins[0] != "*" {
		t.Errorf("期望 allow_origins=[*]，实际=%v", cfg.Server.CORS.AllowOrigins)
	}
	if cfg.Database.Tables.Score != "stu_score" {
		t.Errorf("期望默认成绩表 stu_score，实际=%s", cfg.Database.Tables.Score)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("期望 rate_limit.window=1m，实际=%s", cfg.RateLimit.Window)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STU_DB_TABLES_SCORE", "test_score")
	t.Setenv("STU_SERVER_PORT", "8081")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Database.Tables.Score != "test_score" {
		t.Errorf("期望环境变量覆盖成绩表名，实际=%s", cfg.Database.Tables.Score)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("期望 port=8081，实际=%d", cfg.Server.Port)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "db:\n  host: db.internal\n  tables:\n    course: v_course_matrix\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("期望 db.host=db.internal，实际=%s", cfg.Database.Host)
	}
	if cfg.Database.Tables.Course != "v_course_matrix" {
		t.Errorf("期望课程表=v_course_matrix，实际=%s", cfg.Database.Tables.Course)
	}
	// 未在文件中出现的键保留默认值
	if cfg.Database.Tables.Prediction != "employment_prediction" {
		t.Errorf("期望预测表保留默认值，实际=%s", cfg.Database.Tables.Prediction)
	}
}

func TestValidate_RejectsUnsafeTableName(t *testing.T) {
	t.Setenv("STU_DB_TABLES_ABILITY", "stu_ability; DROP TABLE x")

	_, err := Load("")
	if err == nil {
		t.Fatal("非法表名应校验失败")
	}
	if !strings.Contains(err.Error(), "db.tables.ability") {
		t.Errorf("错误信息应指明配置项，实际: %v", err)
	}
}

func TestValidate_Port(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("端口越界应校验失败")
	}
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{Enabled: true, Limit: 0, Window: time.Minute}
	if err := cfg.Validate(); err == nil {
		t.Error("启用限流时 limit=0 应校验失败")
	}

	cfg.RateLimit.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("关闭限流时不应校验 limit: %v", err)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "127.0.0.1", Port: 3306, User: "stu", Password: "p@ss", Name: "dashboard"}
	dsn := c.DSN()

	if !strings.HasPrefix(dsn, "stu:p@ss@tcp(127.0.0.1:3306)/dashboard?") {
		t.Errorf("DSN 格式不符: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("DSN 应开启 parseTime: %s", dsn)
	}
	if !strings.Contains(dsn, "charset=utf8mb4") {
		t.Errorf("DSN 应指定 utf8mb4: %s", dsn)
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 3000},
		Database: DatabaseConfig{
			Name: "student_management",
			Tables: TablesConfig{
				Score:      "stu_score",
				Course:     "course_ability",
				Ability:    "stu_ability",
				Statistics: "ability_statistics",
				Prediction: "employment_prediction",
			},
		},
	}
}
