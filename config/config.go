package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host      string     `mapstructure:"host"`
	Port      int        `mapstructure:"port"`
	BodyLimit int64      `mapstructure:"body_limit"` // 请求体最大字节数
	CORS      CORSConfig `mapstructure:"cors"`
}

// Addr 监听地址
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowMethods []string `mapstructure:"allow_methods"`
}

// DatabaseConfig MySQL 数据库配置
type DatabaseConfig struct {
	Host            string       `mapstructure:"host"`
	Port            int          `mapstructure:"port"`
	Name            string       `mapstructure:"name"`
	User            string       `mapstructure:"user"`
	Password        string       `mapstructure:"password"`
	MaxOpenConns    int          `mapstructure:"max_open_conns"`
	MaxIdleConns    int          `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int          `mapstructure:"conn_max_lifetime"`  // 连接最大生命周期（分钟）
	ConnMaxIdleTime int          `mapstructure:"conn_max_idle_time"` // 空闲连接最大存活时间（分钟）
	Tables          TablesConfig `mapstructure:"tables"`
}

// DSN 生成 MySQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// TablesConfig 各查询所用的表/视图名
// 表名会被拼接进 SQL，必须通过 Validate 的标识符校验
type TablesConfig struct {
	Score      string `mapstructure:"score"`
	Course     string `mapstructure:"course"`
	Ability    string `mapstructure:"ability"`
	Statistics string `mapstructure:"statistics"`
	Prediction string `mapstructure:"prediction"`
}

// RedisConfig Redis 配置（当前仅用于限流）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig 查询接口限流配置
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值；.env 文件存在时先载入环境变量
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"*"})
	v.SetDefault("server.cors.allow_methods", []string{"GET", "POST"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.name", "student_management")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)  // 60分钟
	v.SetDefault("db.conn_max_idle_time", 30) // 30分钟

	v.SetDefault("db.tables.score", "stu_score")
	v.SetDefault("db.tables.course", "course_ability")
	v.SetDefault("db.tables.ability", "stu_ability")
	v.SetDefault("db.tables.statistics", "ability_statistics")
	v.SetDefault("db.tables.prediction", "employment_prediction")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.limit", 120)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("STU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("配置校验失败: db.name 不能为空")
	}

	tables := map[string]string{
		"db.tables.score":      c.Database.Tables.Score,
		"db.tables.course":     c.Database.Tables.Course,
		"db.tables.ability":    c.Database.Tables.Ability,
		"db.tables.statistics": c.Database.Tables.Statistics,
		"db.tables.prediction": c.Database.Tables.Prediction,
	}
	for key, name := range tables {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("配置校验失败: %s 表名 %q 非法", key, name)
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("配置校验失败: rate_limit.limit 与 rate_limit.window 必须为正数")
	}
	return nil
}
