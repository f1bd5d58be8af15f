package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀, 例如 KEYTRIE_STORE_PATH
const EnvPrefix = "KEYTRIE"

// Config 配置
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Registry RegistryConfig `mapstructure:"registry"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig badger 存储配置
type StoreConfig struct {
	Path       string        `mapstructure:"path"` // 为空时使用内存模式
	GCInterval time.Duration `mapstructure:"gc_interval"`
}

// RegistryConfig 登记簿配置
type RegistryConfig struct {
	OutputFile string `mapstructure:"output_file"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // 为空时不启动 HTTP 端点
}

// Load 从配置文件与环境变量加载配置; path 为空时只使用默认值与环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("store.path", "")
	v.SetDefault("store.gc_interval", "5m")
	v.SetDefault("registry.output_file", "rut_data.txt")
	v.SetDefault("metrics.addr", "")
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	if c.Store.GCInterval <= 0 {
		return fmt.Errorf("invalid store gc interval: %s", c.Store.GCInterval)
	}
	if c.Registry.OutputFile == "" {
		return fmt.Errorf("registry output file cannot be empty")
	}
	return nil
}
