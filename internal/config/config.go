// config предоставляет структуру конфигурации music-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Ops        OpsConfig        `yaml:"ops"`
	DB         DBConfig         `yaml:"db"`
	NetEase    NetEaseConfig    `yaml:"netease"`
	Refresh    RefreshConfig    `yaml:"refresh"`
	Moderation ModerationConfig `yaml:"moderation"`
	Limits     LimitsConfig     `yaml:"limits"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки публичного HTTP API.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// OpsConfig — сетевые настройки служебного HTTP (livez/healthz/metrics).
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"50091"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (o OpsConfig) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// NetEaseConfig — параметры клиента внешнего музыкального сервиса.
type NetEaseConfig struct {
	BaseURL string        `yaml:"base_url" env:"NETEASE_BASE_URL" env-default:"https://music.163.com"`
	Timeout time.Duration `yaml:"timeout"  env:"NETEASE_TIMEOUT"  env-default:"10s"`
}

// RefreshConfig — параметры фонового обновления числа комментариев.
type RefreshConfig struct {
	// Interval — период запуска фоновой зачистки.
	Interval time.Duration `yaml:"interval" env:"REFRESH_INTERVAL" env-default:"1h"`
	// MaxAge — возраст кэша, после которого счётчик считается устаревшим.
	MaxAge time.Duration `yaml:"max_age" env:"REFRESH_MAX_AGE" env-default:"12h"`
	// Batch — размер страницы при обходе устаревших треков.
	Batch int32 `yaml:"batch" env:"REFRESH_BATCH" env-default:"200"`
}

// ModerationConfig — правила воркфлоу модерации.
type ModerationConfig struct {
	// CommentCeiling — максимум комментариев у трека на момент предложения.
	CommentCeiling int64 `yaml:"comment_ceiling" env:"COMMENT_CEILING" env-default:"999"`
	// EmptyReason — плейсхолдер причины отказа, если модератор её не указал.
	EmptyReason string `yaml:"empty_reason" env:"EMPTY_REASON" env-default:"не указана"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при запросе с count=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"10"`
	// Верхняя граница для count.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.NetEase.BaseURL == "" {
		return fmt.Errorf("netease.base_url is required")
	}
	if c.NetEase.Timeout <= 0 {
		return fmt.Errorf("netease.timeout must be > 0")
	}
	if c.Refresh.Interval < time.Minute {
		return fmt.Errorf("refresh.interval must be at least 1m")
	}
	if c.Refresh.MaxAge <= 0 {
		return fmt.Errorf("refresh.max_age must be > 0")
	}
	if c.Refresh.Batch <= 0 {
		return fmt.Errorf("refresh.batch must be > 0")
	}
	if c.Moderation.CommentCeiling <= 0 {
		return fmt.Errorf("moderation.comment_ceiling must be > 0")
	}
	if c.Moderation.EmptyReason == "" {
		return fmt.Errorf("moderation.empty_reason is required")
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	return nil
}
