package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Mode           string        `mapstructure:"mode"`
	Port           int           `mapstructure:"port"`
	StaticPath     string        `mapstructure:"static_path"`
	ReadLimit      int64         `mapstructure:"read_limit"`
	PingPeriod     time.Duration `mapstructure:"ping_period"`
	MaxRoomSize    int           `mapstructure:"max_room_size"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	StunURLs       []string      `mapstructure:"stun_urls"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "./web")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("max_room_size", 10)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("stun_urls", []string{"stun:stun.l.google.com:19302"})

	// Deployment overrides file values: HUDDLE_PORT, HUDDLE_MAX_ROOM_SIZE, ...
	v.SetEnvPrefix("huddle")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("⚠️ Config file not found (%s), using defaults\n", fileName)
	} else {
		fmt.Printf("✅ Loaded config: %s\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxRoomSize < 2 {
		return nil, fmt.Errorf("max_room_size must be at least 2, got %d", cfg.MaxRoomSize)
	}
	fmt.Printf("🧩 Mode: %s | Port: %d | Room cap: %d\n", cfg.Mode, cfg.Port, cfg.MaxRoomSize)
	return &cfg, nil
}
