// Package mjconfig loads and hot-reloads the process configuration with
// viper, watched for changes on disk via fsnotify.
package mjconfig

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"gomahjong/internal/mjlog"
)

// LogConf configures the shared mjlog logger.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// RedisConf configures the distributed tier of internal/mjcache.
type RedisConf struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MongoConf configures the tenhou package's archive store.
type MongoConf struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// JwtConf configures engine session token signing.
type JwtConf struct {
	Secret     string `mapstructure:"secret"`
	ExpireMins int    `mapstructure:"expireMinutes"`
}

// NatsConf configures the engine's round event bus.
type NatsConf struct {
	URL string `mapstructure:"url"`
}

// HTTPConf configures the gin-based httpapi server.
type HTTPConf struct {
	Addr string `mapstructure:"addr"`
}

// Config is the full process configuration. Every component that needs
// configuration reads its own nested section rather than the whole tree.
type Config struct {
	Log   LogConf   `mapstructure:"log"`
	Redis RedisConf `mapstructure:"redis"`
	Mongo MongoConf `mapstructure:"mongo"`
	Jwt   JwtConf   `mapstructure:"jwt"`
	Nats  NatsConf  `mapstructure:"nats"`
	HTTP  HTTPConf  `mapstructure:"http"`
}

func defaults() Config {
	return Config{
		Log:   LogConf{Level: "info"},
		Redis: RedisConf{Addr: "localhost:6379"},
		Mongo: MongoConf{URI: "mongodb://localhost:27017", Database: "gomahjong"},
		Jwt:   JwtConf{ExpireMins: 60},
		Nats:  NatsConf{URL: "nats://localhost:4222"},
		HTTP:  HTTPConf{Addr: ":8080"},
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := defaults()
	current.Store(&cfg)
}

// Get returns the current configuration snapshot. Safe to call
// concurrently with Load's background reload.
func Get() Config {
	return *current.Load()
}

// Load reads configFile into the shared configuration, then watches it for
// changes: every edit re-reads and atomically swaps the snapshot that Get
// returns, logging the reload through mjlog.
func Load(configFile string) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := defaults()
	if err := unmarshalInto(v, &cfg); err != nil {
		if os.IsNotExist(err) {
			current.Store(&cfg)
			return nil
		}
		return fmt.Errorf("mjconfig: load %s: %w", configFile, err)
	}
	current.Store(&cfg)

	v.OnConfigChange(func(fsnotify.Event) {
		reloaded := defaults()
		if err := v.Unmarshal(&reloaded); err != nil {
			mjlog.Error("config reload failed", "file", configFile, "err", err)
			return
		}
		current.Store(&reloaded)
		mjlog.Info("config reloaded", "file", configFile)
	})
	v.WatchConfig()
	return nil
}

func unmarshalInto(v *viper.Viper, cfg *Config) error {
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}
