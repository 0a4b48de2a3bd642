package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // mysql or sqlite
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file, ":memory:" for throwaway
}

type Session struct {
	Backend    string // memory or redis
	CookieName string
	HashKey    string
	BlockKey   string
	TTLMin     int
	RedisAddr  string
	RedisPass  string
	RedisDB    int
}

type SMTP struct {
	Enabled  bool
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// Admin is the seed account created at startup when missing.
type Admin struct {
	Username string
	Email    string
	Password string
}

type Config struct {
	HTTP     HTTP
	DB       DB
	Session  Session
	SMTP     SMTP
	Admin    Admin
	LogLevel string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "tasker")
	v.SetDefault("db.path", "tasker.db")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.cookie_name", "tasker_session")
	v.SetDefault("session.ttl_min", 1440)
	v.SetDefault("session.redis_addr", "127.0.0.1:6379")
	v.SetDefault("session.redis_db", 0)
	v.SetDefault("smtp.enabled", false)
	v.SetDefault("smtp.port", 25)
	v.SetDefault("smtp.from", "Task Manager <noreply@taskmanager.local>")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.email", "admin@taskmanager.local")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("log.level", "info")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Session: Session{
			Backend:    v.GetString("session.backend"),
			CookieName: v.GetString("session.cookie_name"),
			HashKey:    v.GetString("session.hash_key"),
			BlockKey:   v.GetString("session.block_key"),
			TTLMin:     v.GetInt("session.ttl_min"),
			RedisAddr:  v.GetString("session.redis_addr"),
			RedisPass:  v.GetString("session.redis_pass"),
			RedisDB:    v.GetInt("session.redis_db"),
		},
		SMTP: SMTP{
			Enabled:  v.GetBool("smtp.enabled"),
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			From:     v.GetString("smtp.from"),
			Username: v.GetString("smtp.username"),
			Password: v.GetString("smtp.password"),
		},
		Admin: Admin{
			Username: v.GetString("admin.username"),
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
		LogLevel: v.GetString("log.level"),
	}
	if cfg.Session.HashKey == "" {
		cfg.Session.HashKey = "dev-hash-key-change-me-0123456789ab"
	}
	if cfg.Session.TTLMin <= 0 {
		cfg.Session.TTLMin = 1440
	}
	return cfg
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	// TASKER_DB_PASS overrides db.pass etc.; godotenv in main feeds these
	// during development.
	v.SetEnvPrefix("TASKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

// Watch reloads the file on change and hands the fresh config to apply.
// Only settings read per-request (currently the log level) take effect
// without a restart; listeners and pools keep their startup values.
func Watch(path string, apply func(*Config)) error {
	v, err := newViper(path)
	if err != nil {
		return err
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		apply(fromViper(v))
	})
	v.WatchConfig()
	return nil
}
