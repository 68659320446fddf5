package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the long form of every environment variable, e.g.
// FLEETSEED_SEED_DEDUPE.
const EnvPrefix = "FLEETSEED"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Log      Log      `json:"log" mapstructure:"log"`
}

type Database struct {
	Host     string            `json:"host" mapstructure:"host"`
	Port     int               `json:"port" mapstructure:"port"`
	User     string            `json:"user" mapstructure:"user"`
	Password string            `json:"-" mapstructure:"password"`
	Name     string            `json:"name" mapstructure:"name"`
	Params   map[string]string `json:"params,omitempty" mapstructure:"params"`
}

type Seed struct {
	RandomSeed  int64          `json:"random_seed" mapstructure:"random_seed"` // 0 picks a random seed
	Counts      map[string]int `json:"counts,omitempty" mapstructure:"counts"`
	Tables      []string       `json:"tables,omitempty" mapstructure:"tables"`
	WithParents bool           `json:"with_parents" mapstructure:"with_parents"`
	Dedupe      string         `json:"dedupe" mapstructure:"dedupe"`
	DryRun      bool           `json:"dry_run" mapstructure:"dry_run"`
	Report      string         `json:"report,omitempty" mapstructure:"report"`
	Progress    bool           `json:"progress" mapstructure:"progress"`
}

type Log struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// SetDefaults registers every key with its default so environment variables
// are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("seed.random_seed", 0)
	v.SetDefault("seed.with_parents", false)
	v.SetDefault("seed.dedupe", "tuple")
	v.SetDefault("seed.dry_run", false)
	v.SetDefault("seed.report", "")
	v.SetDefault("seed.progress", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// BindEnv maps the short connection variables (HOST, USER, PASSWORD,
// DATABASE, PORT) and their FLEETSEED_ forms onto the database keys. The
// prefixed form wins when both are set.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"database.host":     "HOST",
		"database.port":     "PORT",
		"database.user":     "USER",
		"database.password": "PASSWORD",
		"database.name":     "DATABASE",
	}
	for key, short := range bindings {
		long := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, long, short); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = 3306
	}
	if cfg.Seed.Dedupe == "" {
		cfg.Seed.Dedupe = "tuple"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	cfg.Seed.Dedupe = strings.ToLower(cfg.Seed.Dedupe)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	return &cfg, nil
}

// Validate checks everything a seeding run needs.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Seed.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func (d Database) Validate() error {
	var missing []string
	if d.Host == "" {
		missing = append(missing, "host (HOST)")
	}
	if d.User == "" {
		missing = append(missing, "user (USER)")
	}
	if d.Name == "" {
		missing = append(missing, "database (DATABASE)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing database %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	if d.Port < 1 || d.Port > 65535 {
		return fmt.Errorf("%w: database port %d out of range", ErrInvalidConfig, d.Port)
	}
	return nil
}

func (s Seed) Validate() error {
	switch s.Dedupe {
	case "tuple", "key":
	default:
		return fmt.Errorf("%w: unknown dedupe mode %q (use tuple or key)", ErrInvalidConfig, s.Dedupe)
	}
	for table, n := range s.Counts {
		if n < 0 {
			return fmt.Errorf("%w: negative count %d for %s", ErrInvalidConfig, n, table)
		}
	}
	return nil
}

func (l Log) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, l.Level)
	}
	switch l.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, l.Format)
	}
	return nil
}

// Addr returns host:port. A host that already carries a port is kept as is.
func (d Database) Addr() string {
	if _, _, err := net.SplitHostPort(d.Host); err == nil {
		return d.Host
	}
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// DSN returns the go-sql-driver/mysql data source name.
func (d Database) DSN() string {
	mc := mysql.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = d.Addr()
	mc.DBName = d.Name
	mc.ParseTime = true
	if len(d.Params) > 0 {
		mc.Params = d.Params
	}
	return mc.FormatDSN()
}

// String describes the target without the password.
func (d Database) String() string {
	return fmt.Sprintf("%s@%s/%s", d.User, d.Addr(), d.Name)
}
