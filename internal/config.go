package internal

import (
	"cmp"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defHost           = "0.0.0.0"
	defPort           = 8080
	defDebug          = false
	defMigrationsPath = "migrations"
	defDBPath         = "./data/db.json"
	defTokenTTL       = "24h"
	defSecureProtocol = false
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Host           string `json:"host"            yaml:"host"            toml:"host"`
	Port           int    `json:"port"            yaml:"port"            toml:"port"`
	DNS            string `json:"dns"             yaml:"dns"             toml:"dns"`
	MigratePath    string `json:"migrate_path"    yaml:"migrate_path"    toml:"migrate_path"`
	DBPath         string `json:"db_path"         yaml:"db_path"         toml:"db_path"`
	JWTSecret      string `json:"jwt_secret"      yaml:"jwt_secret"      toml:"jwt_secret"`
	TokenTTL       string `json:"token_ttl"       yaml:"token_ttl"       toml:"token_ttl"`
	Debug          bool   `json:"debug"           yaml:"debug"           toml:"debug"`
	SecureProtocol bool   `json:"secure_protocol" yaml:"secure_protocol" toml:"secure_protocol"`
	CertCert       string `json:"cert_cert"       yaml:"cert_cert"       toml:"cert_cert"`
	KeyCert        string `json:"key_cert"        yaml:"key_cert"        toml:"key_cert"`
}

type Flags struct {
	ConfigPath     string
	Host           string
	Port           int
	DNS            string
	MigratePath    string
	DBPath         string
	JWTSecret      string
	TokenTTL       string
	Debug          bool
	SecureProtocol bool
	CertCert       string
	KeyCert        string
}

// Дефолты не указывал, так как заданы отдельно.
func parseFlags() Flags {
	var flags Flags

	flag.StringVar(&flags.ConfigPath, "c", "", "Path to config file (.json, .yaml, .yml, .toml)")
	flag.StringVar(&flags.Host, "host", "", "Server host")
	flag.IntVar(&flags.Port, "port", 0, "Server port")
	flag.StringVar(&flags.DNS, "dns", "", "Postgres connection string; empty keeps the snapshot in a file")
	flag.StringVar(&flags.MigratePath, "migrate-path", "", "Path to migrations folder")
	flag.StringVar(&flags.DBPath, "db-path", "", "Path to snapshot file")
	flag.StringVar(&flags.JWTSecret, "jwt-secret", "", "Token signing secret")
	flag.StringVar(&flags.TokenTTL, "token-ttl", "", "Token lifetime, e.g. 24h")
	flag.BoolVar(&flags.Debug, "debug", false, "Debug mode")
	flag.BoolVar(&flags.SecureProtocol, "s", false, "Use HTTPS")
	flag.StringVar(&flags.CertCert, "cert", "", "Path to Cert file")
	flag.StringVar(&flags.KeyCert, "key-cert", "", "Path to Cert Key file")

	flag.Parse()

	return flags
}

func configFromFlags(flags *Flags) Config {
	return Config{
		Host:           flags.Host,
		Port:           flags.Port,
		DNS:            flags.DNS,
		MigratePath:    flags.MigratePath,
		DBPath:         flags.DBPath,
		JWTSecret:      flags.JWTSecret,
		TokenTTL:       flags.TokenTTL,
		Debug:          flags.Debug,
		SecureProtocol: flags.SecureProtocol,
		CertCert:       flags.CertCert,
		KeyCert:        flags.KeyCert,
	}
}

func configFromEnv() Config {
	cfg := Config{}

	cfg.Host = os.Getenv("HOST")
	cfg.Port, _ = strconv.Atoi(os.Getenv("PORT"))
	cfg.DNS = os.Getenv("DB_DNS")
	cfg.MigratePath = os.Getenv("MIGRATE_PATH")
	cfg.DBPath = os.Getenv("DB_PATH")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.TokenTTL = os.Getenv("TOKEN_TTL")
	cfg.Debug, _ = strconv.ParseBool(os.Getenv("DEBUG"))
	cfg.SecureProtocol, _ = strconv.ParseBool(os.Getenv("SECURE_PROTOCOL"))
	cfg.CertCert = os.Getenv("CERT_FILE")
	cfg.KeyCert = os.Getenv("KEY_FILE")

	return cfg
}

// configFromFile выбирает формат по расширению, по умолчанию JSON.
func configFromFile(path string) Config {
	cfg := Config{}

	if path == "" {
		log.Info().Msg("Config file path is empty")
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Info().Err(err).Msg("Config file read failed")
		return cfg
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		log.Info().Err(err).Str("path", path).Msg("Config file unmarshal failed")
		return Config{}
	}

	return cfg
}

func defaultConfig() Config {
	return Config{
		Host:           defHost,
		Port:           defPort,
		MigratePath:    defMigrationsPath,
		DBPath:         defDBPath,
		TokenTTL:       defTokenTTL,
		Debug:          defDebug,
		SecureProtocol: defSecureProtocol,
	}
}

// ReadConfig - чтение конфига приложения: флаги > env > файл > дефолты.
// Может не подойти при расширении/изменении, так как про cmp.Or возвращает zero values только после проверки всех аргументов.
func ReadConfig() Config {
	flags := parseFlags()
	return mergeConfig(configFromFlags(&flags), configFromEnv(), configFromFile(flags.ConfigPath), defaultConfig())
}

func mergeConfig(flagCfg, envCfg, fileCfg, defCfg Config) Config {
	config := Config{}

	config.Host = cmp.Or(flagCfg.Host, envCfg.Host, fileCfg.Host, defCfg.Host)
	config.Port = cmp.Or(flagCfg.Port, envCfg.Port, fileCfg.Port, defCfg.Port)
	config.DNS = cmp.Or(flagCfg.DNS, envCfg.DNS, fileCfg.DNS, defCfg.DNS)
	config.MigratePath = cmp.Or(flagCfg.MigratePath, envCfg.MigratePath, fileCfg.MigratePath, defCfg.MigratePath)
	config.DBPath = cmp.Or(flagCfg.DBPath, envCfg.DBPath, fileCfg.DBPath, defCfg.DBPath)
	config.JWTSecret = cmp.Or(flagCfg.JWTSecret, envCfg.JWTSecret, fileCfg.JWTSecret, defCfg.JWTSecret)
	config.TokenTTL = cmp.Or(flagCfg.TokenTTL, envCfg.TokenTTL, fileCfg.TokenTTL, defCfg.TokenTTL)
	config.Debug = cmp.Or(flagCfg.Debug, envCfg.Debug, fileCfg.Debug, defCfg.Debug)
	config.SecureProtocol = cmp.Or(
		flagCfg.SecureProtocol,
		envCfg.SecureProtocol,
		fileCfg.SecureProtocol,
		defCfg.SecureProtocol,
	)
	config.CertCert = cmp.Or(flagCfg.CertCert, envCfg.CertCert, fileCfg.CertCert, defCfg.CertCert)
	config.KeyCert = cmp.Or(flagCfg.KeyCert, envCfg.KeyCert, fileCfg.KeyCert, defCfg.KeyCert)

	if config.CertCert == "" || config.KeyCert == "" {
		config.SecureProtocol = false
	}

	return config
}

// Validate - ошибки здесь фатальны: без секрета сервис не стартует.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if _, err := c.TokenDuration(); err != nil {
		return err
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func (c Config) TokenDuration() (time.Duration, error) {
	if c.TokenTTL == "" {
		return DefaultTokenTTL, nil
	}
	ttl, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid token ttl %q: %w", c.TokenTTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("invalid token ttl %q: must be positive", c.TokenTTL)
	}
	return ttl, nil
}

// Redacted - копия для логов без секрета и пароля в DSN.
func (c Config) Redacted() Config {
	if c.JWTSecret != "" {
		c.JWTSecret = "***"
	}
	if c.DNS != "" {
		c.DNS = "***"
	}
	return c
}
