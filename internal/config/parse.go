package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/dev-server/internal/validator"
)

const (
	EnvPrefix     = "DEVSERVER"
	EnvConfigPath = EnvPrefix + "_CONFIG"
	EnvFilePath   = EnvPrefix + "_ENV_FILE"
	dotEnvFile    = ".env"
)

func ParseAndValidate(filename string) (Config, error) {
	var conf Config
	if _, err := toml.DecodeFile(filename, &conf); err != nil {
		return conf, err
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

// Load builds the configuration rooted at documentRoot. Sources are applied in order:
// defaults, the .env file (DEVSERVER_ENV_FILE or .env of the working directory), the TOML
// file named by DEVSERVER_CONFIG, DEVSERVER_* environment variables.
//
// The .env file is never looked up in the document root: everything there is public.
func Load(documentRoot string) (Config, error) {
	conf := Default(documentRoot)

	envFile := os.Getenv(EnvFilePath)
	if envFile == "" {
		envFile = dotEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return conf, fmt.Errorf("load %s: %v", envFile, err)
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		if _, err := toml.DecodeFile(path, &conf); err != nil {
			return conf, fmt.Errorf("decode %q: %v", path, err)
		}
	}

	if err := applyEnv(&conf); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

// envOverrides keeps variable names prefixed only: envconfig falls back to the bare
// name for fields with an explicit envconfig tag, so a stray PORT must not win.
type envOverrides struct {
	Env               string        `split_words:"true"`
	LogLevel          string        `split_words:"true"`
	SentryDsn         string        `split_words:"true"`
	BindAddr          string        `split_words:"true"`
	Port              int           `split_words:"true"`
	DocumentRoot      string        `split_words:"true"`
	MaxConnections    int           `split_words:"true"`
	ReadHeaderTimeout time.Duration `split_words:"true"`
	IdleTimeout       time.Duration `split_words:"true"`
	Compress          bool          `split_words:"true"`
	OpenBrowser       bool          `split_words:"true"`
	ServeDotfiles     bool          `split_words:"true"`
	DebugAddr         string        `split_words:"true"`
}

// applyEnv overrides conf with the DEVSERVER_* variables that are set.
func applyEnv(conf *Config) error {
	static := &conf.Servers.Static

	e := envOverrides{
		Env:               conf.Global.Env,
		LogLevel:          conf.Log.Level,
		SentryDsn:         conf.Sentry.Dsn,
		BindAddr:          static.BindAddr,
		Port:              static.Port,
		DocumentRoot:      static.DocumentRoot,
		MaxConnections:    static.MaxConnections,
		ReadHeaderTimeout: static.ReadHeaderTimeout,
		IdleTimeout:       static.IdleTimeout,
		Compress:          static.Compress,
		OpenBrowser:       static.OpenBrowser,
		ServeDotfiles:     static.ServeDotfiles,
		DebugAddr:         conf.Servers.Debug.Addr,
	}
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return err
	}

	conf.Global.Env = e.Env
	conf.Log.Level = e.LogLevel
	conf.Sentry.Dsn = e.SentryDsn
	static.BindAddr = e.BindAddr
	static.Port = e.Port
	static.DocumentRoot = e.DocumentRoot
	static.MaxConnections = e.MaxConnections
	static.ReadHeaderTimeout = e.ReadHeaderTimeout
	static.IdleTimeout = e.IdleTimeout
	static.Compress = e.Compress
	static.OpenBrowser = e.OpenBrowser
	static.ServeDotfiles = e.ServeDotfiles
	conf.Servers.Debug.Addr = e.DebugAddr

	return nil
}

// ExecutableDir returns the absolute directory of the running binary with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %v", err)
	}

	return filepath.Abs(filepath.Dir(exe))
}
