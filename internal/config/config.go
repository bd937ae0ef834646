package config

import (
	"net"
	"strconv"
	"time"
)

const (
	DefaultPort              = 8000
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultIdleTimeout       = time.Minute
)

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Sentry  SentryConfig  `toml:"sentry"`
	Servers ServersConfig `toml:"servers"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Static StaticServerConfig `toml:"static"`
	Debug  DebugServerConfig  `toml:"debug"`
}

type StaticServerConfig struct {
	// BindAddr is the interface to listen on, empty means all interfaces.
	BindAddr          string        `toml:"bind_addr" validate:"omitempty,ip"`
	Port              int           `toml:"port" validate:"min=1,max=65535"`
	DocumentRoot      string        `toml:"document_root" validate:"required,abs_dir"`
	MaxConnections    int           `toml:"max_connections" validate:"min=0"`
	ReadHeaderTimeout time.Duration `toml:"read_header_timeout" validate:"min=0"`
	IdleTimeout       time.Duration `toml:"idle_timeout" validate:"min=0"`
	Compress          bool          `toml:"compress"`
	OpenBrowser       bool          `toml:"open_browser"`
	// ServeDotfiles exposes files and directories whose name starts with a dot.
	ServeDotfiles     bool          `toml:"serve_dotfiles"`
}

// Addr returns the listen address in host:port form.
func (c StaticServerConfig) Addr() string {
	return net.JoinHostPort(c.BindAddr, strconv.Itoa(c.Port))
}

// URL returns the address a local browser should use to reach the server.
func (c StaticServerConfig) URL() string {
	host := c.BindAddr
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}

type DebugServerConfig struct {
	// Addr of the debug server, empty disables it.
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration the server runs with when nothing is overridden.
func Default(documentRoot string) Config {
	return Config{
		Global: GlobalConfig{Env: "dev"},
		Log:    LogConfig{Level: "info"},
		Servers: ServersConfig{
			Static: StaticServerConfig{
				Port:              DefaultPort,
				DocumentRoot:      documentRoot,
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
				IdleTimeout:       DefaultIdleTimeout,
			},
		},
	}
}
