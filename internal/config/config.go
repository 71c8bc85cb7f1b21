// Package config loads dashboard settings from environment variables.
// Defaults cover a local run against the public dataset; Validate reports
// every problem at once so a bad deployment fails on startup.
package config

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Dashboard DashboardConfig
	Rate      RateLimitConfig
	Security  SecurityConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 20s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"20s"`
}

// DatasetConfig selects where the salary rows come from.
type DatasetConfig struct {
	// Source is an http(s) URL, a postgres:// DSN, or a local CSV path.
	// Defaults to the public survey export.
	Source string `env:"DATASET_SOURCE" envAlt:"DATASET_URL" default:"https://raw.githubusercontent.com/vqrca/dashboard_salarios_dados/refs/heads/main/dados-imersao-final.csv"`

	// Table is the relation read when Source is a postgres DSN
	Table string `env:"DATASET_TABLE"`

	// FetchTimeout bounds the initial load (default: 60s)
	FetchTimeout time.Duration `env:"DATASET_FETCH_TIMEOUT" default:"60s"`

	// Preload loads the dataset before the server listens and exits on
	// failure. When false the first requests trigger one shared load.
	Preload bool `env:"DATASET_PRELOAD" default:"true"`
}

// DashboardConfig holds presentation settings.
type DashboardConfig struct {
	// Title is shown in the page header
	Title string `env:"DASHBOARD_TITLE" default:"Dashboard de Salários na Área de Dados"`

	// FocusRole is the role used by the per-country chart (default: Data Scientist)
	FocusRole string `env:"DASHBOARD_FOCUS_ROLE" default:"Data Scientist"`

	// TopRoles is how many roles the ranking chart shows (default: 10)
	TopRoles int `env:"DASHBOARD_TOP_ROLES" default:"10"`

	// HistogramBins is the salary histogram resolution (default: 30)
	HistogramBins int `env:"DASHBOARD_HISTOGRAM_BINS" default:"30"`

	// PageSize is the number of detail rows per page (default: 50)
	PageSize int `env:"DASHBOARD_PAGE_SIZE" default:"50"`

	// ApplyCompanySize makes the company-size filter constrain results.
	// Set to false to show every company size regardless of selection.
	ApplyCompanySize bool `env:"FILTER_APPLY_COMPANY_SIZE" default:"true"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the sustained rate limit per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// Burst is how many requests an IP may make back to back (default: 20)
	Burst int `env:"RATE_LIMIT_BURST" default:"20"`

	// ExportPerMinute is the per-IP limit for CSV exports (default: 10)
	ExportPerMinute int `env:"RATE_LIMIT_EXPORT" default:"10"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs or
	// single addresses
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ProxyPrefixes parses TrustedProxies. A bare address becomes a
// single-host prefix.
func (c *SecurityConfig) ProxyPrefixes() ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, e := range c.TrustedProxies {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if p, err := netip.ParsePrefix(e); err == nil {
			out = append(out, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q is not a CIDR or IP address", e)
		}
		a = a.Unmap()
		out = append(out, netip.PrefixFrom(a, a.BitLen()))
	}
	return out, nil
}

// IsDatabase reports whether the source is a postgres DSN.
func (c *DatasetConfig) IsDatabase() bool {
	return strings.HasPrefix(c.Source, "postgres://") || strings.HasPrefix(c.Source, "postgresql://")
}
