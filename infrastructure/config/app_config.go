package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// EngineConfig holds the time-normalization engine configuration
type EngineConfig struct {
	// TargetTimezone is the timezone conversion output is expressed in.
	// Empty means the detected system timezone.
	TargetTimezone string `json:"target_timezone,omitempty" env:"GESPOT_TARGET_TIMEZONE"`

	// Area is the bidding-area code used as the secondary "area" timezone
	Area string `json:"area,omitempty" env:"GESPOT_AREA,default=SE3"`

	// GranularityMinutes is the interval length in minutes (5, 15, 30 or 60)
	GranularityMinutes int `json:"granularity_minutes,omitempty" env:"GESPOT_GRANULARITY_MINUTES,default=60"`

	// ReferenceMode selects the clock the current interval is computed
	// against (home_assistant_time or local_area_time)
	ReferenceMode string `json:"reference_mode,omitempty" env:"GESPOT_REFERENCE_MODE,default=home_assistant_time"`

	// LookupFile is the optional path to a JSON file with extra
	// area/source timezone tables
	LookupFile string `json:"lookup_file,omitempty" env:"GESPOT_LOOKUP_FILE"`
}

// PrometheusConfig holds Prometheus Remote Write configuration
type PrometheusConfig struct {
	// RemoteWriteURL is the Prometheus Remote Write endpoint URL. Empty
	// disables metrics entirely.
	RemoteWriteURL string `json:"remote_write_url" env:"GESPOT_PROMETHEUS_REMOTE_WRITE_URL"`

	// RemoteWriteUsername is the username for Remote Write authentication
	RemoteWriteUsername string `json:"remote_write_username" env:"GESPOT_PROMETHEUS_REMOTE_WRITE_USERNAME"`

	// RemoteWritePassword is the password for Remote Write authentication
	RemoteWritePassword string `json:"remote_write_password" env:"GESPOT_PROMETHEUS_REMOTE_WRITE_PASSWORD"`

	// HostLabel is the host label value for metrics
	HostLabel string `json:"host_label,omitempty" env:"GESPOT_PROMETHEUS_HOST_LABEL"`

	// TimeoutSec is the timeout in seconds for metric pushes
	TimeoutSec int `json:"timeout_seconds,omitempty" env:"GESPOT_PROMETHEUS_TIMEOUT_SECONDS,default=30"`
}

// PromtailConfig holds Promtail logging configuration
type PromtailConfig struct {
	// URL is the Promtail push endpoint URL. Empty disables remote
	// logging.
	URL string `json:"url" env:"GESPOT_LOKI_URL"`

	// Username is the username for basic authentication
	Username string `json:"username" env:"GESPOT_LOKI_USERNAME"`

	// Password is the password for basic authentication
	Password string `json:"password" env:"GESPOT_LOKI_PASSWORD"`

	// BatchWaitSeconds is the time to wait before sending a batch
	BatchWaitSeconds int `json:"batch_wait_seconds,omitempty" env:"GESPOT_LOKI_BATCH_WAIT_SECONDS,default=1"`

	// BatchCapacity is the maximum number of log entries in a batch
	BatchCapacity int `json:"batch_capacity,omitempty" env:"GESPOT_LOKI_BATCH_CAPACITY,default=100"`

	// TimeoutSeconds is the timeout for sending logs
	TimeoutSeconds int `json:"timeout_seconds,omitempty" env:"GESPOT_LOKI_TIMEOUT_SECONDS,default=5"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level,omitempty" env:"GESPOT_LOG_LEVEL,default=info"`

	// Debug enables debug mode with stdout logging
	Debug bool `json:"debug,omitempty" env:"GESPOT_LOG_DEBUG,default=false"`

	// Promtail holds Promtail configuration
	Promtail *PromtailConfig `json:"promtail,omitempty"`
}

// AppConfig holds application configuration
type AppConfig struct {
	// Engine holds the engine configuration
	Engine *EngineConfig `json:"engine,omitempty"`

	// Prometheus holds Prometheus Remote Write configuration
	Prometheus *PrometheusConfig `json:"prometheus,omitempty"`

	// Logging holds logging configuration
	Logging *LoggingConfig `json:"logging,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Engine: &EngineConfig{
			TargetTimezone:     "",
			Area:               "SE3",
			GranularityMinutes: 60,
			ReferenceMode:      string(valueobject.ReferenceModeHomeAssistantTime),
			LookupFile:         "",
		},
		Prometheus: &PrometheusConfig{
			RemoteWriteURL:      "",
			RemoteWriteUsername: "",
			RemoteWritePassword: "",
			HostLabel:           "",
			TimeoutSec:          30,
		},
		Logging: &LoggingConfig{
			Level: "info",
			Debug: false,
			Promtail: &PromtailConfig{
				URL:              "",
				BatchWaitSeconds: 1,
				BatchCapacity:    100,
				TimeoutSeconds:   5,
			},
		},
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadFromEnv loads configuration from environment variables using
// Netflix/go-env. Nested structs are unmarshaled separately because go-env
// does not descend through pointers.
func (c *AppConfig) LoadFromEnv() error {
	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if c.Engine != nil {
		if _, err := env.UnmarshalFromEnviron(c.Engine); err != nil {
			return fmt.Errorf("failed to unmarshal engine environment variables: %w", err)
		}
	}

	if c.Prometheus != nil {
		if _, err := env.UnmarshalFromEnviron(c.Prometheus); err != nil {
			return fmt.Errorf("failed to unmarshal Prometheus environment variables: %w", err)
		}
	}

	if c.Logging != nil {
		if _, err := env.UnmarshalFromEnviron(c.Logging); err != nil {
			return fmt.Errorf("failed to unmarshal logging environment variables: %w", err)
		}
		if c.Logging.Promtail != nil {
			if _, err := env.UnmarshalFromEnviron(c.Logging.Promtail); err != nil {
				return fmt.Errorf("failed to unmarshal Promtail environment variables: %w", err)
			}
		}
	}

	return nil
}

// Validate validates the configuration
func (c *AppConfig) Validate() error {
	if c.Engine != nil {
		if err := c.validateEngine(); err != nil {
			return err
		}
	}

	if c.Prometheus != nil {
		if err := c.validatePrometheus(); err != nil {
			return err
		}
	}

	if c.Logging != nil {
		if err := c.validateLogging(); err != nil {
			return err
		}
	}

	return nil
}

// validateEngine validates the engine configuration
func (c *AppConfig) validateEngine() error {
	if _, err := valueobject.ParseGranularity(c.Engine.GranularityMinutes); err != nil {
		return fmt.Errorf("invalid granularity: %d minutes (must be 5, 15, 30 or 60)", c.Engine.GranularityMinutes)
	}

	if _, err := valueobject.ParseReferenceMode(c.Engine.ReferenceMode); err != nil {
		return fmt.Errorf("invalid reference mode: %s (must be home_assistant_time or local_area_time)", c.Engine.ReferenceMode)
	}

	if c.Engine.TargetTimezone != "" {
		if _, err := time.LoadLocation(c.Engine.TargetTimezone); err != nil {
			return fmt.Errorf("target timezone is invalid: %w", err)
		}
	}

	if c.Engine.Area == "" {
		return fmt.Errorf("area cannot be empty")
	}

	return nil
}

// validatePrometheus validates the Prometheus configuration
func (c *AppConfig) validatePrometheus() error {
	// Empty URL means metrics are disabled.
	if c.Prometheus.RemoteWriteURL == "" {
		return nil
	}

	if c.Prometheus.TimeoutSec < 1 {
		return fmt.Errorf("prometheus timeout must be at least 1 second")
	}

	if c.Prometheus.RemoteWriteUsername == "" || c.Prometheus.RemoteWritePassword == "" {
		return fmt.Errorf("remote write username and password are required when remote write URL is set")
	}

	return nil
}

// validateLogging validates the logging configuration
func (c *AppConfig) validateLogging() error {
	if c.Logging.Level != "" {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[c.Logging.Level] {
			return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
		}
	}

	if c.Logging.Promtail != nil {
		// Empty URL means remote logging is disabled.
		if c.Logging.Promtail.URL == "" {
			return nil
		}

		if c.Logging.Promtail.BatchWaitSeconds < 1 {
			return fmt.Errorf("promtail batch wait must be at least 1 second")
		}
		if c.Logging.Promtail.BatchCapacity < 1 {
			return fmt.Errorf("promtail batch capacity must be at least 1")
		}
		if c.Logging.Promtail.TimeoutSeconds < 1 {
			return fmt.Errorf("promtail timeout must be at least 1 second")
		}
	}

	return nil
}

// Granularity returns the configured interval granularity. Validate must
// have passed.
func (c *AppConfig) Granularity() valueobject.Granularity {
	g, err := valueobject.ParseGranularity(c.Engine.GranularityMinutes)
	if err != nil {
		return valueobject.Granularity60
	}
	return g
}

// Mode returns the configured reference mode. Validate must have passed.
func (c *AppConfig) Mode() valueobject.ReferenceMode {
	mode, err := valueobject.ParseReferenceMode(c.Engine.ReferenceMode)
	if err != nil {
		return valueobject.ReferenceModeHomeAssistantTime
	}
	return mode
}
