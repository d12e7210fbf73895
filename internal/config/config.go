// Package config loads service settings from configs/config.yml and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"thermostat_api/internal/logger"
	"thermostat_api/internal/validation"

	"github.com/spf13/viper"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"

	configName = "config"
	configType = "yml"
	configDir  = "configs"

	maxStreamInterval = 10 * time.Second
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port      int             `mapstructure:"port"`
	Debug     bool            `mapstructure:"debug"`
	Version   string          `mapstructure:"version"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Initial   InitialConfig   `mapstructure:"initial"`
	Bounds    BoundsConfig    `mapstructure:"bounds"`
	Indicator IndicatorConfig `mapstructure:"indicator"`
	History   HistoryConfig   `mapstructure:"history"`
	Log       LogConfig       `mapstructure:"log"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
	WS        WSConfig        `mapstructure:"ws"`
}

type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	JSONPath   string `mapstructure:"json_path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type InitialConfig struct {
	Ambient int     `mapstructure:"ambient"`
	Target  int     `mapstructure:"target"`
	Battery float64 `mapstructure:"battery"`
}

type IntBounds struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

type FloatBounds struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

type BoundsConfig struct {
	Ambient IntBounds   `mapstructure:"ambient"`
	Target  IntBounds   `mapstructure:"target"`
	Battery FloatBounds `mapstructure:"battery"`
}

type IndicatorConfig struct {
	Levels          int     `mapstructure:"levels"`
	NormalThreshold float64 `mapstructure:"normal_threshold"`
	LowThreshold    float64 `mapstructure:"low_threshold"`
}

type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MQTTConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Topic    string `mapstructure:"topic"`
	QoS      int    `mapstructure:"qos"`
	Retained bool   `mapstructure:"retained"`
}

type WSConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 5050)
	v.SetDefault("debug", true)
	v.SetDefault("version", "1.0.0")

	v.SetDefault("storage.driver", DriverJSON)
	v.SetDefault("storage.json_path", "data/termostato_estado.json")
	v.SetDefault("storage.sqlite_path", "data/termostato.db")

	v.SetDefault("initial.ambient", 20)
	v.SetDefault("initial.target", 24)
	v.SetDefault("initial.battery", 5.0)

	v.SetDefault("bounds.ambient.min", 0)
	v.SetDefault("bounds.ambient.max", 50)
	v.SetDefault("bounds.target.min", 15)
	v.SetDefault("bounds.target.max", 30)
	v.SetDefault("bounds.battery.min", 0.0)
	v.SetDefault("bounds.battery.max", 5.0)

	v.SetDefault("indicator.levels", 3)
	v.SetDefault("indicator.normal_threshold", 3.5)
	v.SetDefault("indicator.low_threshold", 2.5)

	v.SetDefault("history.capacity", 100)

	v.SetDefault("log.level", logger.InfoLevel)

	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "termostato-api")
	v.SetDefault("mqtt.topic", "termostato/estado")
	v.SetDefault("mqtt.qos", 1)
	v.SetDefault("mqtt.retained", false)

	v.SetDefault("ws.interval", time.Second)
}

// legacyEnv maps keys to the flat variable names older deployments set.
var legacyEnv = map[string]string{
	"initial.ambient":            "TEMPERATURA_AMBIENTE_INICIAL",
	"initial.target":             "TEMPERATURA_DESEADA_INICIAL",
	"initial.battery":            "CARGA_BATERIA_INICIAL",
	"bounds.ambient.min":         "TEMPERATURA_AMBIENTE_MIN",
	"bounds.ambient.max":         "TEMPERATURA_AMBIENTE_MAX",
	"bounds.target.min":          "TEMPERATURA_DESEADA_MIN",
	"bounds.target.max":          "TEMPERATURA_DESEADA_MAX",
	"bounds.battery.min":         "CARGA_BATERIA_MIN",
	"bounds.battery.max":         "CARGA_BATERIA_MAX",
	"indicator.normal_threshold": "INDICADOR_UMBRAL_NORMAL",
	"indicator.low_threshold":    "INDICADOR_UMBRAL_BAJO",
	"storage.json_path":          "PERSISTENCIA_RUTA",
}

// Load reads config.yml from the given directories (configs/ when none) and
// applies environment overrides. A missing file is not an error.
func Load(dirs ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if len(dirs) == 0 {
		dirs = []string{configDir}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidationBounds converts the configured limits into validation bounds.
func (c *Config) ValidationBounds() validation.Bounds {
	return validation.Bounds{
		Ambient: validation.IntRange{Min: c.Bounds.Ambient.Min, Max: c.Bounds.Ambient.Max},
		Target:  validation.IntRange{Min: c.Bounds.Target.Min, Max: c.Bounds.Target.Max},
		Battery: validation.FloatRange{Min: c.Bounds.Battery.Min, Max: c.Bounds.Battery.Max},
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, "port must be between 1 and 65535")
	}

	bounds := c.ValidationBounds()
	if err := bounds.Validate(); err != nil {
		errs = append(errs, err.Error())
	} else {
		if c.Initial.Ambient < bounds.Ambient.Min || c.Initial.Ambient > bounds.Ambient.Max {
			errs = append(errs, fmt.Sprintf("initial.ambient %d outside %d..%d", c.Initial.Ambient, bounds.Ambient.Min, bounds.Ambient.Max))
		}
		if c.Initial.Target < bounds.Target.Min || c.Initial.Target > bounds.Target.Max {
			errs = append(errs, fmt.Sprintf("initial.target %d outside %d..%d", c.Initial.Target, bounds.Target.Min, bounds.Target.Max))
		}
		if c.Initial.Battery < bounds.Battery.Min || c.Initial.Battery > bounds.Battery.Max {
			errs = append(errs, fmt.Sprintf("initial.battery %v outside %v..%v", c.Initial.Battery, bounds.Battery.Min, bounds.Battery.Max))
		}
	}

	switch c.Storage.Driver {
	case DriverJSON:
		if c.Storage.JSONPath == "" {
			errs = append(errs, "storage.json_path is required for the json driver")
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, "storage.sqlite_path is required for the sqlite driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("storage.driver must be %q or %q, got %q", DriverJSON, DriverSQLite, c.Storage.Driver))
	}

	switch c.Indicator.Levels {
	case 3:
		if c.Indicator.LowThreshold > c.Indicator.NormalThreshold {
			errs = append(errs, "indicator.low_threshold must not exceed indicator.normal_threshold")
		}
	case 5:
	default:
		errs = append(errs, fmt.Sprintf("indicator.levels must be 3 or 5, got %d", c.Indicator.Levels))
	}

	if c.History.Capacity <= 0 {
		errs = append(errs, "history.capacity must be positive")
	}
	if !logger.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.Enabled && (c.MQTT.Broker == "" || c.MQTT.Topic == "") {
		errs = append(errs, "mqtt.broker and mqtt.topic are required when mqtt is enabled")
	}
	if c.WS.Interval <= 0 || c.WS.Interval > maxStreamInterval {
		errs = append(errs, fmt.Sprintf("ws.interval must be in (0, %s]", maxStreamInterval))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
