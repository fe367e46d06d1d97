package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080" required:"true"`

	// Data points at the snapshots loaded at startup.
	Data DataConfig `mapstructure:",squash"`

	// Blob holds the package persistence settings.
	Blob BlobConfig `mapstructure:",squash"`

	// Search holds the outbound search provider settings.
	Search SearchConfig `mapstructure:",squash"`

	// DelayScan holds the scheduled delay sweep settings.
	DelayScan DelayScanConfig `mapstructure:",squash"`
}

// DataConfig holds the snapshot sources and the classifier reference instant.
type DataConfig struct {
	// ShipmentsFile is the path of the shipment snapshot. Empty means the embedded snapshot.
	ShipmentsFile string `mapstructure:"SHIPMENTS_FILE"`
	// CatalogFile is the path of the product catalog. Empty means the embedded catalog.
	CatalogFile string `mapstructure:"CATALOG_FILE"`
	// ReferenceTime is the RFC 3339 instant delay detection evaluates against.
	// Empty means wall-clock time.
	ReferenceTime string `mapstructure:"REFERENCE_TIME" default:"2026-02-28T12:00:00Z"`
}

// BlobConfig holds the Redis connection used to persist optimisation packages.
type BlobConfig struct {
	// RedisURL is redis://[:password@]host[:port][/database]. Empty disables persistence.
	RedisURL string `mapstructure:"REDIS_URL"`
	// TTLSeconds is the expiry of saved packages. 0 keeps them until deleted.
	TTLSeconds int `mapstructure:"BLOB_TTL_SECONDS" default:"0"`
}

// SearchConfig holds the search and page reader providers.
type SearchConfig struct {
	// APIKey is the Serper API key. Empty disables outbound search.
	APIKey string `mapstructure:"SERPER_API_KEY"`
	// URL is the Serper base URL.
	URL string `mapstructure:"SERPER_URL" default:"https://google.serper.dev"`
	// ReaderURL is the base URL of the page-to-text reader.
	ReaderURL string `mapstructure:"READER_URL" default:"https://r.jina.ai"`
	// BrandName is matched against result titles.
	BrandName string `mapstructure:"BRAND_NAME" default:"pandora"`
	// BrandDomain is matched against result links.
	BrandDomain string `mapstructure:"BRAND_DOMAIN" default:"pandora.net"`
	// TimeoutSeconds bounds each outbound request.
	TimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"15"`
}

// DelayScanConfig holds the cron sweep that flags delayed shipments to ops.
type DelayScanConfig struct {
	Enabled   bool   `mapstructure:"DELAY_SCAN_ENABLED" default:"true"`
	Schedule  string `mapstructure:"DELAY_SCAN_SCHEDULE" default:"@every 15m"`
	Threshold string `mapstructure:"DELAY_SCAN_THRESHOLD" default:"critical"`
}

// Timeout returns the outbound request timeout.
func (s SearchConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// TTL returns the blob expiry.
func (b BlobConfig) TTL() time.Duration {
	return time.Duration(b.TTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// An empty REFERENCE_TIME must switch the classifier to wall-clock time.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Data.ReferenceTime != "" {
		if _, err := time.Parse(time.RFC3339, config.Data.ReferenceTime); err != nil {
			return nil, fmt.Errorf("invalid REFERENCE_TIME %q: %w", config.Data.ReferenceTime, err)
		}
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers its default.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue, hasDefault := field.Tag.Lookup("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if hasDefault {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
