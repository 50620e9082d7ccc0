// Package config loads the service configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage configures the file-backed key-value store.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Orders configures the order lifecycle manager.
	Orders OrdersConfig `json:"orders" yaml:"orders"`

	// Assistant configures the chat assistant and its remote text-completion
	// collaborator.
	Assistant AssistantConfig `json:"assistant" yaml:"assistant"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where the durable key-value store lives on disk.
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// OrdersConfig defines the order lifecycle timing knobs.
type OrdersConfig struct {
	// ConfirmDelay is how long after placement an order automatically flips
	// from pending to confirmed.
	ConfirmDelay time.Duration `json:"confirmDelay" yaml:"confirmDelay"`

	// DeliveryLeadTime is added to the creation time to produce the
	// estimated delivery date.
	DeliveryLeadTime time.Duration `json:"deliveryLeadTime" yaml:"deliveryLeadTime"`
}

// AssistantConfig defines the remote completion endpoint and the client-side
// throttling policy.
type AssistantConfig struct {
	Endpoint        string        `json:"endpoint" yaml:"endpoint"`
	Model           string        `json:"model" yaml:"model"`
	APIKey          string        `json:"apiKey" yaml:"apiKey"`
	Temperature     float64       `json:"temperature" yaml:"temperature"`
	TopK            int           `json:"topK" yaml:"topK"`
	TopP            float64       `json:"topP" yaml:"topP"`
	MaxOutputTokens int           `json:"maxOutputTokens" yaml:"maxOutputTokens"`
	Cooldown        time.Duration `json:"cooldown" yaml:"cooldown"`
	MaxRetries      int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBaseDelay  time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`
	RequestTimeout  time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Environment variables override file values, HTTP_PORT -> http.port.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "herbwise-store.json"
	}
	if cfg.Orders.ConfirmDelay <= 0 {
		cfg.Orders.ConfirmDelay = 2 * time.Second
	}
	if cfg.Orders.DeliveryLeadTime <= 0 {
		cfg.Orders.DeliveryLeadTime = 7 * 24 * time.Hour
	}

	assistant := &cfg.Assistant
	if assistant.Endpoint == "" {
		assistant.Endpoint = "https://generativelanguage.googleapis.com/v1beta"
	}
	if assistant.Model == "" {
		assistant.Model = "gemini-1.5-pro"
	}
	if assistant.Temperature == 0 {
		assistant.Temperature = 0.7
	}
	if assistant.TopK == 0 {
		assistant.TopK = 40
	}
	if assistant.TopP == 0 {
		assistant.TopP = 0.95
	}
	if assistant.MaxOutputTokens == 0 {
		assistant.MaxOutputTokens = 1024
	}
	if assistant.Cooldown <= 0 {
		assistant.Cooldown = 5 * time.Second
	}
	if assistant.MaxRetries <= 0 {
		assistant.MaxRetries = 3
	}
	if assistant.RetryBaseDelay <= 0 {
		assistant.RetryBaseDelay = time.Second
	}
	if assistant.RequestTimeout <= 0 {
		assistant.RequestTimeout = 30 * time.Second
	}
}
