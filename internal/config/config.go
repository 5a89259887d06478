package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// APIKeyEnv is the environment variable holding the annotation service key.
const APIKeyEnv = "GOOGLE_CLOUD_API_KEY"

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Vision  *VisionConfig  `mapstructure:"vision"`
	Catalog *CatalogConfig `mapstructure:"catalog"`

	v *viper.Viper
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	MaxUploadBytes     int64    `mapstructure:"max_upload_bytes"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type VisionConfig struct {
	Endpoint         string        `mapstructure:"endpoint"`
	LabelMaxResults  int           `mapstructure:"label_max_results"`
	ObjectMaxResults int           `mapstructure:"object_max_results"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

type CatalogConfig struct {
	Items []CatalogItemConfig `mapstructure:"items"`
}

type CatalogItemConfig struct {
	ID   uint   `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// Load reads the YAML file at path. Every key may be overridden from the
// environment, e.g. api.port by API_PORT.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("vision.api_key", APIKeyEnv); err != nil {
		return nil, fmt.Errorf("v.BindEnv -> %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{v: v}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}

// Watch logs changes of the config file. Values read through the accessors
// below, such as the API key, follow the file without a restart.
func (c *AppConfig) Watch() {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	c.v.WatchConfig()
}

// VisionAPIKey is resolved on every call: environment first, then the file.
func (c *AppConfig) VisionAPIKey() string {
	if c.v == nil {
		return ""
	}

	return c.v.GetString("vision.api_key")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.max_upload_bytes", 10<<20)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("vision.endpoint", "https://vision.googleapis.com/v1/images:annotate")
	v.SetDefault("vision.label_max_results", 10)
	v.SetDefault("vision.object_max_results", 10)
	v.SetDefault("vision.timeout", 0)
	v.SetDefault("vision.api_key", "")
}
