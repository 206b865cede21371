package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	logcfg "github.com/ncobase/svcresp/logging/logger/config"
	"github.com/spf13/viper"
)

type ctxKey struct{}

// config and v are the process-wide configuration and the viper instance it
// was read from. Both are guarded by mu.
var (
	config *Config
	path   string
	mu     sync.Mutex
	v      *viper.Viper
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Logger   *logcfg.Config
	Response *Response
	Viper    *viper.Viper
}

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetEnvPrefix("SVCRESP")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()
	return nv
}

// SetPath sets the file used by GetConfig and Reload.
func SetPath(p string) {
	mu.Lock()
	defer mu.Unlock()
	path = p
	config = nil
	v = nil
}

// GetConfig returns the configuration, loading it on first use.
// It does not handle errors internally; instead, it returns the error for the caller to handle.
func GetConfig() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	return config, nil
}

// ensureLoaded loads the configuration at path. The caller must hold mu.
func ensureLoaded() error {
	if config != nil {
		return nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	config, v = cfg, cfg.Viper
	return nil
}

// BindConfigToContext binds the configuration to the context.
func BindConfigToContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the configuration bound to ctx, if any.
func FromContext(ctx context.Context) (*Config, bool) {
	cfg, ok := ctx.Value(ctxKey{}).(*Config)
	return cfg, ok
}

// LoadConfig loads the configuration from the file into a new Config.
// It does not touch the process-wide configuration.
func LoadConfig(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath("/etc/svcresp")
		v.AddConfigPath("$HOME/.svcresp")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	resp, err := getResponseConfig(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		AppName:  getStringOrDefault(v, "app_name", "svcresp"),
		RunMode:  getStringOrDefault(v, "run_mode", "release"),
		Logger:   logcfg.GetConfig(v),
		Response: resp,
		Viper:    v,
	}, nil
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	newConfig, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config, v = newConfig, newConfig.Viper
	return nil
}

// Watch watches the configuration file and reloads it when it changes,
// loading the configuration first if GetConfig has not been called yet.
// callback receives each reloaded configuration. onError receives reload
// failures; the previous configuration stays active.
func Watch(callback func(*Config), onError func(error)) error {
	mu.Lock()
	if err := ensureLoaded(); err != nil {
		mu.Unlock()
		return err
	}
	watched := v
	mu.Unlock()

	if watched.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}

	watched.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := Reload(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		mu.Lock()
		cfg := config
		mu.Unlock()
		if callback != nil {
			callback(cfg)
		}
	})
	watched.WatchConfig()
	return nil
}
