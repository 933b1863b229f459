// Package config provides viper-backed configuration for digest.
//
// Settings come from (highest priority first): environment variables,
// an optional config file, and built-in defaults. Credentials are never
// cached; see credentials.go.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper instance, binds environment variables and
// reads the first config file found. A missing config file is not an error.
func Initialize() error {
	v = viper.New()

	v.SetConfigType("yaml")
	v.SetEnvPrefix("DIGEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindCredentialEnv(v)

	if path := findConfigFile(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("aha.base_url", "")
	v.SetDefault("confluence.base_url", "")
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("display.date_format", "1/2/2006")
	v.SetDefault("display.no_pager", false)
	v.SetDefault("output.format", "text")
}

// bindCredentialEnv maps the unprefixed credential variables onto config keys.
// Viper consults bound variables on every Get, so values are re-read per call.
func bindCredentialEnv(v *viper.Viper) {
	_ = v.BindEnv(keyAhaSubdomain, EnvAhaSubdomain)
	_ = v.BindEnv(keyAhaToken, EnvAhaToken)
	_ = v.BindEnv(keyConfluenceDomain, EnvConfluenceDomain)
	_ = v.BindEnv(keyConfluenceEmail, EnvConfluenceEmail)
	_ = v.BindEnv(keyConfluenceToken, EnvConfluenceToken)
}

// findConfigFile returns the first existing config file, or "".
// Search order: $DIGEST_CONFIG, ./digest.yaml, $XDG_CONFIG_HOME/digest/config.yaml,
// ~/.config/digest/config.yaml.
func findConfigFile() string {
	if path := os.Getenv("DIGEST_CONFIG"); path != "" {
		return path
	}

	candidates := []string{"digest.yaml"}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "digest", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "digest", "config.yaml"))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// LoadDotEnv loads KEY=VALUE pairs from a .env file into the process
// environment. Variables that are already set win.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

func ensure() *viper.Viper {
	if v == nil {
		_ = Initialize()
	}
	return v
}

// GetString retrieves a string configuration value.
func GetString(key string) string {
	return ensure().GetString(key)
}

// GetBool retrieves a boolean configuration value.
func GetBool(key string) bool {
	return ensure().GetBool(key)
}

// GetDuration retrieves a duration configuration value.
func GetDuration(key string) time.Duration {
	return ensure().GetDuration(key)
}

// Set overrides a configuration value for the lifetime of the process.
// Used by CLI flags and tests.
func Set(key string, value interface{}) {
	ensure().Set(key, value)
}

// ConfigFileUsed returns the path of the loaded config file, or "".
func ConfigFileUsed() string {
	return ensure().ConfigFileUsed()
}

// Settings returns the effective non-secret settings as a flat map.
// Credential keys are masked.
func Settings() map[string]interface{} {
	out := make(map[string]interface{})
	keys := ensure().AllKeys()
	sort.Strings(keys)
	for _, k := range keys {
		if isSecretKey(k) {
			if ensure().GetString(k) != "" {
				out[k] = "********"
			}
			continue
		}
		val := ensure().Get(k)
		if d, ok := val.(time.Duration); ok {
			val = d.String()
		}
		out[k] = val
	}
	return out
}

func isSecretKey(key string) bool {
	return strings.HasSuffix(key, "token")
}
