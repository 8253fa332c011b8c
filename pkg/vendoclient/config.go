package vendoclient

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vendo-io/vendo-go/internal/constants"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// Configuration keys recognized in config files and as VENDO_* environment
// variables.
const (
	keyToken       = "token"
	keyEnvironment = "environment"
	keyBaseURL     = "base_url"
	keyUserAgent   = "user_agent"
	keyTimeout     = "timeout"
	keyMaxRetries  = "max_retries"
	keyDebug       = "debug"
)

// LoadConfig reads client configuration from an optional YAML file and from
// VENDO_* environment variables; the environment wins over the file. Passing
// an empty path reads the environment only. Token validation happens when
// the config is turned into a client, not here.
func LoadConfig(path string) (*vendo.Config, error) {
	v := viper.New()

	v.SetDefault(keyEnvironment, string(vendo.EnvironmentProduction))
	v.SetDefault(keyTimeout, constants.DefaultHTTPTimeout)
	v.SetDefault(keyMaxRetries, constants.DefaultRetryMax)

	v.SetEnvPrefix("VENDO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{keyToken, keyEnvironment, keyBaseURL, keyUserAgent, keyTimeout, keyMaxRetries, keyDebug} {
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	config := &vendo.Config{
		Token:       v.GetString(keyToken),
		Environment: vendo.Environment(v.GetString(keyEnvironment)),
		BaseURL:     v.GetString(keyBaseURL),
		UserAgent:   v.GetString(keyUserAgent),
		Timeout:     v.GetDuration(keyTimeout),
		RetryMax:    v.GetInt(keyMaxRetries),
		Debug:       v.GetBool(keyDebug),
	}

	return config, nil
}
