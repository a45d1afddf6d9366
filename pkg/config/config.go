package config

import (
	stderrors "errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/visual-editor-imports/pkg/ensurer"
	"github.com/siyuan-infoblox/visual-editor-imports/pkg/errors"
)

const (
	configName = ".vei"
	configType = "yaml"
	envPrefix  = "VEI"

	KeyHelper         = "helper"
	KeyBindingsModule = "bindings_module"
)

// flagKeys maps command line flag names to config keys
var flagKeys = map[string]string{
	"helper":          KeyHelper,
	"bindings-module": KeyBindingsModule,
}

// Config holds the settings that shape the rewritten import
type Config struct {
	Helper         string `mapstructure:"helper"`
	BindingsModule string `mapstructure:"bindings_module"`
}

// Load reads configuration from flags, VEI_* environment variables, an
// optional config file and defaults, in that order of precedence. When
// configPath is empty .vei.yaml is looked up in the working directory and
// may be absent.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyHelper, ensurer.DefaultHelper)
	v.SetDefault(KeyBindingsModule, ensurer.DefaultBindingsModule)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToBindFlag, name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !stderrors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the helper is an identifier and a module is set
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Helper) {
		return fmt.Errorf("%s: %q", errors.ErrMsgInvalidHelper, c.Helper)
	}
	if strings.TrimSpace(c.BindingsModule) == "" {
		return stderrors.New(errors.ErrMsgEmptyBindingsModule)
	}
	return nil
}
