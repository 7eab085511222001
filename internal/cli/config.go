package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config CLI 配置，来源优先级：命令行参数 > 环境变量 (MDENV_*) > 配置文件 > 默认值
type Config struct {
	Format string `mapstructure:"format"` // text, json or yaml
	Color  bool   `mapstructure:"color"`
	Debug  bool   `mapstructure:"debug"`
}

var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// loadConfig reads mdenv.yaml from the working directory or the user
// config dir, unless --config names a file explicitly.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mdenv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "mdenv"))
		}
	}

	v.SetEnvPrefix("MDENV")
	v.AutomaticEnv()

	v.SetDefault("format", "text")
	v.SetDefault("color", true)
	v.SetDefault("debug", false)

	for _, name := range []string{"format", "color", "debug"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	// 配置文件可选
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if !validFormats[cfg.Format] {
		return nil, fmt.Errorf("unknown format %q (want text, json or yaml)", cfg.Format)
	}
	return &cfg, nil
}
