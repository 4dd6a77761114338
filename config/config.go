// Package config loads settings for the listsort command from defaults, an
// optional config file, a .env file and LISTSORT_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "LISTSORT"

type Config struct {
	Min   int64  `mapstructure:"min"`
	Max   int64  `mapstructure:"max"`
	Seed  uint64 `mapstructure:"seed"`
	Sizes []int  `mapstructure:"sizes"`
	Debug bool   `mapstructure:"debug"`
}

func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("min", 1)
	v.SetDefault("max", 10000)
	v.SetDefault("seed", 0)
	v.SetDefault("sizes", []int{100, 1000, 5000, 10000})
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path when it is set, or listsort.yaml from the working directory
// when present. A .env file, if any, is loaded into the environment first.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("listsort")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Min > c.Max {
		return errors.Newf("min %d greater than max %d", c.Min, c.Max)
	}
	if len(c.Sizes) == 0 {
		return errors.New("no sizes configured")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Newf("size %d is not positive", n)
		}
	}
	return nil
}
