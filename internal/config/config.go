package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tcfw/indyres/internal/utils/logging"
)

var (
	defaults = map[string]interface{}{
		"verbose":       false,
		Cfg_poolGateway: "http://localhost:9022",
		Cfg_poolTimeout: "30s",
	}
)

const (
	Cfg_poolGateway = "pool.gateway"
	Cfg_poolTimeout = "pool.timeout"
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("indyres")
	viper.AddConfigPath("/etc/indyres/")
	viper.AddConfigPath("$HOME/.indyres")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("INDYRES")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults apply
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	c := &Config{}

	c.pool, err = buildPoolConfig()
	if err != nil {
		return nil, errors.Wrap(err, "pool config")
	}

	if viper.GetBool("verbose") {
		logging.SetLevel(logrus.DebugLevel)
		logging.Entry().WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	pool *Pool
}

func (c *Config) Pool() *Pool {
	return c.pool
}
