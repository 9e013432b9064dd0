package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Pool struct {
	Gateway string
	Timeout time.Duration
}

func buildPoolConfig() (*Pool, error) {
	p := &Pool{
		Gateway: viper.GetString(Cfg_poolGateway),
	}

	if p.Gateway == "" {
		return nil, errors.New("no pool gateway configured")
	}

	timeout, err := time.ParseDuration(viper.GetString(Cfg_poolTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "parsing pool timeout")
	}
	p.Timeout = timeout

	return p, nil
}
