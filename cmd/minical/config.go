package main

import (
	"time"

	"github.com/mazzegi/minical/date"
	"github.com/mazzegi/minical/env"
	"github.com/mazzegi/minical/errorx"
)

type config struct {
	value       date.Date
	setDate     date.Date
	setAfter    time.Duration
	interactive bool
	debug       bool
}

var defaultConfig = config{
	value:    date.Make(2024, 8, 15),
	setDate:  date.Make(2024, 4, 1),
	setAfter: 3 * time.Second,
}

func loadConfig(e env.Env) (config, error) {
	cfg := defaultConfig
	g := errorx.NewGroup()
	var err error

	cfg.value, err = e.DateOrDefault("value", defaultConfig.value)
	g.Append(err)
	cfg.setDate, err = e.DateOrDefault("set-date", defaultConfig.setDate)
	g.Append(err)
	cfg.setAfter, err = e.DurationOrDefault("set-after", defaultConfig.setAfter)
	g.Append(err)
	cfg.interactive = e.BoolOrDefault("interactive", false)
	cfg.debug = e.BoolOrDefault("debug", false)

	if err := g.Error(); err != nil {
		return config{}, err
	}
	return cfg, nil
}
