package config_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/config"
	"wayfare/internal/planner"
	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(
	provideConfig, provideSessionStore, provideRandSource)

func provideConfig() config.Config {
	return config.Load()
}

func provideSessionStore() mem.SessionStore {
	return mem.NewPoolSessions()
}

func provideRandSource() planner.RandSource {
	return planner.NewRand()
}
