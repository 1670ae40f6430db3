package config

import "go.uber.org/fx"

// Module provides *Config, loaded once per process.
var Module = fx.Provide(Load)
