// Package di wires configuration, logging, storage and rankings together.
package di

import (
	"github.com/samber/do/v2"

	"github.com/appengine-ltd/podo-rush/internal/config"
	"github.com/appengine-ltd/podo-rush/internal/di/providers"
)

// Options are decided by the entry point before anything is built.
type Options struct {
	Flags config.Flags
	// LogToFile sends logs to the data dir instead of stderr. Interactive
	// clients set it so the terminal stays clean.
	LogToFile bool
}

func NewContainer(opts Options) *do.RootScope {
	injector := do.New()

	do.Provide(injector, providers.ProvideConfig(opts.Flags))
	do.Provide(injector, providers.ProvideLogSink(opts.LogToFile))
	do.Provide(injector, providers.ProvideLogger)

	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideRankings)

	return injector
}
