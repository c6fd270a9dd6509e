package root

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/appengine-ltd/podo-rush/internal/config"
	"github.com/appengine-ltd/podo-rush/internal/di"
	"github.com/appengine-ltd/podo-rush/internal/di/providers"
)

type services struct {
	cfg      *config.Config
	log      *slog.Logger
	rankings *providers.Rankings
}

// openServices builds the container. Interactive clients pass logToFile so
// log lines never land on the terminal they draw on.
func openServices(logToFile bool) (*services, func(), error) {
	return servicesFrom(di.NewContainer(di.Options{Flags: flags, LogToFile: logToFile}))
}

// servicesFrom resolves what the commands need. Any failure shuts the
// injector down so a log file or store opened on the way is released.
func servicesFrom(injector *do.RootScope) (*services, func(), error) {
	svc, err := invokeServices(injector)
	if err != nil {
		_ = injector.Shutdown()
		return nil, nil, err
	}
	cleanup := func() {
		if err := injector.Shutdown(); err != nil {
			svc.log.Error("shutdown failed", "error", err)
		}
	}
	return svc, cleanup, nil
}

func invokeServices(injector do.Injector) (*services, error) {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := do.Invoke[*slog.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("start logger: %w", err)
	}
	rankings, err := do.Invoke[*providers.Rankings](injector)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &services{cfg: cfg, log: log, rankings: rankings}, nil
}
