// Package providers holds the samber/do providers for the container.
package providers

import (
	"io"
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"github.com/appengine-ltd/podo-rush/internal/config"
	"github.com/appengine-ltd/podo-rush/internal/logger"
)

func ProvideConfig(flags config.Flags) do.Provider[*config.Config] {
	return func(do.Injector) (*config.Config, error) {
		return config.Load(flags)
	}
}

// LogSink is where log lines go. A file sink is closed on shutdown.
type LogSink struct {
	io.Writer
	file *os.File
}

func (s *LogSink) ToFile() bool { return s.file != nil }

// Shutdown implements do.Shutdownable.
func (s *LogSink) Shutdown() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

func ProvideLogSink(toFile bool) do.Provider[*LogSink] {
	return func(i do.Injector) (*LogSink, error) {
		if !toFile {
			return &LogSink{Writer: os.Stderr}, nil
		}
		cfg := do.MustInvoke[*config.Config](i)
		f, err := logger.OpenFile(cfg.LogPath())
		if err != nil {
			return nil, err
		}
		return &LogSink{Writer: f, file: f}, nil
	}
}

func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	sink := do.MustInvoke[*LogSink](i)

	log := logger.New(logger.Config{
		Writer:      sink,
		Format:      cfg.Logger.Format,
		Environment: cfg.App.Environment,
		Level:       logger.ParseLevel(cfg.Logger.Level),
		NoColor:     sink.ToFile(),
	})
	log.Debug("configuration loaded",
		"environment", cfg.App.Environment,
		"data_dir", cfg.App.DataDir,
		"store", cfg.Storage.Backend,
	)
	return log, nil
}
