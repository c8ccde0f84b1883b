package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hnimtadd/craft-redis/internal/app/server"
	"github.com/hnimtadd/craft-redis/internal/redis"
	"github.com/hnimtadd/craft-redis/internal/redis/rdb"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type App struct {
	config Config
	logger *logrus.Logger
}

// Command builds the command line application.
func Command() *cli.App {
	return &cli.App{
		Name:  "craft-redis",
		Usage: "a small Redis server that warm-starts from an RDB file",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			config, err := parseConfig(c)
			if err != nil {
				return err
			}
			return New(config).Start()
		},
	}
}

func New(config Config) *App {
	logger := &logrus.Logger{
		Out:       os.Stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &App{
		config: config,
		logger: logger,
	}
}

func (a *App) initController() (*redis.Controller, error) {
	opts := redis.Options{
		Dir:        a.config.Dir,
		DBFilename: a.config.DBFilename,
		Databases:  redis.DefaultDatabases,
	}
	a.logger.Debug("init redis controller with config\n", opts)
	controller := redis.NewController(opts, a.logger)
	if err := a.restore(controller); err != nil {
		return nil, err
	}
	return controller, nil
}

// restore loads the RDB file into controller. A missing file leaves the
// keyspace empty.
func (a *App) restore(controller *redis.Controller) error {
	path := filepath.Join(a.config.Dir, a.config.DBFilename)
	log := a.logger.WithField("path", path)

	snap, err := rdb.Load(a.config.Dir, a.config.DBFilename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("no RDB file found, starting with an empty dataset")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load RDB file: %w", err)
	}

	stats := controller.Restore(snap)
	log.WithFields(logrus.Fields{
		"version":   snap.Version,
		"aux":       len(snap.Metadata),
		"databases": len(snap.Databases),
		"keys":      stats.Keys,
		"expires":   stats.Expires,
		"expired":   stats.Expired,
		"skipped":   stats.Skipped,
	}).Info("DB loaded from disk")
	return nil
}

func (a *App) initServer(controller *redis.Controller) *server.Server {
	opts := server.Options{
		Port: a.config.Port,
	}
	return server.NewServer(controller, opts, a.logger)
}

func (a *App) Start() error {
	a.logger.Debug("starting with config\n", a.config)
	controller, err := a.initController()
	if err != nil {
		return err
	}

	server := a.initServer(controller)
	a.logger.Info("Server initialized")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("stopped listener: %w", err)
	}
	return nil
}
