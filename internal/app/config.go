package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// Config holds application config
type Config struct {
	Debug      bool
	Port       int
	Dir        string
	DBFilename string
}

func (c Config) String() string {
	builder := new(strings.Builder)
	fmt.Fprintf(builder, "Debug: %v\n", c.Debug)
	fmt.Fprintf(builder, "Port: %v\n", c.Port)
	fmt.Fprintf(builder, "Dir: %v\n", c.Dir)
	fmt.Fprintf(builder, "DBFilename: %v\n", c.DBFilename)
	return builder.String()
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Usage:   "port that redis will listen on",
			EnvVars: []string{"REDIS_PORT"},
			Value:   6379,
		},
		&cli.StringFlag{
			Name:    "dir",
			Usage:   "directory holding the RDB file",
			EnvVars: []string{"REDIS_DIR"},
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "dbfilename",
			Usage:   "name of the RDB file to load at startup",
			EnvVars: []string{"REDIS_DBFILENAME"},
			Value:   "dump.rdb",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "enable debug log",
			EnvVars: []string{"REDIS_DEBUG"},
		},
	}
}

func parseConfig(c *cli.Context) (Config, error) {
	config := Config{
		Debug:      c.Bool("debug"),
		Port:       c.Int("port"),
		Dir:        c.String("dir"),
		DBFilename: c.String("dbfilename"),
	}
	if config.Port <= 0 || config.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", config.Port)
	}
	if config.DBFilename == "" {
		return Config{}, fmt.Errorf("dbfilename must not be empty")
	}
	return config, nil
}
