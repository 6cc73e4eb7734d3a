// Command heapdemo walks a min-heap through insert, build and delete-min,
// printing the level-order storage after each stage.
//
// Usage:
//
//	heapdemo [--config demo.toml] [--values 10,5,30,2,1] [-d 2] [--drain] [--log-level info]
package main

import (
	"errors"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	fs := flagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		level.Error(logger).Log("msg", "invalid arguments", "err", err)
		os.Exit(2)
	}

	cfg, err := loadConfig(fs)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(2)
	}
	logger = level.NewFilter(logger, levelOptions[cfg.LogLevel])

	if path, _ := fs.GetString("config"); path != "" {
		level.Info(logger).Log("msg", "loaded config", "path", path)
	}

	if err = run(cfg, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "demo failed", "err", err)
		os.Exit(1)
	}
}
