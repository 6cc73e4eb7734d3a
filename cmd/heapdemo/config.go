package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

// Config drives one run of the demo scenario.
type Config struct {
	Values   []int  `toml:"values"`
	Delete   int    `toml:"delete"`
	Drain    bool   `toml:"drain"`
	LogLevel string `toml:"log_level"`
}

var (
	errBadDelete   = errors.New("heapdemo: delete count must be non-negative")
	errBadLogLevel = errors.New("heapdemo: unknown log level")
)

// levelOptions maps the accepted log_level strings to go-kit filters.
var levelOptions = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
}

// DefaultConfig reproduces the classic five-value walkthrough.
func DefaultConfig() Config {
	return Config{
		Values:   []int{10, 5, 30, 2, 1},
		Delete:   2,
		Drain:    false,
		LogLevel: "info",
	}
}

// flagSet declares the command line. Defaults mirror DefaultConfig so that
// --help is truthful; only flags the user actually set override the file.
func flagSet() *pflag.FlagSet {
	def := DefaultConfig()
	fs := pflag.NewFlagSet("heapdemo", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Path to a TOML config file.")
	fs.IntSlice("values", def.Values, "Values to insert, in order.")
	fs.IntP("delete", "d", def.Delete, "Number of minimums to extract.")
	fs.Bool("drain", def.Drain, "Heap-sort the remaining elements at the end.")
	fs.String("log-level", def.LogLevel, "Log level: debug, info, warn or error.")

	return fs
}

// loadConfig layers defaults, the optional TOML file and explicitly set flags,
// in that order, then validates the result.
func loadConfig(fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()

	path, err := fs.GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if _, err = toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("heapdemo: read config %q: %w", path, err)
		}
	}

	if fs.Changed("values") {
		if cfg.Values, err = fs.GetIntSlice("values"); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("delete") {
		if cfg.Delete, err = fs.GetInt("delete"); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("drain") {
		if cfg.Drain, err = fs.GetBool("drain"); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("log-level") {
		if cfg.LogLevel, err = fs.GetString("log-level"); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Delete < 0 {
		return fmt.Errorf("%w: got %d", errBadDelete, c.Delete)
	}
	if _, ok := levelOptions[c.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", errBadLogLevel, c.LogLevel)
	}

	return nil
}
