// Package config holds the engine and shell settings. Values come from
// defaults, then ROOKERY_* environment variables, then command-line flags.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDepth              = "depth"
	ConfigWhiteDepth         = "white-depth"
	ConfigBlackDepth         = "black-depth"
	ConfigThreads            = "threads"
	ConfigSideAware          = "side-aware"
	ConfigMaxTurns           = "max-turns"
	ConfigRandomOpeningPlies = "random-opening-plies"
	ConfigDebug              = "debug"
	ConfigCPUProfile         = "cpu-profile"
	ConfigMemProfile         = "mem-profile"
	ConfigSearchLog          = "search-log"
)

const envPrefix = "ROOKERY"

type Config struct {
	*viper.Viper
}

// DefaultConfig has every key at its default and ignores the environment.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDepth, 4)
	c.SetDefault(ConfigWhiteDepth, 0)
	c.SetDefault(ConfigBlackDepth, 0)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigSideAware, false)
	c.SetDefault(ConfigMaxTurns, 200)
	c.SetDefault(ConfigRandomOpeningPlies, 0)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
	c.SetDefault(ConfigSearchLog, "")
}

// Load reads the environment and parses args as --key=value flags. It
// returns the positional arguments left over.
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = viper.New()
	c.setDefaults()
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("rookery", pflag.ContinueOnError)
	fs.Int(ConfigDepth, 4, "search depth in plies for both sides")
	fs.Int(ConfigWhiteDepth, 0, "search depth for white; 0 uses depth")
	fs.Int(ConfigBlackDepth, 0, "search depth for black; 0 uses depth")
	fs.Int(ConfigThreads, 1, "goroutines splitting the root moves")
	fs.Bool(ConfigSideAware, false, "flip the side to move at every ply of the search")
	fs.Int(ConfigMaxTurns, 200, "turn limit for autoplay")
	fs.Int(ConfigRandomOpeningPlies, 0, "random plies played before autoplay searches")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigMemProfile, "", "write a heap profile to this file")
	fs.String(ConfigSearchLog, "", "append a YAML record of every search to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// DepthFor is the search depth for a side name ("white" or "black").
func (c *Config) DepthFor(side string) int {
	var d int
	switch side {
	case "white":
		d = c.GetInt(ConfigWhiteDepth)
	case "black":
		d = c.GetInt(ConfigBlackDepth)
	}
	if d > 0 {
		return d
	}
	return c.GetInt(ConfigDepth)
}

// ToDisplayText lists every setting, one per line, sorted by key.
func (c *Config) ToDisplayText() string {
	settings := c.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%-22s %v\n", k, settings[k])
	}
	return sb.String()
}
