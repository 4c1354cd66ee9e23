package main

import (
	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// configRelPath is looked up under the XDG config directories when no
// --config flag is given.
const configRelPath = "spantree/config.toml"

// Config holds the settings a config file may provide. Flags given on the
// command line take precedence.
type Config struct {
	Method      string `toml:"method"`
	Forest      bool   `toml:"forest"`
	Strict      bool   `toml:"strict"`
	Format      string `toml:"format"`
	Output      string `toml:"output"`
	LevelString string `toml:"log_level"`
}

func ConfigDefault() *Config {
	return &Config{
		Method:      "prim",
		Output:      "text",
		LevelString: "warn",
	}
}

// ReadConfig decodes path over the defaults. An empty path searches the XDG
// config directories and falls back to the defaults when nothing is found.
func ReadConfig(path string) (*Config, error) {
	cfg := ConfigDefault()
	if path == "" {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// Level parses LevelString into a logrus level.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LevelString)
	if err != nil {
		return log.WarnLevel, errors.Wrap(err, "log_level")
	}

	return lvl, nil
}
