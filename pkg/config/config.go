package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/adrg/xdg"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// CfgFile is looked up under the XDG config directories when no file is
// given explicitly.
const CfgFile = "terrawalls/config.yaml"

var ErrInvalidConfig = errors.New("invalid config")

type OpponentConf struct {
	Picker     string        `json:",default=uniform,options=[uniform,cautious,rollout]"`
	Pacing     time.Duration `json:",default=1s"`
	Seed       int64         `json:",optional"`
	SearchTime time.Duration `json:",default=500ms"`
	Goroutines int           `json:",default=8"`
}

type DebugConf struct {
	Addr string `json:",optional"`
}

type TelemetryConf struct {
	Interval time.Duration `json:",default=1s"`
}

type Config struct {
	Log       logx.LogConf
	Level     int `json:",default=1"`
	Opponent  OpponentConf
	Debug     DebugConf
	Telemetry TelemetryConf
}

// Load reads path, or the XDG config file when path is empty. Without any
// file every field takes its default.
func Load(path string) (c Config, err error) {
	if path == "" {
		if found, serr := xdg.SearchConfigFile(CfgFile); serr == nil {
			path = found
		}
	}

	if path == "" {
		err = conf.FillDefault(&c)
	} else {
		err = conf.Load(path, &c)
	}
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Level < 1:
		return fmt.Errorf("%w: level %d, want 1 or more", ErrInvalidConfig, c.Level)
	case c.Opponent.Pacing < 0:
		return fmt.Errorf("%w: negative pacing %s", ErrInvalidConfig, c.Opponent.Pacing)
	case c.Opponent.Goroutines < 1:
		return fmt.Errorf("%w: %d rollout goroutines", ErrInvalidConfig, c.Opponent.Goroutines)
	case c.Telemetry.Interval <= 0:
		return fmt.Errorf("%w: telemetry interval %s", ErrInvalidConfig, c.Telemetry.Interval)
	}
	return nil
}
