package model

import (
	"fmt"
	"os"
)

// Config is an ON/OFF switch usable as a flag.Value.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON":   On,
	"On":   On,
	"on":   On,
	"1":    On,
	"true": On,

	"OFF":   Off,
	"Off":   Off,
	"off":   Off,
	"0":     Off,
	"false": Off,
}

func NewConfig(s string) (Config, error) {
	c, ok := configName[s]
	if !ok {
		return Off, fmt.Errorf("invalid switch %q, want on or off", s)
	}
	return c, nil
}

func (c *Config) Set(s string) error {
	v, err := NewConfig(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Config) String() string {
	if c {
		return "on"
	}
	return "off"
}

// IsBoolFlag lets "-color" stand for "-color=on".
func (c Config) IsBoolFlag() bool { return true }

// ColorDefault is On unless NO_COLOR is set.
func ColorDefault() Config {
	_, set := os.LookupEnv("NO_COLOR")
	return Config(!set)
}
