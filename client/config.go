package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/terrawalls/pkg/config"
	"github.com/HuXin0817/terrawalls/pkg/models/model"
)

var (
	configFile = flag.String("f", "", "the config file, defaults to the XDG lookup")
	levelConf  = flag.Int("level", 0, "level of the first game, overrides the config file")
	pickerConf = flag.String("picker", "", "opponent picker: uniform, cautious or rollout")
	pacingConf = flag.Duration("pacing", -1, "wait between opponent steps")
	debugConf  = flag.String("debug", "", "debug server address")

	colorConf = model.ColorDefault()
	logConf   = model.Off
)

func init() {
	flag.Var(&colorConf, "color", "coloured board (on/off)")
	flag.Var(&logConf, "log", "keep logging on the console (on/off)")
}

func initConfig() config.Config {
	flag.Parse()

	c, err := config.Load(*configFile)
	logx.Must(err)

	if *levelConf > 0 {
		c.Level = *levelConf
	}
	if *pickerConf != "" {
		c.Opponent.Picker = *pickerConf
	}
	if *pacingConf >= 0 {
		c.Opponent.Pacing = *pacingConf
	}
	if *debugConf != "" {
		c.Debug.Addr = *debugConf
	}

	logx.MustSetup(c.Log)
	if !logConf && c.Log.Mode == "console" {
		logx.Disable()
	}
	return c
}
