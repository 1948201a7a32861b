package model

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlag(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	var color, pprof Config = Off, On
	fs.Var(&color, "color", "")
	fs.Var(&pprof, "pprof", "")

	require.NoError(t, fs.Parse([]string{"-color", "-pprof=OFF"}))
	assert.Equal(t, On, color)
	assert.Equal(t, Off, pprof)

	assert.Error(t, fs.Parse([]string{"-pprof=maybe"}))
}

func TestBarWritesProgress(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(4, "games", &buf)
	b.Add(2)
	b.Describe("done")
	b.Add(2)
	b.Close()
	assert.Contains(t, buf.String(), "4/4")
}
