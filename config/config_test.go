package config

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetInt(ConfigDepth), 4)
	is.Equal(c.GetInt(ConfigThreads), 1)
	is.Equal(c.GetBool(ConfigSideAware), false)
	is.Equal(c.GetInt(ConfigMaxTurns), 200)
	is.Equal(c.GetString(ConfigSearchLog), "")
	is.Equal(c.DepthFor("white"), 4)
	is.Equal(c.DepthFor("black"), 4)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	rest, err := c.Load([]string{"--depth=3", "--black-depth", "2", "--side-aware", "autoplay"})
	is.NoErr(err)
	is.Equal(rest, []string{"autoplay"})
	is.Equal(c.GetInt(ConfigDepth), 3)
	is.Equal(c.DepthFor("white"), 3)
	is.Equal(c.DepthFor("black"), 2)
	is.True(c.GetBool(ConfigSideAware))
	// untouched flags keep their defaults.
	is.Equal(c.GetInt(ConfigMaxTurns), 200)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("ROOKERY_MAX_TURNS", "17")
	t.Setenv("ROOKERY_THREADS", "3")
	c := DefaultConfig()
	_, err := c.Load([]string{"--threads=5"})
	is.NoErr(err)
	is.Equal(c.GetInt(ConfigMaxTurns), 17)
	// flags win over the environment.
	is.Equal(c.GetInt(ConfigThreads), 5)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	_, err := c.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}

func TestSetAndDisplay(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	c.Set(ConfigDepth, 6)
	is.Equal(c.GetInt(ConfigDepth), 6)
	txt := c.ToDisplayText()
	lines := strings.Split(strings.TrimSpace(txt), "\n")
	is.Equal(len(lines), 11)
	is.True(strings.HasPrefix(lines[0], "black-depth"))
	is.True(strings.Contains(txt, "depth                  6"))
}
