package testutil

import (
	"bytes"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// xdgVars are redirected by Isolate
var xdgVars = []string{
	"XDG_CONFIG_HOME",
	"XDG_CONFIG_DIRS",
	"XDG_STATE_HOME",
	"XDG_CACHE_HOME",
}

// Isolate points every XDG directory at a fresh temp dir and returns it.
// The global logger and level are restored when the test ends, since
// commands reconfigure them.
func Isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range xdgVars {
		t.Setenv(name, dir)
	}
	xdg.Reload()

	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		xdg.Reload()
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
	return dir
}

// CaptureLogs sends the global logger to the returned buffer until the test
// ends
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}
