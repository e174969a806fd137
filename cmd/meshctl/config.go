package main

import (
	"os"
	"strings"
	"time"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
	"github.com/fieldmesh/meshcore/internal/baselib/actor"
	"github.com/fieldmesh/meshcore/internal/build"
	"github.com/spf13/cobra"
)

// demoConfig holds the flags shared by every meshctl subcommand: how big to
// make each actor's mailbox, how often to heartbeat the actor system, and
// how noisy the console logger should be.
type demoConfig struct {
	mailboxCapacity  int
	heartbeatSeconds int
	logLevel         string
}

// registerPersistentFlags attaches demoConfig's fields to root's persistent
// flag set, so every subcommand inherits them without redeclaring.
func registerPersistentFlags(root *cobra.Command, cfg *demoConfig) {
	root.PersistentFlags().IntVar(&cfg.mailboxCapacity, "mailbox-capacity",
		100, "default mailbox buffer capacity for spawned actors")
	root.PersistentFlags().IntVar(&cfg.heartbeatSeconds, "heartbeat-interval",
		30, "seconds between actor-system heartbeat Pings (0 disables)")
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "info",
		"console log level: trace, debug, info, warn, error, off")
}

// parseLevel maps a flag-friendly level name to a btclog.Level, defaulting
// to LevelOff for anything unrecognized so a typo'd flag fails quiet rather
// than panicking.
func parseLevel(name string) btclog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return btclog.LevelTrace
	case "debug":
		return btclog.LevelDebug
	case "info":
		return btclog.LevelInfo
	case "warn", "warning":
		return btclog.LevelWarn
	case "error":
		return btclog.LevelError
	default:
		return btclog.LevelOff
	}
}

// setupLogging attaches a console btclog handler to the actor package at
// the level named by cfg.logLevel, returning the configured level so
// callers can report what's effective.
func setupLogging(cfg demoConfig) btclog.Level {
	level := parseLevel(cfg.logLevel)

	consoleHandler := btclogv2.NewDefaultHandler(os.Stderr)
	handlers := build.NewHandlerSet(consoleHandler)
	handlers.SetLevel(level)

	actor.UseLogger(btclogv2.NewSLogger(handlers))

	return level
}

// systemConfig translates demoConfig into the actor package's own
// SystemConfig, used to construct the ActorSystem the demo runs against.
func (c demoConfig) systemConfig() actor.SystemConfig {
	capacity := c.mailboxCapacity
	if capacity <= 0 {
		capacity = actor.DefaultConfig().MailboxCapacity
	}

	return actor.SystemConfig{MailboxCapacity: capacity}
}

// heartbeatConfig translates demoConfig into a HeartbeatConfig, or reports
// ok=false if heartbeating was disabled via --heartbeat-interval=0.
func (c demoConfig) heartbeatConfig() (cfg actor.HeartbeatConfig, ok bool) {
	if c.heartbeatSeconds <= 0 {
		return actor.HeartbeatConfig{}, false
	}

	interval := time.Duration(c.heartbeatSeconds) * time.Second

	return actor.HeartbeatConfig{
		Interval:   interval,
		StaleAfter: 3 * interval,
	}, true
}
