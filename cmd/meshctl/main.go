// Command meshctl is a small demonstration harness for the actor runtime in
// internal/baselib/actor. It spawns a handful of field-relay actors, Tells
// reports to them through the round-robin service router, Asks each one
// directly for a summary, and prints a status table -- standing in for the real ingestion
// pipeline's weather/satellite/sensor/aircraft importers, which consume the
// same handle and action abstractions but live outside this core.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg demoConfig

	root := &cobra.Command{
		Use:   "meshctl",
		Short: "meshctl drives the field-relay actor demo",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg)
		},
	}

	registerPersistentFlags(root, &cfg)
	root.AddCommand(newRelayCmd(&cfg))

	return root
}

func newRelayCmd(cfg *demoConfig) *cobra.Command {
	var relayCount, reportCount int

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "spawn field-relay actors and exchange sample traffic",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(
				cmd.Context(), os.Interrupt, syscall.SIGTERM,
			)
			defer stop()

			return runRelayDemoWithConfig(ctx, relayCount, reportCount, *cfg)
		},
	}

	cmd.Flags().IntVar(&relayCount, "relays", 3,
		"number of field-relay actors to spawn")
	cmd.Flags().IntVar(&reportCount, "reports", 12,
		"number of sample field reports to send")

	return cmd
}
