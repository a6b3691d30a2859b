// Command mahjongserver boots a game node: configuration, logging, the
// decomposer-backed engine, an optional NATS event bus, host load
// monitoring, and the httpapi debug surface.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gomahjong/decomposer"
	"gomahjong/engine"
	"gomahjong/httpapi"
	"gomahjong/internal/mjconfig"
	"gomahjong/internal/mjlog"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "mahjongserver",
	Short: "run a Riichi Mahjong game node",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "config.yaml", "configuration file")
}

func main() {
	mjlog.Init("mahjongserver", "info")
	if err := rootCmd.Execute(); err != nil {
		mjlog.Fatal("mahjongserver failed", "err", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := mjconfig.Load(configFile); err != nil {
		return err
	}
	cfg := mjconfig.Get()
	mjlog.Init("mahjongserver", cfg.Log.Level)

	node := engine.NewNode()
	dec := decomposer.Default()

	bus, err := engine.NewEventBus(cfg.Nats.URL)
	if err != nil {
		mjlog.Warn("mahjongserver: event bus unavailable, running without it", "err", err)
		bus = nil
	} else {
		defer bus.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := engine.NewMonitor(node, 10*time.Second, func(load engine.Load) {
		mjlog.Debug("load sample", "cpu", load.CPUPercent, "mem", load.MemPercent, "rounds", load.ActiveRounds)
	})
	go monitor.Run(ctx)
	defer monitor.Stop()

	var status httpapi.NodeStatus = node
	router := httpapi.NewRouter(dec, &status)
	go func() {
		addr := cfg.HTTP.Addr
		mjlog.Info("httpapi listening", "addr", addr)
		if err := router.Run(addr); err != nil {
			mjlog.Error("httpapi stopped", "err", err)
		}
	}()

	_ = bus // reserved for round-level Publish/Subscribe wiring by callers of engine.NewRound

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	mjlog.Info("mahjongserver shutting down")
	return nil
}
