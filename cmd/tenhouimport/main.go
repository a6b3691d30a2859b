// Command tenhouimport reads a Tenhou mjlog XML file and stores it in the
// configured archive.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gomahjong/internal/mjcache"
	"gomahjong/internal/mjconfig"
	"gomahjong/internal/mjlog"
	"gomahjong/tenhou"
)

var (
	configFile string
	logID      string
	players    string
)

var rootCmd = &cobra.Command{
	Use:   "tenhouimport <mjlog.xml>",
	Short: "import a Tenhou mjlog XML file into the archive",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "config.yaml", "configuration file")
	rootCmd.Flags().StringVar(&logID, "log-id", "", "Tenhou log identifier (defaults to the input path as given)")
	rootCmd.Flags().StringVar(&players, "players", "", "comma-separated player names, seat order")
}

func main() {
	mjlog.Init("tenhouimport", "info")
	if err := rootCmd.Execute(); err != nil {
		mjlog.Fatal("tenhouimport failed", "err", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := mjconfig.Load(configFile); err != nil {
		return err
	}
	cfg := mjconfig.Get()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	id := logID
	if id == "" {
		id = path
	}
	var seats [4]string
	for i, name := range strings.Split(players, ",") {
		if i < 4 {
			seats[i] = name
		}
	}

	rec, err := tenhou.NewImporter().Import(f, id, "tenhou-standard", seats)
	if err != nil {
		return err
	}

	ctx := context.Background()
	dist, err := mjcache.NewDistributed(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		mjlog.Warn("tenhouimport: distributed cache unavailable, archiving without it", "err", err)
		dist = nil
	}
	archive, err := tenhou.NewArchive(ctx, cfg.Mongo.URI, cfg.Mongo.Database, dist)
	if err != nil {
		return err
	}
	if err := archive.Store(ctx, rec); err != nil {
		return err
	}

	mjlog.Info("imported tenhou log", "log_id", id, "rounds", len(rec.Rounds))
	return nil
}
