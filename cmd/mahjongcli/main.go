// Command mahjongcli decomposes a 13-tile hand given as a Tenhou-shorthand
// argument or on stdin and prints its waits.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gomahjong/decomposer"
	"gomahjong/internal/histogram"
	"gomahjong/internal/mjlog"
	"gomahjong/internal/tile"
)

var rootCmd = &cobra.Command{
	Use:   "mahjongcli [hand]",
	Short: "decompose a 13-tile Riichi Mahjong hand into its waits",
	Long: "mahjongcli decomposes a 13-tile hand, given either as a single " +
		"Tenhou-shorthand argument (e.g. \"123m456p789s11z22z\") or one per " +
		"line on stdin, and prints every regular and irregular wait found.",
	RunE: run,
}

func main() {
	mjlog.Init("mahjongcli", "info")
	if err := rootCmd.Execute(); err != nil {
		mjlog.Fatal("mahjongcli failed", "err", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dec := decomposer.Default()

	if len(args) == 1 {
		return decomposeOne(dec, args[0])
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := decomposeOne(dec, line); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
		}
	}
	return scanner.Err()
}

func decomposeOne(dec *decomposer.Decomposer, hand string) error {
	tiles, err := tile.ParseTiles(hand)
	if err != nil {
		return err
	}
	h, err := histogram.FromTiles(tiles)
	if err != nil {
		return err
	}
	ws, err := dec.Decompose(h)
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n", hand)
	if ws.IsEmpty() {
		fmt.Println("  not tenpai")
		return nil
	}
	for _, w := range ws.Regular {
		fmt.Printf("  %s\n", w)
	}
	if ws.Irregular != nil {
		fmt.Printf("  %s waiting on %v\n", ws.Irregular.Kind, ws.Irregular.WaitingTiles)
	}
	return nil
}
