package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/bindings/cmd/bindings/internal/config"
	"github.com/go-drift/bindings/examples/syncscroll"
	"github.com/go-drift/bindings/examples/textbinding"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/storage"
	"github.com/go-drift/bindings/pkg/tree"
)

var (
	demoFrames  int
	demoPersist bool
)

var demoCmd = &cobra.Command{
	Use:       "demo [syncscroll|textbinding]",
	Short:     "Run a bundled demo headlessly and print the resulting state",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"syncscroll", "textbinding"},
	RunE:      runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoFrames, "frames", 30, "number of frames to pump")
	demoCmd.Flags().BoolVar(&demoPersist, "persist", false, "restore and save state via the configured store")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	var store *storage.Store
	if demoPersist {
		root, err := config.FindProjectRoot()
		if err != nil {
			return err
		}
		resolved, err := config.Resolve(root)
		if err != nil {
			return err
		}
		store, err = storage.Open(resolved.StatePath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	switch args[0] {
	case "syncscroll":
		return runSyncScroll(cmd, store)
	case "textbinding":
		return runTextBinding(cmd, store)
	default:
		return fmt.Errorf("unknown demo %q", args[0])
	}
}

func runSyncScroll(cmd *cobra.Command, store *storage.Store) error {
	var state syncscroll.State
	if err := restoreState(store, "syncscroll", &state); err != nil {
		return err
	}

	owner := tree.NewOwner[syncscroll.State](syncscroll.Build(), state)
	defer owner.Detach()
	owner.Pump()

	// Scripted input: one wheel tick over the leader pane per frame.
	for i := 0; i < demoFrames; i++ {
		owner.DispatchEvent(tree.PointerEvent{
			Phase:       tree.PointerScroll,
			Position:    graphics.Offset{X: 20, Y: 100},
			ScrollDelta: graphics.Offset{Y: 10},
		})
		owner.Pump()
	}
	owner.PumpUntilSettled(4)

	final := owner.Data()
	cmd.Printf("frames: %d\n", demoFrames)
	cmd.Printf("scrollY: %.1f\n", final.ScrollY)
	cmd.Printf("fraction: %.3f\n", final.Fraction)
	return saveState(store, "syncscroll", final)
}

func runTextBinding(cmd *cobra.Command, store *storage.Store) error {
	var state textbinding.State
	if err := restoreState(store, "textbinding", &state); err != nil {
		return err
	}

	owner := tree.NewOwner[textbinding.State](textbinding.Build(), state)
	defer owner.Detach()
	owner.Pump()

	for _, r := range "hello from the demo" {
		owner.DispatchEvent(tree.KeyEvent{Rune: r})
		owner.Pump()
	}
	owner.PumpUntilSettled(4)

	final := owner.Data()
	cmd.Printf("title: %q\n", final.Title)
	cmd.Printf("tab: %d\n", final.Tab)
	return saveState(store, "textbinding", final)
}

func restoreState(store *storage.Store, name string, state any) error {
	if store == nil {
		return nil
	}
	if err := store.LoadState(name, state); err != nil && !stderrors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func saveState(store *storage.Store, name string, state any) error {
	if store == nil {
		return nil
	}
	return store.SaveState(name, state)
}
