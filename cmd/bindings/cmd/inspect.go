package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/bindings/cmd/bindings/internal/config"
	"github.com/go-drift/bindings/examples/syncscroll"
	"github.com/go-drift/bindings/pkg/inspector"
	"github.com/go-drift/bindings/pkg/tree"
)

var inspectPort int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Serve the binding inspector over a running demo",
	Long: `inspect runs the syncscroll demo in a frame loop and serves host
states, the painted frame, Prometheus metrics, and a websocket feed.
Stop with Ctrl-C.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectPort, "port", -1, "listen port (overrides bindings.yaml, 0 picks one)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	port := 0
	feedInterval := 250 * time.Millisecond
	if root, err := config.FindProjectRoot(); err == nil {
		if resolved, err := config.Resolve(root); err == nil {
			port = resolved.InspectPort
			feedInterval = resolved.FeedInterval
		}
	}
	if inspectPort >= 0 {
		port = inspectPort
	}

	owner := tree.NewOwner[syncscroll.State](syncscroll.Build(), syncscroll.State{})
	defer owner.Detach()
	owner.Pump()

	inspector.EnableMetrics()
	srv := inspector.NewServer(owner)
	srv.SetFeedInterval(feedInterval)
	actual, err := srv.Start(port)
	if err != nil {
		return err
	}
	defer srv.Stop()
	cmd.Printf("inspector listening on :%d\n", actual)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			owner.Pump()
		case <-stop:
			return nil
		}
	}
}
