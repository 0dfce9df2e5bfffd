package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
)

// version is stamped at release time with -X main.version=<tag>.
var version = ""

func buildVersion() string {
	if version != "" {
		return version
	}
	if v := vcsVersion(); v != "" {
		return v
	}
	return "dev"
}

// vcsVersion formats the commit recorded by the go command as
// "<short rev>[-dirty] (<commit time>)", or "" outside a VCS build.
func vcsVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	vcs := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}

	rev := vcs["vcs.revision"]
	if rev == "" {
		return ""
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if vcs["vcs.modified"] == "true" {
		rev += "-dirty"
	}
	return fmt.Sprintf("%s (%s)", rev, vcs["vcs.time"])
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pagepick",
		Short:         "Pick one line of a file in a paged terminal list",
		Args:          cobra.NoArgs,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addPickToRoot(cmd)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errCancelled) {
			fmt.Fprintln(os.Stderr, "selection cancelled")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
