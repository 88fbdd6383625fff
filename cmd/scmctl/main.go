// Package main is the entry point for the scmctl CLI.
//
// scmctl bulk-manages network-site configuration on a SteelConnect
// Manager: the import command provisions sites, zones, uplinks, and
// networks from a CSV description, and delete-sites decommissions every
// site of an organization except a protected one.
//
// For detailed usage information, run:
//
//	scmctl --help
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/steelops/scmctl/cmd/scmctl/commands"
	"github.com/steelops/scmctl/internal/provisioning"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Root().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, provisioning.ErrAborted) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
