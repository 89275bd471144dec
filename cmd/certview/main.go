package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bastionhq/certview/internal/app"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "certview: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "certview",
		Short:         "Terminal console for the Bastion certificate daemon",
		Long:          "certview is a terminal dashboard for browsing and managing certificates,\nauthorities, signing requests, templates, trust anchors, and approvals\nserved by a local Bastion daemon.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	root.Flags().StringVar(&opts.ConfigPath, "config", "", "override bastion config path")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path")
	root.Flags().IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds (defaults to 2s)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the certview version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "certview "+version)
		},
	})

	return root
}
