/*
Command dragonfly loads a web page and prints its layout tree.

	dragonfly load https://example.com
	dragonfly load --dot page.dot ./testdata/page.html
	dragonfly css --default

Configuration is read from a NestedText file "dragonfly.nt" at the usual
configuration locations (see schuko.LocateConfig). Command line flags
override configuration values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

const appTag = "dragonfly"

var tracerKeys = []string{
	"dragonfly.css", "dragonfly.dom", "dragonfly.engine", "dragonfly.fonts",
	"dragonfly.layout", "dragonfly.puller", "dragonfly.tree",
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// options are the flags common to all commands.
type options struct {
	traceLevel string
	conf       *koanfadapter.KConf
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           appTag,
		Short:         "dragonfly – a small HTML/CSS layout engine",
		Long:          "Dragonfly loads web pages, styles them with CSS and computes their layout.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			trace2go.Teardown()
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.traceLevel, "trace", "Error",
		"trace level (Debug, Info, Error)")
	rootCmd.AddCommand(newLoadCmd(opts), newCSSCmd())
	return rootCmd
}

// setup initializes configuration and tracing.
func (opts *options) setup(cmd *cobra.Command) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	opts.conf = koanfadapter.New(nil, appTag, []string{".nt"})
	opts.conf.InitDefaults()
	if cmd.Flags().Changed("trace") || !opts.conf.IsSet("trace.root") {
		opts.conf.Set("trace.root", opts.traceLevel)
		for _, key := range tracerKeys {
			opts.conf.Set("trace."+key, opts.traceLevel)
		}
	}
	if err := trace2go.ConfigureRoot(opts.conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
