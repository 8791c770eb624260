package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/dom/domdbg"
	"github.com/npillmayer/dragonfly/engine"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/spf13/cobra"
)

type loadFlags struct {
	dot         string
	systemFonts bool
	noLocalFS   bool
	timeout     time.Duration
	timers      bool
}

func newLoadCmd(opts *options) *cobra.Command {
	flags := &loadFlags{}
	cmd := &cobra.Command{
		Use:   "load <url|file>",
		Short: "Load a page and print its layout tree",
		Long: "Load a page from an http(s) or file URL, or from a local file, " +
			"compute its layout and print the layout tree.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, opts, flags, args[0])
		},
	}
	cmd.Flags().StringVar(&flags.dot, "dot", "", "write the layout tree in GraphViz DOT format to this file")
	cmd.Flags().BoolVar(&flags.systemFonts, "system-fonts", false, "use system fonts instead of the fallback font")
	cmd.Flags().BoolVar(&flags.noLocalFS, "no-local-fs", false, "deny access to file URLs")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 30*time.Second, "timeout for a single request")
	cmd.Flags().BoolVar(&flags.timers, "timers", true, "print timers")
	return cmd
}

func runLoad(cmd *cobra.Command, opts *options, flags *loadFlags, arg string) error {
	if cmd.Flags().Changed("system-fonts") {
		opts.conf.Set(engine.KeySystemFonts, flags.systemFonts)
	}
	if cmd.Flags().Changed("no-local-fs") {
		opts.conf.Set(engine.KeyAllowLocalFS, !flags.noLocalFS)
	}
	if cmd.Flags().Changed("timeout") || !opts.conf.IsSet(engine.KeyTimeout) {
		opts.conf.Set(engine.KeyTimeout, flags.timeout.String())
	}
	engineOpts, err := engine.OptionsFromConfig(opts.conf)
	if err != nil {
		return err
	}
	wc, err := engine.New(pageURL(arg), nil, engineOpts...)
	if err != nil {
		return err
	}
	if err := wc.Load(cmd.Context()); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, domdbg.ToTree(wc.Layout().Root()).String())
	if flags.timers {
		t := wc.Timers
		fmt.Fprintf(out, "pull %v, parse %v, layout %v, total %v\n",
			t.Pull, t.Parse, t.Layout, t.Total)
	}
	if flags.dot != "" {
		if err := writeDot(flags.dot, wc.Layout().Root()); err != nil {
			return err
		}
	}
	return nil
}

// writeDot writes a GraphViz diagram of a layout tree to a file.
func writeDot(path string, root *tree.Node[*dom.Node]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writing %s: %w", path, cerr)
		}
	}()
	return domdbg.ToGraphViz(root, f, nil)
}

// pageURL turns an argument which is not a URL, but the path of an
// existing file, into a file URL.
func pageURL(arg string) string {
	if strings.Contains(arg, "://") {
		return arg
	}
	if _, err := os.Stat(arg); err != nil {
		return arg
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return arg
	}
	return "file://" + filepath.ToSlash(abs)
}
