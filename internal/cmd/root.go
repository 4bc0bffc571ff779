// Package cmd wires command-line flags to the search engine and hands
// the structured result to the renderer.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/scout/internal/engine"
	"github.com/dshills/scout/internal/render"
	"github.com/dshills/scout/pkg/types"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for scout.
func NewRootCommand() *cobra.Command {
	var (
		directory  string
		pattern    string
		extensions string
		useRegex   bool
		ignoreCase bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "scout",
		Short: "Fast parallel text search across a directory tree",
		Long: `Scout recursively searches a directory for a literal string or
regular expression, honoring .gitignore rules along the way, and prints
every matching line with its file, line number, and highlighted matches.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := types.SearchConfig{
				Root:       directory,
				Pattern:    pattern,
				UseRegex:   useRegex,
				IgnoreCase: ignoreCase,
				Extensions: splitExtensions(extensions),
				Workers:    workers,
			}.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Root); err != nil {
				return fmt.Errorf("cannot search %s: %w", cfg.Root, err)
			}

			// Ctrl-C abandons outstanding scans cleanly.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stopSpinner := render.Spinner(cmd.ErrOrStderr(), "Searching...")
			res, err := engine.New().Run(ctx, cfg)
			stopSpinner()
			if err != nil {
				return err
			}

			render.New(cmd.OutOrStdout(), cmd.ErrOrStderr()).Results(res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", ".", "directory to search in")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to search for")
	cmd.Flags().StringVarP(&extensions, "extensions", "e", "*", "comma-separated file extensions to search")
	cmd.Flags().BoolVarP(&useRegex, "regex", "r", false, "treat the pattern as a regular expression")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "ignore case when searching")
	cmd.Flags().IntVar(&workers, "workers", 0, "scan worker count (0 = one per CPU)")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func splitExtensions(s string) []string {
	if s == "" || s == "*" {
		return nil
	}
	return strings.Split(s, ",")
}
