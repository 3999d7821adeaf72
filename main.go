package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ignatenkobrain/delta/config"
	"github.com/ignatenkobrain/delta/stream"
)

func main() {
	// With SIGPIPE ignored, a write to a closed pager returns EPIPE
	// instead of killing the process, so it can be turned into a clean
	// exit below.
	signal.Ignore(syscall.SIGPIPE)

	opts := config.Default()

	root := &cobra.Command{
		Use:   "delta",
		Short: "Syntax-highlight git diff output",
		Long: `delta reads the output of git diff or git log -p on stdin and re-emits
it with syntax-highlighted hunk lines over added/removed background tints.
All other lines pass through unchanged.

Examples:
  git diff | delta
  git log -p | delta -w 120 | less -R`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return stream.Run(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	root.Flags().BoolVar(&opts.Light, "light", false, "Use colors appropriate for a light terminal background")
	root.Flags().BoolVar(&opts.Dark, "dark", false, "Use colors appropriate for a dark terminal background")
	root.Flags().IntVarP(&opts.Width, "width", "w", config.DefaultWidth, "Width in columns of the highlighted output")

	if err := root.Execute(); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// The reader closed the pipe; nothing left to do.
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
