// Package stream drives the diff filter: it reads lines, classifies them,
// and writes either the highlighted rendering or the line as-is.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ignatenkobrain/delta/config"
	"github.com/ignatenkobrain/delta/diff"
	"github.com/ignatenkobrain/delta/highlight"
)

// Run filters one diff stream from r to w. It owns all state for the run:
// the classifier state and the highlighter bound to the file currently
// being read. Exactly one output line is written per input line, in input
// order. Read errors and write errors abort the run; a broken-pipe write
// error propagates unchanged for the caller to treat as a clean stop.
func Run(r io.Reader, w io.Writer, opts config.Options) error {
	opts = opts.Normalize()
	style := highlight.ResolveTheme(opts.Theme)

	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	state := diff.Unknown
	var hl *highlight.Highlighter

	for {
		raw, readErr := in.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read input: %w", readErr)
		}
		if raw != "" {
			line := ansi.Strip(strings.TrimSuffix(raw, "\n"))

			res := diff.Classify(state, line)
			state = res.State
			if res.NewFile {
				hl = highlight.ForExtension(res.Extension, style)
			}

			if res.HunkContent && hl != nil {
				line = hl.PaintHunkLine(line, opts.Width)
			}
			if _, err := io.WriteString(out, line); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if err := out.WriteByte('\n'); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
