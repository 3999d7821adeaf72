// Package diff classifies the lines of a unified diff stream by their role.
package diff

import (
	"path"
	"strings"
)

// State is the position of the filter within the diff being read. Exactly
// one state is active at a time; a recognized header line fully replaces
// the previous state.
type State int

const (
	Unknown State = iota
	Commit
	DiffMeta
	DiffHunk
)

func (s State) String() string {
	switch s {
	case Commit:
		return "commit"
	case DiffMeta:
		return "diff-meta"
	case DiffHunk:
		return "diff-hunk"
	default:
		return "unknown"
	}
}

// Result describes how a single line was classified.
type Result struct {
	State State
	// HunkContent is true when the line is hunk content, i.e. the state
	// was already DiffHunk and the line is not a recognized header.
	HunkContent bool
	// NewFile is true for a "diff --" line introducing a per-file diff.
	// Extension then carries the file extension derived from it, possibly
	// empty when no extension-bearing path is found.
	NewFile   bool
	Extension string
}

// Classify applies the line-prefix rules in order, first match wins.
// Unrecognized lines keep the current state.
func Classify(state State, line string) Result {
	switch {
	case strings.HasPrefix(line, "diff --"):
		return Result{State: DiffMeta, NewFile: true, Extension: FileExtension(line)}
	case strings.HasPrefix(line, "commit"):
		return Result{State: Commit}
	case strings.HasPrefix(line, "@@"):
		return Result{State: DiffHunk}
	case state == DiffHunk:
		return Result{State: DiffHunk, HunkContent: true}
	}
	return Result{State: state}
}

// FileExtension derives a file extension from a "diff --" line: the last
// dotted suffix of the last path-like token, without the dot. Rename diffs
// showing two different paths resolve to the second (new) one. Returns ""
// when the token has no extension or is a bare dotfile.
func FileExtension(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	token := strings.Trim(fields[len(fields)-1], `"`)
	base := path.Base(token)
	ext := path.Ext(base)
	if ext == "" || ext == base {
		return ""
	}
	return ext[1:]
}
