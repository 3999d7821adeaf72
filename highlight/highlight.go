// Package highlight resolves chroma lexers and themes for diff hunk lines
// and renders them as ANSI-escaped terminal output.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colors hunk lines for a single file's language. It is bound
// to one (lexer, style) pair and reused for every hunk line of that file.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// ResolveTheme returns the chroma style for the given name, falling back
// to chroma's builtin fallback style when the name is unknown. Called once
// per run.
func ResolveTheme(name string) *chroma.Style {
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	return style
}

// ForExtension returns a highlighter for the given file extension, or nil
// when the extension is empty or no lexer matches it. A nil highlighter is
// not an error; the caller degrades to pass-through for that file.
func ForExtension(ext string, style *chroma.Style) *Highlighter {
	if ext == "" {
		return nil
	}
	lexer := lexers.Match("file." + ext)
	if lexer == nil {
		return nil
	}
	return &Highlighter{
		lexer: chroma.Coalesce(lexer),
		style: style,
	}
}
