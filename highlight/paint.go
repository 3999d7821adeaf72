package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/mattn/go-runewidth"
)

const reset = "\x1b[0m"

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Background tints for added and removed hunk lines. Not taken from the
// theme: near-black so the tint stays subtle under any foreground colors.
var (
	AddedBg   = RGB{R: 0x01, G: 0x18, B: 0x00}
	RemovedBg = RGB{R: 0x24, G: 0x00, B: 0x01}
)

// PaintHunkLine renders one hunk-content line. A leading "+" or "-" selects
// the background tint and is replaced by a single space in front of the
// rendered text, keeping columns aligned with context lines. The remaining
// text is right-padded to width columns (never truncated) and painted token
// by token.
func (h *Highlighter) PaintHunkLine(line string, width int) string {
	var buf strings.Builder
	var bg *RGB
	switch {
	case strings.HasPrefix(line, "+"):
		bg = &AddedBg
	case strings.HasPrefix(line, "-"):
		bg = &RemovedBg
	}
	if bg != nil {
		line = line[1:]
		buf.WriteString(" ")
	}
	if pad := width - runewidth.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	h.paint(line, bg, &buf)
	return buf.String()
}

// paint writes line to buf with foreground colors from the bound lexer and
// style, over an optional uniform background tint. The background escape is
// repeated per token with no resets in between, so adjacent tokens with
// different foregrounds leave no gap in the tint. Exactly one reset is
// written after the final token, also for an empty token stream.
func (h *Highlighter) paint(line string, bg *RGB, buf *strings.Builder) {
	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		// Keep the line visible even when the lexer chokes on it.
		h.paintToken(chroma.Token{Type: chroma.Text, Value: line}, bg, buf)
		buf.WriteString(reset)
		return
	}
	for tok := iterator(); tok != chroma.EOF; tok = iterator() {
		// Lexers may append a newline to the final token; trim it so
		// the painted line stays a single output line.
		tok.Value = strings.TrimRight(tok.Value, "\n")
		if tok.Value == "" {
			continue
		}
		h.paintToken(tok, bg, buf)
	}
	buf.WriteString(reset)
}

func (h *Highlighter) paintToken(tok chroma.Token, bg *RGB, buf *strings.Builder) {
	if bg != nil {
		fmt.Fprintf(buf, "\x1b[48;2;%d;%d;%dm", bg.R, bg.G, bg.B)
	}
	entry := h.style.Get(tok.Type)
	if entry.Colour.IsSet() {
		fmt.Fprintf(buf, "\x1b[38;2;%d;%d;%dm%s",
			entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue(), tok.Value)
	} else {
		buf.WriteString(tok.Value)
	}
}
