package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/thirteens/internal/board"
	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/config"

	colorize "github.com/fatih/color"
)

const cellWidth = 10

// palette colours cards by suit. The zero value prints plain text.
type palette struct {
	enabled bool
	red     colorful.Color
	black   colorful.Color
}

// newPalette builds the palette from the config, honouring the color setting
func newPalette(cfg *config.Config) palette {
	switch cfg.Color {
	case "always":
		colorize.NoColor = false
	case "never":
		colorize.NoColor = true
	}

	p := palette{enabled: !colorize.NoColor}
	p.red = parseColor(cfg.RedSuitColor, colorful.Color{R: 0.88, G: 0.24, B: 0.24})
	p.black = parseColor(cfg.BlackSuitColor, colorful.Color{R: 0.85, G: 0.85, B: 0.85})
	return p
}

func parseColor(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// card renders a card as its rank code followed by the suit symbol
func (p palette) card(c card.Card) string {
	text := cardLabel(c)
	if !p.enabled {
		return text
	}
	if c.Suit.IsRed() {
		return ansiColorString(text, p.red)
	}
	return ansiColorString(text, p.black)
}

func cardLabel(c card.Card) string {
	code := c.Code()
	symbol := getSuitSymbol(c.Suit)
	if symbol == "" {
		return code
	}
	// Swap the suit letter for its symbol
	return strings.TrimSuffix(code, strings.ToUpper(string(c.Suit)[:1])) + symbol
}

func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Spades:
		return "♠"
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	case card.Clubs:
		return "♣"
	default:
		return ""
	}
}

// ansiColorString formats text with a 24-bit foreground colour
func ansiColorString(text string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// renderBoard prints the board as rows of numbered slots, as many per row as
// the terminal allows. Highlighted slots are marked with an asterisk.
func renderBoard(w io.Writer, b *board.Board, p palette, highlight []int) {
	perRow := terminalWidth() / cellWidth
	if perRow < 1 {
		perRow = 1
	}

	marked := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		marked[i] = true
	}

	var line strings.Builder
	for i, slot := range b.Slots() {
		text, plain := "--", "--"
		if slot.Filled {
			text, plain = p.card(slot.Card), cardLabel(slot.Card)
		}

		mark := " "
		if marked[i] {
			mark = "*"
		}

		cell := fmt.Sprintf("%s%d:%s", mark, i, text)
		visibleWidth := utf8.RuneCountInString(fmt.Sprintf("%s%d:%s", mark, i, plain))
		if pad := cellWidth - visibleWidth; pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		line.WriteString(cell)

		if (i+1)%perRow == 0 || i == b.Size()-1 {
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// label formats a heading the way the rest of the output does
func label(s string) string {
	return colorize.CyanString(s)
}

// describeCards lists the cards at the given indexes
func describeCards(b *board.Board, p palette, indexes []int) string {
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = fmt.Sprintf("%d:%s", idx, p.card(b.CardAt(idx)))
	}
	return strings.Join(parts, " ")
}
