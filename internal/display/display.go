// Package display renders decks for terminal output.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ggardner42/card-server/deck"
)

const cardsPerRow = 13

// Styles contains the card styling.
type Styles struct {
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
}

// DefaultStyles returns the standard red/black card styling.
func DefaultStyles() *Styles {
	return &Styles{
		RedCard:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		BlackCard: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}

// Renderer writes decks as rows of styled cards, thirteen to a row.
type Renderer struct {
	styles *Styles
	plain  bool
}

// NewRenderer returns a Renderer. When plain is true cards are rendered as
// bare text with no styling.
func NewRenderer(plain bool) *Renderer {
	return &Renderer{styles: DefaultStyles(), plain: plain}
}

// Card renders a single card, red suits in red.
func (r *Renderer) Card(c deck.Card) string {
	if r.plain {
		return c.String()
	}
	if c.Suit.IsRed() {
		return r.styles.RedCard.Render(c.String())
	}
	return r.styles.BlackCard.Render(c.String())
}

// Deck renders cards in order, thirteen per row.
func (r *Renderer) Deck(cards []deck.Card) string {
	var b strings.Builder
	for i, c := range cards {
		b.WriteString(r.Card(c))
		if (i+1)%cardsPerRow == 0 {
			b.WriteByte('\n')
		} else if i != len(cards)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
