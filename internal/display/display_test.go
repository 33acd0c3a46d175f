package display

import (
	randv2 "math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggardner42/card-server/deck"
	"github.com/ggardner42/card-server/entropy"
	"github.com/ggardner42/card-server/sample"
)

func testDeck() *deck.Deck {
	var key [32]byte
	smp := sample.New(entropy.NewPool(randv2.NewChaCha8(key)))
	return deck.New(smp)
}

func TestPlainCard(t *testing.T) {
	r := NewRenderer(true)
	assert.Equal(t, "AS", r.Card(deck.Card{Suit: deck.Spades, Rank: deck.Ace}))
	assert.Equal(t, "TD", r.Card(deck.Card{Suit: deck.Diamonds, Rank: deck.Ten}))
}

func TestPlainDeckRows(t *testing.T) {
	r := NewRenderer(true)
	out := r.Deck(testDeck().Cards())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "52 cards should render as four rows of thirteen")
	assert.Equal(t, "AS 2S 3S 4S 5S 6S 7S 8S 9S TS JS QS KS", lines[0])
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 13)
	}
}

func TestStyledCardKeepsText(t *testing.T) {
	r := NewRenderer(false)
	assert.Contains(t, r.Card(deck.Card{Suit: deck.Hearts, Rank: deck.Queen}), "QH")
	assert.Contains(t, r.Card(deck.Card{Suit: deck.Clubs, Rank: deck.Two}), "2C")
}

func TestPartialDeck(t *testing.T) {
	r := NewRenderer(true)
	cards := testDeck().Cards()[:5]
	assert.Equal(t, "AS 2S 3S 4S 5S", r.Deck(cards))
}
