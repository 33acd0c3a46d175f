// Package deck provides a standard 52-card deck shuffled with secure,
// entropy-conserving randomness.
package deck

import (
	"github.com/ggardner42/card-server/sample"
	"github.com/ggardner42/card-server/shuffle"
)

// Size is the number of cards in a deck.
const Size = 52

// Deck is a fixed deck of 52 cards dealt from the top.
type Deck struct {
	cards [Size]Card // Fixed size array
	next  int
	smp   *sample.Sampler
}

// New returns an ordered deck (ace through king of each suit) that shuffles
// with smp.
func New(smp *sample.Sampler) *Deck {
	d := &Deck{smp: smp}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards[i] = Card{Suit: suit, Rank: rank}
			i++
		}
	}
	return d
}

// Shuffle permutes the deck in place using Fisher-Yates and rewinds
// dealing. Every one of the 52! orderings is equally likely.
func (d *Deck) Shuffle() error {
	d.next = 0
	return shuffle.Slice(d.cards[:], d.smp)
}

// Deal deals n cards from the top of the deck, or nil if fewer remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card and reports whether one was available.
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Reset reshuffles the deck and makes all 52 cards dealable again.
func (d *Deck) Reset() error {
	return d.Shuffle()
}

// Cards returns the deck's current order. The slice aliases the deck's
// backing array; it is intended for display and inspection.
func (d *Deck) Cards() []Card {
	return d.cards[:]
}
