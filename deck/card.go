package deck

// Suit of a playing card.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the single-letter suit code.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// IsRed reports whether the suit prints red (Hearts or Diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank of a playing card, ace low.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const rankCodes = "A23456789TJQK"

// String returns the single-letter rank code, with "T" for ten.
func (r Rank) String() string {
	if int(r) >= len(rankCodes) {
		return "?"
	}
	return string(rankCodes[r])
}

// Card is one playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// String renders rank then suit, e.g. "AS" for the ace of spades or "TD"
// for the ten of diamonds.
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
