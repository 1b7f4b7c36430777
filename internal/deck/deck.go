package deck

import (
	"fmt"
	"math/rand"

	"github.com/arcanaland/thirteens/internal/card"
)

// Layout describes the cards a game is played with: the board size and the
// ranks, suits and point values the deck is built from.
type Layout struct {
	Name        string
	Rules       string
	BoardSize   int
	Ranks       []card.Rank
	Suits       []card.Suit
	PointValues []int
}

// PointValue returns the point value of a rank in this layout
func (l Layout) PointValue(rank card.Rank) (int, bool) {
	for i, r := range l.Ranks {
		if r == rank && i < len(l.PointValues) {
			return l.PointValues[i], true
		}
	}
	return 0, false
}

// Card builds the card of the given rank and suit with this layout's point value
func (l Layout) Card(rank card.Rank, suit card.Suit) (card.Card, error) {
	pv, ok := l.PointValue(rank)
	if !ok {
		return card.Card{}, fmt.Errorf("rank %s is not part of the %s deck", rank, l.Name)
	}
	if !l.hasSuit(suit) {
		return card.Card{}, fmt.Errorf("suit %s is not part of the %s deck", suit, l.Name)
	}
	return card.New(rank, suit, pv), nil
}

func (l Layout) hasSuit(suit card.Suit) bool {
	for _, s := range l.Suits {
		if s == suit {
			return true
		}
	}
	return false
}

// Deck is the stock of undealt cards
type Deck struct {
	cards []card.Card
}

// New creates a deck holding one card for every suit and rank of the layout
func New(layout Layout) *Deck {
	d := &Deck{cards: make([]card.Card, 0, len(layout.Ranks)*len(layout.Suits))}
	for _, suit := range layout.Suits {
		for i, rank := range layout.Ranks {
			d.cards = append(d.cards, card.New(rank, suit, layout.PointValues[i]))
		}
	}
	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle(rng *rand.Rand) {
	// Fisher-Yates shuffle
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card, or false when the deck is empty
func (d *Deck) Deal() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}

	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Size returns the number of undealt cards
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether all cards have been dealt
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
