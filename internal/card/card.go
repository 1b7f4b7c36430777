package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card code cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Rank is the symbolic identity of a card, independent of suit
type Rank string

const (
	Ace   Rank = "ace"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
)

// Suit of a card
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a playing card. The point value is assigned by the game
// the deck was built for.
type Card struct {
	Rank       Rank
	Suit       Suit
	PointValue int
}

// New creates a card
func New(rank Rank, suit Suit, pointValue int) Card {
	return Card{Rank: rank, Suit: suit, PointValue: pointValue}
}

// String returns e.g. "king of spades (point value = 0)"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s (point value = %d)", c.Rank, c.Suit, c.PointValue)
}

// Code returns the short form of the card, e.g. "KS" or "10H"
func (c Card) Code() string {
	r, ok := rankCodes[c.Rank]
	if !ok {
		r = strings.ToUpper(string(c.Rank))
	}
	s, ok := suitCodes[c.Suit]
	if !ok {
		s = strings.ToUpper(string(c.Suit))
	}
	return r + s
}

var rankCodes = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

var suitCodes = map[Suit]string{
	Spades: "S", Hearts: "H", Diamonds: "D", Clubs: "C",
}

// ParseCode parses a short card code such as "KS", "10h" or "tc" into its
// rank and suit. The point value depends on the game and is not part of the
// code.
func ParseCode(code string) (Rank, Suit, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if len(s) < 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}

	suit, ok := lookupSuit(s[len(s)-1:])
	if !ok {
		return "", "", fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, code)
	}

	rankCode := s[:len(s)-1]
	if rankCode == "T" {
		rankCode = "10"
	}
	rank, ok := lookupRank(rankCode)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, code)
	}

	return rank, suit, nil
}

func lookupRank(code string) (Rank, bool) {
	for r, c := range rankCodes {
		if c == code {
			return r, true
		}
	}
	return "", false
}

func lookupSuit(code string) (Suit, bool) {
	for s, c := range suitCodes {
		if c == code {
			return s, true
		}
	}
	return "", false
}
