package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/deck"
)

// ErrUnknownVariant is returned by Lookup for names without built-in rules
var ErrUnknownVariant = errors.New("unknown game")

// Board is the read-only view of a board the rules are evaluated against.
// Indexes handed to a Checker must name occupied positions.
type Board interface {
	CardAt(index int) card.Card
	OccupiedIndexes() []int
}

// Checker decides which groups of cards may be removed in a game
type Checker interface {
	// IsLegal reports whether the selected cards form a group that may be removed
	IsLegal(b Board, selection []int) bool
	// AnotherPlayIsPossible reports whether any legal group is left on the board
	AnotherPlayIsPossible(b Board) bool
	// FindPlay returns the indexes of one legal group, or nil when there is none
	FindPlay(b Board) []int
}

// Variant names a game with built-in rules
type Variant string

const (
	Thirteens Variant = "thirteens"
	Elevens   Variant = "elevens"
)

var standardRanks = []card.Rank{
	card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
	card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King,
}

var standardSuits = []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}

var variants = map[Variant]struct {
	checker Checker
	layout  deck.Layout
}{
	Thirteens: {
		checker: thirteens{},
		layout: deck.Layout{
			Name:        string(Thirteens),
			Rules:       string(Thirteens),
			BoardSize:   10,
			Ranks:       standardRanks,
			Suits:       standardSuits,
			PointValues: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0},
		},
	},
	Elevens: {
		checker: elevens{},
		layout: deck.Layout{
			Name:        string(Elevens),
			Rules:       string(Elevens),
			BoardSize:   9,
			Ranks:       standardRanks,
			Suits:       standardSuits,
			PointValues: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 0, 0},
		},
	},
}

// Lookup returns the checker and the standard layout of a built-in game
func Lookup(name string) (Checker, deck.Layout, error) {
	v, ok := variants[Variant(name)]
	if !ok {
		return nil, deck.Layout{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	layout := v.layout
	layout.Ranks = append([]card.Rank(nil), layout.Ranks...)
	layout.Suits = append([]card.Suit(nil), layout.Suits...)
	layout.PointValues = append([]int(nil), layout.PointValues...)
	return v.checker, layout, nil
}

// Names returns the names of the built-in games in sorted order
func Names() []string {
	names := make([]string, 0, len(variants))
	for v := range variants {
		names = append(names, string(v))
	}
	sort.Strings(names)
	return names
}

// findRank returns the first of indexes holding a card of the given rank, or -1
func findRank(b Board, indexes []int, rank card.Rank) int {
	for _, i := range indexes {
		if b.CardAt(i).Rank == rank {
			return i
		}
	}
	return -1
}

// findPairSum returns the first unordered pair of distinct indexes whose
// point values add up to sum, or nil
func findPairSum(b Board, indexes []int, sum int) []int {
	for i := 0; i < len(indexes); i++ {
		for j := i + 1; j < len(indexes); j++ {
			a, c := indexes[i], indexes[j]
			if a == c {
				continue
			}
			if b.CardAt(a).PointValue+b.CardAt(c).PointValue == sum {
				return []int{a, c}
			}
		}
	}
	return nil
}
