package validator

import (
	"fmt"

	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/arcanaland/thirteens/internal/rules"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DefinitionPath string
	Results        ValidationResults
}

func NewValidator(definitionPath string) *Validator {
	return &Validator{
		DefinitionPath: definitionPath,
		Results:        ValidationResults{},
	}
}

// Validate checks a game definition file. The returned error is set only when
// the file cannot be read at all; problems with its content are reported in
// the results.
func (v *Validator) Validate() (ValidationResults, error) {
	def, err := deck.DecodeDefinition(v.DefinitionPath)
	if err != nil {
		return v.Results, err
	}

	v.validateGame(def)
	v.validateDeck(def)
	v.validateRules(def)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateGame(def *deck.Definition) {
	if def.Game.Name == "" {
		v.errorf("game.name is required")
	}

	if def.Game.BoardSize <= 0 {
		v.errorf("game.board_size must be positive, got %d", def.Game.BoardSize)
	}

	if def.Game.Description == "" {
		v.warnf("game.description is empty")
	}
}

func (v *Validator) validateDeck(def *deck.Definition) {
	if len(def.Deck.Ranks) == 0 {
		v.errorf("deck.ranks must not be empty")
	}
	if len(def.Deck.Suits) == 0 {
		v.errorf("deck.suits must not be empty")
	}

	if dup := duplicates(def.Deck.Ranks); len(dup) > 0 {
		v.errorf("duplicate ranks: %v", dup)
	}
	if dup := duplicates(def.Deck.Suits); len(dup) > 0 {
		v.errorf("duplicate suits: %v", dup)
	}

	if len(def.Deck.PointValues) != len(def.Deck.Ranks) {
		v.errorf("deck.point_values has %d entries, expected one per rank (%d)",
			len(def.Deck.PointValues), len(def.Deck.Ranks))
	}
	for i, pv := range def.Deck.PointValues {
		if pv < 0 {
			v.errorf("deck.point_values[%d] is negative (%d)", i, pv)
		}
	}

	deckSize := len(def.Deck.Ranks) * len(def.Deck.Suits)
	if deckSize > 0 && def.Game.BoardSize > deckSize {
		v.errorf("game.board_size (%d) is larger than the deck (%d cards)", def.Game.BoardSize, deckSize)
	}

	// Cards outside the standard ranks and suits have no short code to type
	for _, r := range def.Deck.Ranks {
		if _, _, err := card.ParseCode(shortRank(r) + "S"); err != nil {
			v.warnf("rank %q has no short code and cannot be used with the check command", r)
		}
	}
}

func (v *Validator) validateRules(def *deck.Definition) {
	name := def.Game.Rules
	if name == "" {
		name = def.Game.Name
	}

	if _, _, err := rules.Lookup(name); err != nil {
		v.errorf("no rules for game %q (known games: %v); set game.rules", name, rules.Names())
		return
	}

	switch rules.Variant(name) {
	case rules.Thirteens:
		if !contains(def.Deck.Ranks, string(card.King)) {
			v.warnf("thirteens rules without a king rank: only pairs summing to 13 can be removed")
		}
	case rules.Elevens:
		for _, face := range []card.Rank{card.Jack, card.Queen, card.King} {
			if !contains(def.Deck.Ranks, string(face)) {
				v.warnf("elevens rules without a %s rank: jack-queen-king groups are impossible", face)
			}
		}
	}
}

// shortRank maps a rank name to the code accepted by card.ParseCode
func shortRank(rank string) string {
	switch card.Rank(rank) {
	case card.Ace, card.Jack, card.Queen, card.King:
		return string(rank[0])
	default:
		return rank
	}
}

func duplicates(values []string) []string {
	seen := map[string]bool{}
	var dup []string
	for _, v := range values {
		if seen[v] {
			dup = append(dup, v)
		}
		seen[v] = true
	}
	return dup
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
