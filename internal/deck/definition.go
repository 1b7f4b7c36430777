package deck

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/thirteens/internal/card"
)

// Definition is the on-disk form of a game definition (game.toml)
type Definition struct {
	Game GameSection `toml:"game"`
	Deck DeckSection `toml:"deck"`
}

type GameSection struct {
	Name        string `toml:"name"`
	Rules       string `toml:"rules"`
	BoardSize   int    `toml:"board_size"`
	Description string `toml:"description"`
}

type DeckSection struct {
	Ranks       []string `toml:"ranks"`
	Suits       []string `toml:"suits"`
	PointValues []int    `toml:"point_values"`
}

// DecodeDefinition reads a game definition file without checking it
func DecodeDefinition(path string) (*Definition, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("game definition not found: %s", path)
	}

	var def Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return &def, nil
}

// LoadDefinition reads a game definition file and converts it to a Layout
func LoadDefinition(path string) (Layout, error) {
	def, err := DecodeDefinition(path)
	if err != nil {
		return Layout{}, err
	}
	return def.Layout()
}

// Layout converts the definition, rejecting definitions a deck cannot be
// built from
func (d *Definition) Layout() (Layout, error) {
	if d.Game.Name == "" {
		return Layout{}, fmt.Errorf("game.name is required")
	}
	if d.Game.BoardSize <= 0 {
		return Layout{}, fmt.Errorf("game.board_size must be positive, got %d", d.Game.BoardSize)
	}
	if len(d.Deck.Ranks) == 0 || len(d.Deck.Suits) == 0 {
		return Layout{}, fmt.Errorf("deck.ranks and deck.suits must not be empty")
	}
	if len(d.Deck.PointValues) != len(d.Deck.Ranks) {
		return Layout{}, fmt.Errorf("deck.point_values has %d entries, expected one per rank (%d)",
			len(d.Deck.PointValues), len(d.Deck.Ranks))
	}

	rules := d.Game.Rules
	if rules == "" {
		rules = d.Game.Name
	}

	layout := Layout{
		Name:        d.Game.Name,
		Rules:       rules,
		BoardSize:   d.Game.BoardSize,
		Ranks:       make([]card.Rank, len(d.Deck.Ranks)),
		Suits:       make([]card.Suit, len(d.Deck.Suits)),
		PointValues: append([]int(nil), d.Deck.PointValues...),
	}
	for i, r := range d.Deck.Ranks {
		layout.Ranks[i] = card.Rank(r)
	}
	for i, s := range d.Deck.Suits {
		layout.Suits[i] = card.Suit(s)
	}

	return layout, nil
}
