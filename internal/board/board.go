package board

import (
	"errors"
	"fmt"

	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/deck"
)

// ErrInvalidSelection is returned for selections that do not name distinct,
// occupied positions of the board
var ErrInvalidSelection = errors.New("invalid selection")

// Slot is one position of the board
type Slot struct {
	Card   card.Card
	Filled bool
}

// Board is a fixed-size row of card slots, some possibly empty
type Board struct {
	slots []Slot
}

// New creates an empty board with the given number of slots
func New(size int) *Board {
	return &Board{slots: make([]Slot, size)}
}

// Size returns the number of slots
func (b *Board) Size() int {
	return len(b.slots)
}

// Occupied reports whether the slot at index holds a card
func (b *Board) Occupied(index int) bool {
	return index >= 0 && index < len(b.slots) && b.slots[index].Filled
}

// CardAt returns the card at index. Asking for an empty slot is a caller
// defect and panics.
func (b *Board) CardAt(index int) card.Card {
	if !b.Occupied(index) {
		panic(fmt.Sprintf("board: no card at index %d", index))
	}
	return b.slots[index].Card
}

// OccupiedIndexes returns the indexes of all filled slots in ascending order
func (b *Board) OccupiedIndexes() []int {
	indexes := make([]int, 0, len(b.slots))
	for i, s := range b.slots {
		if s.Filled {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// Count returns the number of cards on the board
func (b *Board) Count() int {
	n := 0
	for _, s := range b.slots {
		if s.Filled {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no card is left on the board
func (b *Board) IsEmpty() bool {
	return b.Count() == 0
}

// Place puts a card into the slot at index, replacing whatever was there
func (b *Board) Place(index int, c card.Card) {
	b.slots[index] = Slot{Card: c, Filled: true}
}

// Remove empties the slot at index
func (b *Board) Remove(index int) {
	b.slots[index] = Slot{}
}

// Deal fills every empty slot from the deck while cards last and returns the
// number of cards dealt
func (b *Board) Deal(d *deck.Deck) int {
	dealt := 0
	for i := range b.slots {
		if b.slots[i].Filled {
			continue
		}
		c, ok := d.Deal()
		if !ok {
			break
		}
		b.Place(i, c)
		dealt++
	}
	return dealt
}

// ReplaceSelected removes the selected cards and refills their slots from the
// deck. Slots stay empty once the deck runs out.
func (b *Board) ReplaceSelected(selection []int, d *deck.Deck) {
	for _, i := range selection {
		b.Remove(i)
		if c, ok := d.Deal(); ok {
			b.Place(i, c)
		}
	}
}

// Clear empties every slot
func (b *Board) Clear() {
	for i := range b.slots {
		b.slots[i] = Slot{}
	}
}

// Slots returns a copy of the board's slots
func (b *Board) Slots() []Slot {
	return append([]Slot(nil), b.slots...)
}

// CheckSelection verifies that a selection is non-empty and names distinct,
// occupied slots
func (b *Board) CheckSelection(selection []int) error {
	if len(selection) == 0 {
		return fmt.Errorf("%w: no cards selected", ErrInvalidSelection)
	}

	seen := make(map[int]bool, len(selection))
	for _, i := range selection {
		if i < 0 || i >= len(b.slots) {
			return fmt.Errorf("%w: index %d is outside the board (0-%d)", ErrInvalidSelection, i, len(b.slots)-1)
		}
		if !b.slots[i].Filled {
			return fmt.Errorf("%w: slot %d is empty", ErrInvalidSelection, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: index %d selected twice", ErrInvalidSelection, i)
		}
		seen[i] = true
	}
	return nil
}
