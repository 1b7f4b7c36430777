package board_test

import (
	"testing"

	"github.com/arcanaland/thirteens/internal/board"
	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/stretchr/testify/require"
)

func smallDeck(n int) *deck.Deck {
	ranks := []card.Rank{card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven}
	return deck.New(deck.Layout{
		Ranks:       ranks[:n],
		Suits:       []card.Suit{card.Clubs},
		PointValues: []int{1, 2, 3, 4, 5, 6, 7}[:n],
	})
}

func TestDeal(t *testing.T) {
	t.Run("fills_every_slot", func(t *testing.T) {
		b := board.New(4)
		d := smallDeck(7)

		require.Equal(t, 4, b.Deal(d))
		require.Equal(t, []int{0, 1, 2, 3}, b.OccupiedIndexes())
		require.Equal(t, 3, d.Size())
	})

	t.Run("stops_when_the_deck_runs_out", func(t *testing.T) {
		b := board.New(4)
		d := smallDeck(2)

		require.Equal(t, 2, b.Deal(d))
		require.Equal(t, []int{0, 1}, b.OccupiedIndexes())
		require.True(t, d.IsEmpty())
	})

	t.Run("only_fills_empty_slots", func(t *testing.T) {
		b := board.New(3)
		king := card.New(card.King, card.Spades, 0)
		b.Place(1, king)

		require.Equal(t, 2, b.Deal(smallDeck(5)))
		require.Equal(t, king, b.CardAt(1))
	})
}

func TestReplaceSelected(t *testing.T) {
	t.Run("refills_from_the_deck", func(t *testing.T) {
		b := board.New(3)
		d := smallDeck(5)
		b.Deal(d)
		before := b.CardAt(1)

		b.ReplaceSelected([]int{1}, d)
		require.True(t, b.Occupied(1))
		require.NotEqual(t, before, b.CardAt(1))
		require.Equal(t, 1, d.Size())
	})

	t.Run("leaves_slots_empty_once_the_deck_is_exhausted", func(t *testing.T) {
		b := board.New(3)
		d := smallDeck(3)
		b.Deal(d)

		b.ReplaceSelected([]int{0, 2}, d)
		require.Equal(t, []int{1}, b.OccupiedIndexes())
		require.Equal(t, 1, b.Count())
	})
}

func TestCardAt(t *testing.T) {
	b := board.New(2)
	b.Place(0, card.New(card.Six, card.Hearts, 6))

	require.Equal(t, card.Six, b.CardAt(0).Rank)
	require.Panics(t, func() { b.CardAt(1) })
	require.Panics(t, func() { b.CardAt(5) })
}

func TestRemoveAndClear(t *testing.T) {
	b := board.New(3)
	b.Deal(smallDeck(3))

	b.Remove(1)
	require.False(t, b.Occupied(1))
	require.Equal(t, []int{0, 2}, b.OccupiedIndexes())

	b.Clear()
	require.True(t, b.IsEmpty())
	require.Empty(t, b.OccupiedIndexes())
}

func TestSlotsIsACopy(t *testing.T) {
	b := board.New(1)
	b.Place(0, card.New(card.Ace, card.Clubs, 1))

	slots := b.Slots()
	slots[0] = board.Slot{}
	require.True(t, b.Occupied(0))
}

func TestCheckSelection(t *testing.T) {
	b := board.New(4)
	b.Deal(smallDeck(3))

	scenarios := []struct {
		description string
		selection   []int
		valid       bool
	}{
		{description: "single_occupied_index", selection: []int{0}, valid: true},
		{description: "two_occupied_indexes", selection: []int{0, 2}, valid: true},
		{description: "empty_selection", selection: nil, valid: false},
		{description: "negative_index", selection: []int{-1}, valid: false},
		{description: "index_past_the_end", selection: []int{4}, valid: false},
		{description: "empty_slot", selection: []int{3}, valid: false},
		{description: "duplicate_index", selection: []int{1, 1}, valid: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			err := b.CheckSelection(scenario.selection)
			if scenario.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, board.ErrInvalidSelection)
			}
		})
	}
}
