package game_test

import (
	"testing"

	"github.com/arcanaland/thirteens/internal/board"
	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/arcanaland/thirteens/internal/game"
	"github.com/arcanaland/thirteens/internal/rules"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// kingsOnly is a deck in which every card can be removed on its own
var kingsOnly = deck.Layout{
	Name:        "kings",
	Rules:       "thirteens",
	BoardSize:   2,
	Ranks:       []card.Rank{card.King},
	Suits:       []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs},
	PointValues: []int{0},
}

// inProgress returns a seeded thirteens game that still has a play
func inProgress(t *testing.T) *game.Game {
	t.Helper()
	for seed := int64(0); seed < 100; seed++ {
		g, err := game.New("thirteens", game.WithSeed(seed))
		require.NoError(t, err)
		if g.State() == game.InProgress {
			return g
		}
	}
	t.Fatal("no playable deal found")
	return nil
}

func TestNew(t *testing.T) {
	t.Run("deals_a_full_board", func(t *testing.T) {
		g, err := game.New("thirteens", game.WithSeed(1))
		require.NoError(t, err)
		require.Equal(t, 10, g.Board().Count())
		require.Equal(t, 42, g.DeckSize())
		require.Equal(t, 0, g.Plays())
	})

	t.Run("same_seed_deals_the_same_board", func(t *testing.T) {
		a, err := game.New("thirteens", game.WithSeed(5))
		require.NoError(t, err)
		b, err := game.New("thirteens", game.WithSeed(5))
		require.NoError(t, err)
		require.Equal(t, a.Board().Slots(), b.Board().Slots())
	})

	t.Run("unknown_variant", func(t *testing.T) {
		_, err := game.New("fifteens")
		require.ErrorIs(t, err, rules.ErrUnknownVariant)
	})

	t.Run("rejects_a_layout_without_a_board", func(t *testing.T) {
		layout := kingsOnly
		layout.BoardSize = 0
		_, err := game.New("thirteens", game.WithLayout(layout))
		require.Error(t, err)
	})
}

func TestPlay(t *testing.T) {
	t.Run("rejects_an_invalid_selection", func(t *testing.T) {
		g := inProgress(t)

		require.ErrorIs(t, g.Play([]int{10}), board.ErrInvalidSelection)
		require.ErrorIs(t, g.Play([]int{0, 0}), board.ErrInvalidSelection)
		require.ErrorIs(t, g.Play(nil), board.ErrInvalidSelection)
	})

	t.Run("rejects_an_illegal_selection", func(t *testing.T) {
		g := inProgress(t)

		index := -1
		for _, i := range g.Board().OccupiedIndexes() {
			if g.Board().CardAt(i).Rank != card.King {
				index = i
				break
			}
		}
		require.GreaterOrEqual(t, index, 0)

		before := g.Board().Slots()
		require.ErrorIs(t, g.Play([]int{index}), game.ErrIllegalPlay)
		require.Equal(t, before, g.Board().Slots())
		require.Equal(t, 0, g.Plays())
	})

	t.Run("removes_and_refills", func(t *testing.T) {
		g, err := game.New("thirteens", game.WithLayout(kingsOnly))
		require.NoError(t, err)

		require.NoError(t, g.Play([]int{0}))
		require.Equal(t, 1, g.Plays())
		require.Equal(t, 2, g.Board().Count())
		require.Equal(t, 1, g.DeckSize())
	})
}

func TestWinningGame(t *testing.T) {
	g, err := game.New("thirteens", game.WithLayout(kingsOnly))
	require.NoError(t, err)

	for g.State() == game.InProgress {
		hint := g.Hint()
		require.NotNil(t, hint)
		require.NoError(t, g.Play(hint))
	}

	require.Equal(t, game.Won, g.State())
	require.Equal(t, 4, g.Plays())
	require.True(t, g.Board().IsEmpty())
	require.ErrorIs(t, g.Play([]int{0}), game.ErrGameOver)
}

func TestPlayingWithHintsEnds(t *testing.T) {
	for _, variant := range rules.Names() {
		t.Run(variant, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				g, err := game.New(variant, game.WithSeed(seed))
				require.NoError(t, err)

				for g.State() == game.InProgress {
					require.NoError(t, g.Play(g.Hint()))
				}

				switch g.State() {
				case game.Won:
					require.True(t, g.Board().IsEmpty())
					require.Zero(t, g.DeckSize())
				case game.Lost:
					require.Nil(t, g.Hint())
					require.False(t, g.Board().IsEmpty())
				}
			}
		})
	}
}

func TestRestart(t *testing.T) {
	g, err := game.New("thirteens", game.WithLayout(kingsOnly))
	require.NoError(t, err)
	require.NoError(t, g.Play([]int{1}))

	g.Restart()
	require.Equal(t, 0, g.Plays())
	require.Equal(t, 2, g.DeckSize())
	require.Equal(t, 2, g.Board().Count())
}

func TestPlaysAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g, err := game.New("thirteens", game.WithLayout(kingsOnly), game.WithLogger(zap.New(core)))
	require.NoError(t, err)

	require.NoError(t, g.Play([]int{0}))

	entries := logs.FilterMessage("removed cards").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(1), entries[0].ContextMap()["deck_size"])
}

func TestStateString(t *testing.T) {
	require.Equal(t, "in progress", game.InProgress.String())
	require.Equal(t, "won", game.Won.String())
	require.Equal(t, "lost", game.Lost.String())
}
