package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arcanaland/thirteens/internal/board"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/arcanaland/thirteens/internal/rules"
)

var (
	// ErrIllegalPlay is returned when the selected cards may not be removed
	ErrIllegalPlay = errors.New("illegal play")
	// ErrGameOver is returned when playing after the game has ended
	ErrGameOver = errors.New("game is over")
)

// State of a game
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Game is one round of a solitaire removal game: a board dealt from a
// shuffled deck, cleared group by group under the rules of its variant.
type Game struct {
	checker rules.Checker
	layout  deck.Layout
	board   *board.Board
	deck    *deck.Deck
	rng     *rand.Rand
	logger  *zap.Logger
	plays   int
}

// Option configures a Game
type Option func(*Game)

// WithSeed makes the shuffle reproducible
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLayout replaces the variant's standard deck and board size
func WithLayout(layout deck.Layout) Option {
	return func(g *Game) {
		g.layout = layout
	}
}

// WithLogger sets the logger plays are reported to
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New deals a game of the named variant
func New(variant string, opts ...Option) (*Game, error) {
	checker, layout, err := rules.Lookup(variant)
	if err != nil {
		return nil, err
	}

	g := &Game{
		checker: checker,
		layout:  layout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.layout.BoardSize <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %d", g.layout.BoardSize)
	}
	if len(g.layout.PointValues) != len(g.layout.Ranks) {
		return nil, fmt.Errorf("layout %s has %d point values for %d ranks",
			g.layout.Name, len(g.layout.PointValues), len(g.layout.Ranks))
	}

	g.board = board.New(g.layout.BoardSize)
	g.Restart()
	return g, nil
}

// Restart collects all cards, shuffles and deals a new board
func (g *Game) Restart() {
	g.deck = deck.New(g.layout)
	g.deck.Shuffle(g.rng)
	g.board.Clear()
	g.board.Deal(g.deck)
	g.plays = 0

	g.logger.Debug("dealt new board",
		zap.String("game", g.layout.Name),
		zap.Int("board_size", g.board.Size()),
		zap.Int("deck_size", g.deck.Size()),
	)
}

// Board returns the board being played
func (g *Game) Board() *board.Board {
	return g.board
}

// Layout returns the deck layout the game was dealt from
func (g *Game) Layout() deck.Layout {
	return g.layout
}

// DeckSize returns the number of cards not yet dealt
func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// Plays returns the number of groups removed since the last deal
func (g *Game) Plays() int {
	return g.plays
}

// Play removes the selected cards if they form a legal group and refills their
// slots from the deck
func (g *Game) Play(selection []int) error {
	if g.State() != InProgress {
		return ErrGameOver
	}
	if err := g.board.CheckSelection(selection); err != nil {
		return err
	}
	if !g.checker.IsLegal(g.board, selection) {
		g.logger.Debug("rejected play", zap.Ints("selection", selection))
		return fmt.Errorf("%w: %s", ErrIllegalPlay, g.describe(selection))
	}

	removed := g.describe(selection)
	g.board.ReplaceSelected(selection, g.deck)
	g.plays++

	g.logger.Debug("removed cards",
		zap.Ints("selection", selection),
		zap.String("cards", removed),
		zap.Int("deck_size", g.deck.Size()),
		zap.Stringer("state", g.State()),
	)
	return nil
}

// Hint returns the indexes of one legal group, or nil when none is left
func (g *Game) Hint() []int {
	return g.checker.FindPlay(g.board)
}

// State reports whether the game is won, lost or still going
func (g *Game) State() State {
	if g.board.IsEmpty() && g.deck.IsEmpty() {
		return Won
	}
	if !g.checker.AnotherPlayIsPossible(g.board) {
		return Lost
	}
	return InProgress
}

func (g *Game) describe(selection []int) string {
	codes := make([]string, len(selection))
	for i, idx := range selection {
		codes[i] = g.board.CardAt(idx).Code()
	}
	return strings.Join(codes, " ")
}
