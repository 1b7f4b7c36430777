package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/thirteens/internal/config"
	"github.com/arcanaland/thirteens/internal/game"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals a board and reads your selections from standard input.

Type the slot numbers of the cards to remove, separated by spaces or commas.
Other commands:
  h, hint      show a legal play
  r, restart   shuffle and deal again
  q, quit      leave the game`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gameFlag, _ := cmd.Flags().GetString("game")
		seed, _ := cmd.Flags().GetInt64("seed")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		variant, layout, err := resolveGame(gameFlag)
		if err != nil {
			return err
		}

		opts := []game.Option{game.WithLayout(layout), game.WithLogger(logger)}
		if seed == 0 {
			seed = cfg.Seed
		}
		if seed != 0 {
			opts = append(opts, game.WithSeed(seed))
		}

		g, err := game.New(variant, opts...)
		if err != nil {
			return fmt.Errorf("error starting game: %w", err)
		}

		return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), g, newPalette(cfg))
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("game", "g", "", "Game to play (default from config)")
	playCmd.Flags().Int64("seed", 0, "Seed for the shuffle (default from config, random if 0)")
}

// playLoop runs the game until it is over or the input ends
func playLoop(in io.Reader, out io.Writer, g *game.Game, p palette) error {
	scanner := bufio.NewScanner(in)
	var hint []int

	for {
		fmt.Fprintln(out)
		renderBoard(out, g.Board(), p, hint)
		fmt.Fprintf(out, "%s %d\n", label("Cards left in deck:"), g.DeckSize())
		hint = nil

		switch g.State() {
		case game.Won:
			fmt.Fprintf(out, "You win! All cards removed in %d plays.\n", g.Plays())
			return nil
		case game.Lost:
			fmt.Fprintf(out, "No more plays. You lose with %d cards on the board.\n", g.Board().Count())
			return nil
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch line := strings.ToLower(strings.TrimSpace(scanner.Text())); line {
		case "":
		case "q", "quit":
			return nil
		case "h", "hint":
			hint = g.Hint()
			fmt.Fprintf(out, "%s %s\n", label("Hint:"), describeCards(g.Board(), p, hint))
		case "r", "restart":
			g.Restart()
		default:
			selection, err := parseSelection(line)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			if err := g.Play(selection); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		}
	}
}

// parseSelection reads slot numbers separated by spaces or commas
func parseSelection(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	selection := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a slot number: %q", f)
		}
		selection = append(selection, i)
	}
	return selection, nil
}
