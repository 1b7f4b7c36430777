package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/thirteens/internal/board"
	"github.com/arcanaland/thirteens/internal/card"
	"github.com/arcanaland/thirteens/internal/config"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/arcanaland/thirteens/internal/rules"
)

var errIllegalSelection = errors.New("selection is not a legal play")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [cards...]",
	Short: "Check a selection against a board of cards",
	Long: `Check lays out the given cards as a board and reports whether the selected
cards may be removed and whether any play is left on the board.

Cards are written as rank and suit codes: A, 2-10 (or T), J, Q, K followed by
S, H, D or C. Use - for an empty slot. Slots are numbered from 0.

Examples:
  thirteens check 4C 9D QS --select 0,1
  thirteens check KS 3H --select 0,1
  thirteens check QS QH JD --hint
  thirteens check --game elevens JS QH KD 5C --select 0,1,2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameFlag, _ := cmd.Flags().GetString("game")
		selection, _ := cmd.Flags().GetIntSlice("select")
		hint, _ := cmd.Flags().GetBool("hint")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		variant, layout, err := resolveGame(gameFlag)
		if err != nil {
			return err
		}
		checker, _, err := rules.Lookup(variant)
		if err != nil {
			return err
		}

		b, err := buildBoard(layout, args)
		if err != nil {
			return err
		}

		return runCheck(cmd.OutOrStdout(), checker, b, newPalette(cfg), selection, hint)
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("game", "g", "", "Game to check against (default from config)")
	checkCmd.Flags().IntSliceP("select", "s", nil, "Indexes of the selected cards, e.g. 0,3")
	checkCmd.Flags().Bool("hint", false, "Show a legal play if there is one")
}

// buildBoard places the cards given as codes on a board of the layout's size
func buildBoard(layout deck.Layout, codes []string) (*board.Board, error) {
	if len(codes) > layout.BoardSize {
		return nil, fmt.Errorf("%d cards given, but a %s board holds %d", len(codes), layout.Name, layout.BoardSize)
	}

	b := board.New(layout.BoardSize)
	seen := map[string]int{}
	for i, code := range codes {
		if code == "-" || code == "--" {
			continue
		}

		rank, suit, err := card.ParseCode(code)
		if err != nil {
			return nil, err
		}
		c, err := layout.Card(rank, suit)
		if err != nil {
			return nil, err
		}

		if prev, ok := seen[c.Code()]; ok {
			return nil, fmt.Errorf("card %s appears twice (slots %d and %d)", c.Code(), prev, i)
		}
		seen[c.Code()] = i

		b.Place(i, c)
	}
	return b, nil
}

// runCheck prints the board and the verdicts for a selection. It returns
// errIllegalSelection when a selection was given and is not a legal play.
func runCheck(w io.Writer, checker rules.Checker, b *board.Board, p palette, selection []int, hint bool) error {
	renderBoard(w, b, p, selection)
	fmt.Fprintln(w)

	legal := true
	if len(selection) > 0 {
		if err := b.CheckSelection(selection); err != nil {
			return err
		}

		legal = checker.IsLegal(b, selection)
		verdict := "legal"
		if !legal {
			verdict = "illegal"
		}
		fmt.Fprintf(w, "%s %s is %s\n", label("Selection:"), describeCards(b, p, selection), verdict)
	}

	answer := "no"
	if checker.AnotherPlayIsPossible(b) {
		answer = "yes"
	}
	fmt.Fprintf(w, "%s %s\n", label("Another play is possible:"), answer)

	if hint {
		if play := checker.FindPlay(b); play != nil {
			fmt.Fprintf(w, "%s %s\n", label("Hint:"), describeCards(b, p, play))
		} else {
			fmt.Fprintf(w, "%s none\n", label("Hint:"))
		}
	}

	if !legal {
		return errIllegalSelection
	}
	return nil
}
