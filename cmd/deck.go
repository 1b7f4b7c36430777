package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/thirteens/internal/config"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/arcanaland/thirteens/internal/rules"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage games in your game library",
	Long:  `Commands for listing, inspecting and choosing the games you play.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List built-in games and the games in your game library",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultGame, err := config.GetDefaultGame()
		if err != nil {
			return fmt.Errorf("error getting default game: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, name := range rules.Names() {
			printGameEntry(out, name, "built-in", name == defaultGame)
		}

		libraryPath := config.GetGameLibraryPath()

		// Check if game library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			return nil
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading game library: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			layout, err := deck.LoadDefinition(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid definition, skip
				logger.Debug("skipping game definition", zap.String("file", entry.Name()), zap.Error(err))
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".toml")
			isDefault := name == defaultGame || entry.Name() == defaultGame
			printGameEntry(out, name, layout.Rules+" rules", isDefault)
		}

		return nil
	},
}

func printGameEntry(w io.Writer, name, detail string, isDefault bool) {
	if isDefault {
		fmt.Fprintf(w, "* %s (%s) [DEFAULT]\n", name, detail)
	} else {
		fmt.Fprintf(w, "  %s (%s)\n", name, detail)
	}
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [game]",
	Short: "Show the cards and point values of a game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		_, layout, err := resolveGame(name)
		if err != nil {
			return err
		}

		printLayout(cmd.OutOrStdout(), layout)
		return nil
	},
}

func printLayout(w io.Writer, layout deck.Layout) {
	fmt.Fprintf(w, "%s %s\n", label("Game: "), layout.Name)
	fmt.Fprintf(w, "%s %s\n", label("Rules:"), layout.Rules)
	fmt.Fprintf(w, "%s %d slots\n", label("Board:"), layout.BoardSize)
	fmt.Fprintf(w, "%s %d cards\n", label("Deck: "), len(layout.Ranks)*len(layout.Suits))

	suits := make([]string, len(layout.Suits))
	for i, s := range layout.Suits {
		suits[i] = string(s)
	}
	fmt.Fprintf(w, "%s %s\n", label("Suits:"), strings.Join(suits, ", "))

	fmt.Fprintln(w)
	fmt.Fprintln(w, label("Rank      Points"))
	for i, r := range layout.Ranks {
		fmt.Fprintf(w, "%-9s %d\n", r, layout.PointValues[i])
	}
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [game]",
	Short: "Set the default game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Make sure the game can be loaded
		if _, _, err := resolveGame(name); err != nil {
			return fmt.Errorf("not a valid game: %w", err)
		}

		if err := config.SetDefaultGame(name); err != nil {
			return fmt.Errorf("error setting default game: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default game set to: %s\n", name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the game library and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetGameLibraryPath()

		// Create the game library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating game library: %w", err)
		}

		fmt.Fprintln(out, "Game library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add game definitions (*.toml) to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
