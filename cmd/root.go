package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/thirteens/internal/config"
	"github.com/arcanaland/thirteens/internal/deck"
	"github.com/arcanaland/thirteens/internal/logging"
	"github.com/arcanaland/thirteens/internal/rules"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "thirteens",
	Short: "Play and check games of Thirteens",
	Long: `Thirteens is a solitaire card game played on a row of ten cards.
Remove kings on their own and pairs of cards whose point values add up to 13;
the game is won when every card of the deck has been removed.

The related game Elevens and custom game definitions are supported too.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// resolveGame finds the rules and layout for a game name: a built-in game, a
// definition in the game library or a path to a definition file. An empty
// name selects the default game from the config.
func resolveGame(name string) (string, deck.Layout, error) {
	if name == "" {
		defaultGame, err := config.GetDefaultGame()
		if err != nil {
			return "", deck.Layout{}, err
		}
		name = defaultGame
	}

	if _, layout, err := rules.Lookup(name); err == nil {
		return name, layout, nil
	}

	path, err := config.GetDefinitionPath(name)
	if err != nil {
		return "", deck.Layout{}, err
	}

	layout, err := deck.LoadDefinition(path)
	if err != nil {
		return "", deck.Layout{}, err
	}

	logger.Debug("loaded game definition", zap.String("path", path), zap.String("rules", layout.Rules))
	return layout.Rules, layout, nil
}
