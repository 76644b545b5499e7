package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"traitgen/src/archetype"
	"traitgen/src/config"
	"traitgen/src/errors"
	"traitgen/src/logger"
	"traitgen/src/scorefile"
	"traitgen/src/values"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Config file
	cfgFile string
	// configErr is set by initConfig when the config file exists but cannot be read
	configErr error

	// Score input
	scoresFile string
	scorePairs []string

	// Output
	outputFormat string

	// settings is resolved before every command except config
	settings *config.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "traitgen",
	Short: "Turn value survey scores into archetypes, descriptions and system prompts",
	Long: `traitgen reads PVQ-RR basic value scores and derives a ranked value profile,
the best matching persona archetype, a plain-language description and an
assistant system prompt.

Scores come from a TOML, YAML or JSON file (--scores) and/or individual
CODE=VALUE pairs (--score). Codes that are not given default to the 3.5
midpoint.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.DefaultSettings()

	// Config file
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/traitgen/config.toml)")

	// Score input
	rootCmd.PersistentFlags().StringVar(&scoresFile, "scores", "", "score file (.toml, .yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringArrayVar(&scorePairs, "score", nil, "single score as CODE=VALUE, repeatable; overrides --scores")

	// Profile
	rootCmd.PersistentFlags().String("category", defaults.Profile.Category, "archetype category (fictional, historical, superheroes, mythological, literary)")
	rootCmd.PersistentFlags().Int("top", defaults.Profile.Top, "number of values listed at each end of the ranking")

	// Output and logging
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().Bool("log-json", defaults.Log.JSON, "write logs as JSON")
	rootCmd.PersistentFlags().String("log-level", defaults.Log.Level, "log level: debug, info, warn or error")

	bindFlags()
}

// bindFlags binds persistent flags to their viper keys
func bindFlags() {
	viper.BindPFlag("profile.category", rootCmd.PersistentFlags().Lookup("category"))
	viper.BindPFlag("profile.top", rootCmd.PersistentFlags().Lookup("top"))
	viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	configErr = nil

	path := cfgFile
	if path == "" {
		p, err := config.GetSettingsPath()
		if err != nil {
			configErr = errors.Wrap(err, "failed to resolve config directory")
			return
		}
		path = p
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")

	// Environment variables, e.g. TRAITGEN_PROFILE_CATEGORY
	viper.SetEnvPrefix("TRAITGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !isMissingConfig(err) {
		configErr = errors.Wrapf(err, "failed to read config %s", path)
	}
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || os.IsNotExist(err) || errors.Is(err, fs.ErrNotExist)
}

// loadSettings layers env and flags from viper over the validated file settings.
func loadSettings() (*config.Settings, error) {
	if configErr != nil {
		return nil, configErr
	}
	s, err := config.LoadSettings(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(s); err != nil {
		return nil, errors.Wrap(err, "failed to apply configuration overrides")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// setup resolves settings and starts the logger.
func setup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if err := logger.Initialize(s.Log.JSON, s.Log.Level); err != nil {
		return err
	}
	if err := checkOutputFormat(); err != nil {
		return err
	}
	settings = s
	logger.Debugw("settings resolved",
		"config", viper.ConfigFileUsed(),
		"category", s.Profile.Category,
		"top", s.Profile.Top)
	return nil
}

// resolveScores merges the score file with --score pairs.
func resolveScores() (values.Scores, error) {
	scores := values.Scores{}
	if scoresFile != "" {
		loaded, err := scorefile.Load(scoresFile)
		if err != nil {
			return nil, err
		}
		scores = loaded
	}

	pairs, err := scorefile.ParsePairs(scorePairs)
	if err != nil {
		return nil, err
	}
	scores = scorefile.Merge(scores, pairs)

	if len(scores) == 0 {
		logger.Warnw("no scores given, every value uses the midpoint", "default", values.DefaultScore)
	}
	return scores, nil
}

// resolveCategory validates the configured category.
func resolveCategory() (archetype.Category, error) {
	cat, err := archetype.ParseCategory(settings.Profile.Category)
	if err != nil {
		names := make([]string, 0, len(archetype.Categories()))
		for _, ci := range archetype.Categories() {
			names = append(names, string(ci.Value))
		}
		return "", errors.WithHintf(err, "choose one of %s", strings.Join(names, ", "))
	}
	return cat, nil
}

const (
	inputHint    = "scores are CODE=VALUE pairs or a .toml, .yaml, .yml or .json file of CODE = score"
	notFoundHint = "run 'traitgen categories' for categories; value codes are listed by 'traitgen values --top 19'"
)

// printError writes err and any attached hints. Errors without hints get a
// generic one for their class.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", pterm.Red("Error:"), err)
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		switch {
		case errors.IsInputError(err):
			hints = []string{inputHint}
		case errors.IsNotFound(err):
			hints = []string{notFoundHint}
		}
	}
	for _, hint := range hints {
		fmt.Fprintf(w, "%s %s\n", pterm.Yellow("Hint:"), hint)
	}
}
