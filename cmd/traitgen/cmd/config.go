package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"traitgen/src/archetype"
	"traitgen/src/config"
	"traitgen/src/errors"
	"traitgen/src/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage traitgen configuration",
	Long: `Manage traitgen configuration settings.

Examples:
  traitgen config get profile.category
  traitgen config set profile.category historical
  traitgen config set profile.top 5
  traitgen config list
  traitgen config path`,
	// Settings are not validated here so a broken file can still be repaired.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(viper.GetBool("log.json"), viper.GetString("log.level"))
	},
}

// configGetCmd represents the config get command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := viper.Get(key)
		if value == nil {
			return errors.WithHint(errors.Newf("key '%s' not found", key),
				"run 'traitgen config list' to see the available keys")
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := parseConfigValue(args[1])
		if viper.Get(key) == nil {
			return errors.WithHint(errors.Newf("unknown key '%s'", key),
				"run 'traitgen config list' to see the available keys")
		}

		viper.Set(key, value)
		if err := validateViperSettings(); err != nil {
			return errors.Wrapf(err, "refusing to set %s", key)
		}

		configFile, err := settingsPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}

		// Write config
		if err := viper.WriteConfigAs(configFile); err != nil {
			return errors.Wrap(err, "failed to write config")
		}
		logger.Infow("config updated", "key", key, "value", value, "path", configFile)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Set %s = %v\n", key, value)
		fmt.Fprintf(out, "Config saved to %s\n", configFile)
		return nil
	},
}

// configListCmd represents the config list command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		flattened := flattenMap("", viper.AllSettings())

		keys := make([]string, 0, len(flattened))
		for k := range flattened {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if len(keys) == 0 {
			fmt.Fprintln(out, "No configuration settings found")
			return
		}

		fmt.Fprintln(out, "Configuration settings:")
		for _, key := range keys {
			fmt.Fprintf(out, "  %s = %v\n", key, flattened[key])
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			if _, err := os.Stat(configFile); err == nil {
				fmt.Fprintf(out, "\nConfig file: %s\n", configFile)
			}
		}
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// configEditCmd represents the config edit command
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file in your default editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := settingsPath()
		if err != nil {
			return err
		}
		if cfgFile == "" {
			if _, err := config.EnsureConfigDir(); err != nil {
				return errors.Wrap(err, "failed to create config directory")
			}
		}
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			if err := os.WriteFile(configFile, []byte("# traitgen configuration file\n"), 0644); err != nil {
				return errors.Wrapf(err, "failed to create %s", configFile)
			}
		}

		editor := findEditor()
		if editor == "" {
			return errors.WithHint(errors.New("no editor found"), "set $EDITOR or $VISUAL")
		}

		editorCmd := exec.Command(editor, configFile)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr
		if err := editorCmd.Run(); err != nil {
			return errors.Wrapf(err, "editor %s failed", editor)
		}

		if _, err := config.LoadSettings(configFile); err != nil {
			return errors.WithHint(err, "the file was saved but is invalid; run 'traitgen config edit' again")
		}
		return nil
	},
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}
	return ""
}

// settingsPath is the --config file or the XDG default.
func settingsPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	path, err := config.GetSettingsPath()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve config directory")
	}
	return path, nil
}

// parseConfigValue turns "true"/"false" into bools and integers into ints.
func parseConfigValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

// validateViperSettings checks the settings viper would produce.
func validateViperSettings() error {
	s := config.DefaultSettings()
	if err := viper.Unmarshal(s); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if _, err := archetype.ParseCategory(s.Profile.Category); err != nil {
		return err
	}
	_, err := logger.ParseLevel(s.Log.Level)
	return err
}

// flattenMap flattens a nested map into dot-notation keys
func flattenMap(prefix string, m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			for k, val := range flattenMap(fullKey, v) {
				result[k] = val
			}
		case []interface{}:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprintf("%v", item))
			}
			result[fullKey] = strings.Join(items, ", ")
		default:
			result[fullKey] = value
		}
	}

	return result
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}
