package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sidra/lingua/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit lingua settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file:       %s\n", path)
		fmt.Printf("backend_url:       %s\n", cfg.BackendURL)
		fmt.Printf("verbose:           %t\n", cfg.Verbose)
		fmt.Printf("copy_to_clipboard: %t\n", cfg.CopyToClipboard)
		fmt.Printf("markdown.style:    %s\n", cfg.Markdown.Style)

		fmt.Printf("\nEffective backend URL: %s\n", getBackendURL())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it back to the config file.

Keys:
  backend-url        Base URL of the assistant backend
  verbose            true or false
  copy-to-clipboard  true or false
  markdown-style     dark, light, or path to a JSON style file`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "backend-url":
			cfg.BackendURL = value
		case "verbose":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q for %s", value, key)
			}
			cfg.Verbose = b
		case "copy-to-clipboard":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q for %s", value, key)
			}
			cfg.CopyToClipboard = b
		case "markdown-style":
			cfg.Markdown.Style = value
		default:
			return fmt.Errorf("unknown config key %q", key)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("✓ %s set to %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
