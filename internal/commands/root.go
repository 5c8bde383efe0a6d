// Package commands provides CLI commands for lingua.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sidra/lingua/internal/config"
)

var (
	// Global flags
	backendURLFlag string
	outputFlag     string
	fileFlag       string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lingua [prompt]",
	Short: "Terminal client for the language learning assistant",
	Long: `lingua is a terminal client for a language learning assistant backend.
It keeps the conversation on your side: the full transcript travels with
every request, so the backend stays stateless.

Examples:
  lingua chat                      Start an interactive chat session
  lingua "que significa 'hola'?"   Send a single question
  lingua -f prompt.md              Read the question from a file
  cat prompt.md | lingua           Read the question from stdin
  lingua "Hello" -o reply.md       Save the reply to a file
  lingua health                    Check the backend is reachable`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("lingua %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	config.LoadDotEnv()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendURLFlag, "backend-url", "b", "",
		fmt.Sprintf("Backend base URL (overrides %s and the config file)", config.BackendURLEnv))
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)
}

// getBackendURL resolves the backend base URL from flag, environment and
// stored config, in that order.
func getBackendURL() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return config.ResolveBackendURL(cfg, backendURLFlag)
}
