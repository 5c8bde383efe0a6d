package commands

import (
	"github.com/spf13/cobra"

	"github.com/sidra/lingua/internal/api"
	"github.com/sidra/lingua/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the language learning assistant.

The full conversation history is sent with every message, so context
carries across turns. Type 'exit', 'quit', or press Esc or Ctrl+C to
end the session. The transcript is not persisted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	backendURL := getBackendURL()
	client := api.NewClient(backendURL)
	return tui.RunChat(client, backendURL)
}
