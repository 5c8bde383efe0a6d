package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sidra/lingua/internal/api"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the assistant backend is reachable",
	Long: `Check that the assistant backend is reachable.

Probes the backend's /health endpoint and reports the result. Exits
non-zero when the backend is unreachable or unhealthy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealth()
	},
}

func runHealth() error {
	backendURL := getBackendURL()
	client := api.NewClient(backendURL)

	status, err := client.Health()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Backend unreachable"))
		return fmt.Errorf("health check failed: %w", err)
	}

	if status != "ok" {
		return fmt.Errorf("backend reported status %q", status)
	}

	okStyle := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	fmt.Printf("%s %s\n", okStyle.Render("✓"), fmt.Sprintf("Backend healthy at %s", backendURL))
	return nil
}
