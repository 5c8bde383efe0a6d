package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/sidra/lingua/internal/config"
	apierrors "github.com/sidra/lingua/internal/errors"
)

func TestRootCommandFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("backend-url") == nil {
		t.Error("expected persistent --backend-url flag")
	}
	for _, name := range []string{"output", "file", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"chat": false, "health": false, "config": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGetBackendURLFlagPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.BackendURLEnv, "http://from-env:9000")

	backendURLFlag = "http://from-flag:9001"
	defer func() { backendURLFlag = "" }()

	if got := getBackendURL(); got != "http://from-flag:9001" {
		t.Errorf("expected flag to win, got %q", got)
	}
}

func TestGetBackendURLEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.BackendURLEnv, "http://from-env:9000")

	backendURLFlag = ""
	if got := getBackendURL(); got != "http://from-env:9000" {
		t.Errorf("expected env value, got %q", got)
	}
}

func TestRunQueryEmptyPrompt(t *testing.T) {
	if err := runQuery("   \n  "); err == nil {
		t.Error("expected error for whitespace-only prompt")
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := apierrors.NewAPIError(500, "http://x/chat", "boom")
	out := formatErrorMessage(err, "Request failed")

	if !strings.Contains(out, "Request failed") {
		t.Errorf("expected context in output, got %q", out)
	}
	if !strings.Contains(out, "500") {
		t.Errorf("expected status in output, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected body in output, got %q", out)
	}
}

func TestFormatErrorMessageHints(t *testing.T) {
	netErr := apierrors.NewNetworkError("http://x/chat", errors.New("refused"))
	out := formatErrorMessage(netErr, "Request failed")
	if !strings.Contains(out, "Hint") {
		t.Errorf("expected a hint for network errors, got %q", out)
	}

	if formatErrorMessage(nil, "x") != "" {
		t.Error("expected empty output for nil error")
	}
}
