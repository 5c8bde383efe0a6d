package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/sidra/lingua/internal/errors"
	"github.com/sidra/lingua/internal/models"
	"github.com/sidra/lingua/internal/render"
)

// Message types for the TUI
type (
	// replyMsg closes a successful exchange with the assistant's reply text.
	replyMsg struct {
		text string
	}
	// replyErrMsg closes a failed exchange. The error is absorbed here and
	// becomes a transcript entry; it never propagates past Update.
	replyErrMsg struct {
		err error
	}
)

// ChatBackend is the slice of the API client the conversation needs.
type ChatBackend interface {
	SendChat(history []models.HistoryEntry, userInput string) (string, error)
}

// Model is the conversation controller. It owns the transcript, the
// input state and the pending flag, and drives at most one network
// exchange at a time.
type Model struct {
	backend    ChatBackend
	backendURL string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	transcript models.Transcript
	pending    bool
	ready      bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a new chat TUI model
func NewModel(backend ChatBackend, backendURL string) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about any language..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		backend:    backend,
		backendURL: backendURL,
		textarea:   ta,
		spinner:    s,
		transcript: models.Transcript{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if !m.pending && strings.TrimSpace(m.textarea.Value()) != "" {
				input := strings.TrimSpace(m.textarea.Value())
				if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
					return m, tea.Quit
				}

				cmd = m.submit(m.textarea.Value())
				return m, tea.Batch(cmd, m.spinner.Tick)
			}
		}

	case replyMsg:
		m.pending = false
		m.transcript.Append(models.NewAssistantMessage(msg.text))
		m.updateViewport()
		m.viewport.GotoBottom()

	case replyErrMsg:
		// Failures become transcript entries so the conversation keeps its
		// one-reply-per-message shape.
		m.pending = false
		m.transcript.Append(models.NewAssistantMessage(errorText(msg.err)))
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.pending {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.updateViewport()
		}
	}

	// Only forward keystrokes to the textarea when no exchange is in
	// flight; this is what makes a second submit unreachable.
	if !m.pending {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the synchronous half of an exchange: the raw input joins
// the transcript, the input clears, and the pending flag locks further
// sends. The returned command carries the asynchronous half.
func (m *Model) submit(raw string) tea.Cmd {
	m.transcript.Append(models.NewUserMessage(raw))
	m.updateViewport()
	m.viewport.GotoBottom()

	m.pending = true
	m.textarea.Reset()

	// Snapshot the history now; the command runs outside the model.
	history := m.transcript.History()
	return m.sendMessage(history, raw)
}

// sendMessage creates the command that performs the network exchange.
func (m Model) sendMessage(history []models.HistoryEntry, userInput string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.backend.SendChat(history, userInput)
		if err != nil {
			return replyErrMsg{err: err}
		}
		return replyMsg{text: reply}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("✦ Lingua"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.backendURL),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Messages area
	var messagesContent string
	if m.transcript.Len() == 0 && !m.pending {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	// Input area
	var inputContent string
	if m.pending {
		inputContent = m.spinner.View() + typingStyle.Render(" Waiting for the assistant...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		welcomeIconStyle.Width(width).Render("✦"),
		"",
		welcomeTitleStyle.Width(width).Render("Welcome to Lingua"),
		"",
		welcomeStyle.Width(width).Render("Your language learning assistant. Ask about vocabulary, grammar or translations."),
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages.
// While an exchange is pending a typing indicator trails the transcript;
// it is presentation only and never joins the history.
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.transcript {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Origin == models.OriginUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ Assistant")

			rendered, err := render.MarkdownWithWidth(msg.Text, bubbleWidth-4)
			if err != nil {
				rendered = msg.Text
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	if m.pending {
		content.WriteString("\n")
		content.WriteString(m.spinner.View() + typingStyle.Render(" Assistant is typing"))
	}

	m.viewport.SetContent(content.String())
}

// errorText converts a failed exchange into the human-readable text of
// its synthetic transcript entry.
func errorText(err error) string {
	switch {
	case apierrors.IsTimeoutError(err):
		return "Error: the request to the assistant timed out."
	case apierrors.IsNetworkError(err):
		return "Error: could not reach the assistant. Check your connection and the backend URL."
	case apierrors.GetHTTPStatus(err) > 0:
		if body := apierrors.GetResponseBody(err); body != "" {
			return fmt.Sprintf("Error: %s", body)
		}
		return fmt.Sprintf("Error: the assistant returned status %d.", apierrors.GetHTTPStatus(err))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// RunChat starts the chat TUI
func RunChat(backend ChatBackend, backendURL string) error {
	p := tea.NewProgram(
		NewModel(backend, backendURL),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
