package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"doc-text/config"
	"doc-text/extract"
)

// Styles
var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))

	subHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e")).
			Bold(true)
)

// extractDoneMsg carries the finished extraction into the update loop.
type extractDoneMsg struct {
	result  extract.ExtractedText
	err     error
	elapsed time.Duration
}

type model struct {
	// Input
	filePath string
	format   config.Format
	data     []byte

	// Extraction outcome
	result  extract.ExtractedText
	err     error
	elapsed time.Duration
	loading bool

	// Viewport
	scroll   int
	width    int
	height   int
	quitting bool
}

func (m model) Init() tea.Cmd {
	return m.runExtraction()
}

// runExtraction decodes the document in the background so the UI stays
// responsive on large buffers.
func (m model) runExtraction() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, err := extract.Extract(m.data, m.format)
		return extractDoneMsg{result: result, err: err, elapsed: time.Since(start)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case extractDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.elapsed = msg.elapsed
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.scroll--
		case "down", "j":
			m.scroll++
		case "pgup":
			m.scroll -= 10
		case "pgdown", "space":
			m.scroll += 10
		case "home", "g":
			m.scroll = 0
		case "end", "G":
			m.scroll = 1 << 30 // clamped in View
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 30
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	var headerLines []string
	headerLines = append(headerLines, "")
	headerLines = append(headerLines, headerStyle.Render(fmt.Sprintf(" doctext v%s", Version)))
	headerLines = append(headerLines, subHeaderStyle.Render("📄 File: "+m.filePath))
	headerLines = append(headerLines, infoStyle.Render(fmt.Sprintf("⚙️ Format: %s • Size: %d bytes", m.format, len(m.data))))

	if m.loading {
		headerLines = append(headerLines, infoStyle.Render("⏳ Extracting..."))
	} else if m.err != nil {
		headerLines = append(headerLines, errorStyle.Render("✗ "+m.err.Error()))
	} else {
		headerLines = append(headerLines, successStyle.Render(fmt.Sprintf("✅ %d characters in %.0f ms", len(m.result.Body), m.elapsed.Seconds()*1000)))
		for _, w := range m.result.Warnings {
			headerLines = append(headerLines, warningStyle.Render("⚠️ "+w))
		}
	}

	header := strings.Join(headerLines, "\n")
	headerHeight := strings.Count(header, "\n") + 1

	// Body window
	var body string
	switch {
	case m.loading:
		body = "Extracting..."
	case m.err != nil:
		body = "No text to display."
	default:
		body = m.result.Body
	}

	boxOuterWidth := width - 4
	chromeHeight := 4
	footerHeight := 1
	contentHeight := height - headerHeight - footerHeight - chromeHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	lines := strings.Split(body, "\n")
	maxStart := 0
	if len(lines) > contentHeight {
		maxStart = len(lines) - contentHeight
	}
	scroll := m.scroll
	if scroll < 0 {
		scroll = 0
	}
	if scroll > maxStart {
		scroll = maxStart
	}
	end := scroll + contentHeight
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[scroll:end], "\n")

	var parts []string
	parts = append(parts, header)
	parts = append(parts, appStyle.Width(boxOuterWidth).Height(contentHeight).Render(window))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("🔚 'q' quit • ↑/↓ scroll • pgup/pgdn page • line %d of %d", scroll+1, len(lines)))
	parts = append(parts, footer)

	return strings.Join(parts, "\n")
}

// Version is the single version string for the tool; the CLI banner and the
// viewer header both render it.
const Version = "0.3"

// Run opens the interactive preview for one document. Returns a process
// exit code.
func Run(filePath string, format config.Format, data []byte) int {
	m := model{
		filePath: filePath,
		format:   format,
		data:     data,
		loading:  true,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	return 0
}
