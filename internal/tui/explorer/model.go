// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     explorer
// Description: Main Bubbletea model for the halang AST explorer
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang"
	"github.com/msto63/halang/foundation/halang/ast"
	"github.com/msto63/halang/foundation/halang/parser"
	"github.com/msto63/halang/foundation/halang/token"
	mdwstringx "github.com/msto63/halang/foundation/utils/stringx"
	"github.com/msto63/halang/pkg/core/version"
)

const watchInterval = 2 * time.Second

// Model is the main Bubbletea model of the explorer
type Model struct {
	// State
	width     int
	height    int
	ready     bool
	loading   bool
	watching  bool
	positions bool
	view      View
	err       error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Parse state
	source  string
	modTime time.Time
	result  *parser.Result
	tokens  []token.Token
	lexErr  error
	stats   *ast.CollectorVisitor

	// Configuration
	path   string
	engine *halang.Engine
}

// Config holds explorer configuration
type Config struct {
	// Path is the file to explore; when empty Source is used
	Path   string
	Source string
	Engine *halang.Engine
	Watch  bool
}

// New creates a new explorer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	engine := cfg.Engine
	if engine == nil {
		engine = halang.New(halang.DefaultSettings(), nil)
	}

	return Model{
		spinner:  sp,
		loading:  true,
		watching: cfg.Watch && cfg.Path != "",
		source:   cfg.Source,
		path:     cfg.Path,
		engine:   engine,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.load, tea.EnterAltScreen}
	if m.watching {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + tab bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case parsedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			if m.result != nil {
				m.result.Close()
			}
			m.source = msg.source
			m.modTime = msg.modTime
			m.result = msg.result
			m.tokens = msg.tokens
			m.lexErr = msg.lexErr
			m.stats = ast.CollectNodes(msg.result.Root)
		}
		m.updateViewportContent()

	case tickMsg:
		if m.watching {
			cmds = append(cmds, m.checkFile, tick())
		}

	case fileChangedMsg:
		if !msg.modTime.Equal(m.modTime) {
			m.loading = true
			cmds = append(cmds, m.load, m.spinner.Tick)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Views - number keys
		case "1":
			return m.switchView(ViewTree), nil
		case "2":
			return m.switchView(ViewTokens), nil
		case "3":
			return m.switchView(ViewDiagnostics), nil
		case "4":
			return m.switchView(ViewSource), nil

		case "p":
			m.positions = !m.positions
			m.updateViewportContent()
			return m, nil

		case "r":
			m.loading = true
			return m, tea.Batch(m.load, m.spinner.Tick)

		case "w":
			if m.path == "" {
				return m, nil
			}
			m.watching = !m.watching
			if m.watching {
				return m, tick()
			}
			return m, nil

		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

func (m Model) switchView(v View) Model {
	m.view = v
	m.updateViewportContent()
	m.viewport.GotoTop()
	return m
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	b.WriteString(MainPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and parse status
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	name := m.path
	if name == "" {
		name = "<input>"
	}

	var status string
	switch {
	case m.err != nil:
		status = StatusErrorStyle.Render("cannot read source")
	case m.result == nil:
		status = ""
	case m.result.OK:
		status = StatusOKStyle.Render("OK")
	default:
		status = StatusErrorStyle.Render(fmt.Sprintf("%d error(s)", len(m.result.Diagnostics)))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		FileStyle.Render(mdwstringx.Truncate(name, 40, "...")),
		strings.Repeat(" ", 3),
		status,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderTabBar renders the view selector
func (m Model) renderTabBar() string {
	tabs := []string{
		RenderTab("1", ViewTree, m.view == ViewTree),
		RenderTab("2", ViewTokens, m.view == ViewTokens),
		RenderTab("3", ViewDiagnostics, m.view == ViewDiagnostics),
		RenderTab("4", ViewSource, m.view == ViewSource),
	}

	extra := ""
	if m.positions {
		extra = "  " + TabActiveStyle.Render("[positions]")
	}
	return TabBarStyle.Width(m.width - 2).Render(strings.Join(tabs, "  ") + extra)
}

// renderStatusBar renders node statistics, version and watch state
func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render("no tree")
	if m.result != nil && m.stats != nil {
		left = HelpDescStyle.Render(fmt.Sprintf("Statements: %d  Nodes: %d  Tokens: %d",
			len(m.result.Root.Statements), m.stats.Total(), len(m.tokens)))
	}

	center := HelpDescStyle.Render("v" + version.Explorer)

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " Parsing..."
	case m.watching:
		right = StatusWatchStyle.Render("watching")
	default:
		right = HelpDescStyle.Render("idle")
	}

	available := m.width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 4
	if available < 2 {
		available = 2
	}
	leftPadding := available / 2
	rightPadding := available - leftPadding

	content := left + strings.Repeat(" ", leftPadding) + center + strings.Repeat(" ", rightPadding) + right
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-4", "View"),
		RenderKeyHint("p", "Positions"),
		RenderKeyHint("r", "Reparse"),
		RenderKeyHint("w", "Watch"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the active view into the viewport
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.err != nil {
		return DiagErrorStyle.Render(m.err.Error())
	}
	if m.result == nil {
		return ""
	}

	switch m.view {
	case ViewTokens:
		return RenderTokens(m.tokens, m.lexErr)
	case ViewDiagnostics:
		return RenderDiagnostics(m.result)
	case ViewSource:
		return RenderSource(m.source, m.result)
	default:
		return RenderTree(m.result.Root, m.positions)
	}
}

// RenderTree renders the indented tree with styled node kinds
func RenderTree(root ast.Node, positions bool) string {
	dump := ast.TreeString(root, positions)
	if dump == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(dump, "\n"), "\n") {
		body := strings.TrimLeft(line, " ")
		b.WriteString(line[:len(line)-len(body)])

		if i := strings.Index(body, ": "); i > 0 && !strings.Contains(body[:i], " ") {
			b.WriteString(NodeLabelStyle.Render(body[:i+1]) + " ")
			body = body[i+2:]
		}
		kind, detail, _ := strings.Cut(body, " ")
		b.WriteString(NodeKindStyle.Render(kind))
		if detail != "" {
			b.WriteString(" " + NodeDetailStyle.Render(detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTokens renders one token per line
func RenderTokens(tokens []token.Token, lexErr error) string {
	var b strings.Builder
	for _, tok := range tokens {
		pos := mdwstringx.PadRight(tok.Pos.String(), 8, ' ')
		kind := mdwstringx.PadRight(tok.Kind.String(), 14, ' ')
		line := GutterStyle.Render(pos) + NodeKindStyle.Render(kind)
		if tok.Literal != "" {
			line += " " + NodeDetailStyle.Render(mdwstringx.Printable(tok.Literal))
		}
		b.WriteString(line + "\n")
	}
	if lexErr != nil {
		b.WriteString("\n" + DiagErrorStyle.Render(lexErr.Error()) + "\n")
	}
	return b.String()
}

// RenderDiagnostics renders errors followed by warnings
func RenderDiagnostics(result *parser.Result) string {
	if len(result.Diagnostics) == 0 && len(result.Warnings) == 0 {
		return StatusOKStyle.Render("No diagnostics")
	}

	var b strings.Builder
	for _, d := range result.Diagnostics {
		b.WriteString(DiagErrorStyle.Render("error") + " " +
			DiagPositionStyle.Render(d.Pos.String()) + " " +
			d.Message + " " + GutterStyle.Render("["+string(d.Code)+"]") + "\n")
	}
	for _, w := range result.Warnings {
		b.WriteString(DiagWarnStyle.Render("warning") + " " +
			DiagPositionStyle.Render(w.Pos.String()) + " " + w.Message + "\n")
	}
	if result.Suppressed > 0 {
		b.WriteString(GutterStyle.Render(fmt.Sprintf("%d further diagnostic(s) suppressed", result.Suppressed)) + "\n")
	}
	return b.String()
}

// RenderSource renders the source with line numbers; lines holding an
// error are marked with '>'
func RenderSource(source string, result *parser.Result) string {
	marked := make(map[int]bool)
	if result != nil {
		for _, d := range result.Diagnostics {
			marked[d.Pos.Line] = true
		}
	}

	var b strings.Builder
	for i, line := range strings.Split(source, "\n") {
		mark := " "
		if marked[i+1] {
			mark = DiagErrorStyle.Render(">")
		}
		b.WriteString(mark + GutterStyle.Render(fmt.Sprintf("%4d ", i+1)) + line + "\n")
	}
	return b.String()
}

// load reads and parses the source
func (m Model) load() tea.Msg {
	src := m.source
	var modTime time.Time

	if m.path != "" {
		info, err := os.Stat(m.path)
		if err != nil {
			return parsedMsg{err: mdwerror.Wrap(err, "cannot stat "+m.path).WithCode(mdwerror.CodeNotFound)}
		}
		data, err := os.ReadFile(m.path)
		if err != nil {
			return parsedMsg{err: mdwerror.Wrap(err, "cannot read "+m.path).WithCode(mdwerror.CodeIO)}
		}
		src, modTime = string(data), info.ModTime()
	}

	tokens, lexErr := m.engine.Tokenize(src)
	return parsedMsg{
		source:  src,
		modTime: modTime,
		result:  m.engine.ParseString(src),
		tokens:  tokens,
		lexErr:  lexErr,
	}
}

// checkFile reports the current modification time of the watched file
func (m Model) checkFile() tea.Msg {
	info, err := os.Stat(m.path)
	if err != nil {
		return nil
	}
	return fileChangedMsg{modTime: info.ModTime()}
}

// Close releases the current parse result
func (m Model) Close() {
	if m.result != nil {
		m.result.Close()
	}
}

// Run starts the explorer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}
	return err
}
