package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// screen identifies which view the model is showing
type screen int

const (
	screenMenu screen = iota
	screenInput
	screenFontPick
	screenPager
)

// inputPurpose tags what the text entry screen is collecting
type inputPurpose int

const (
	inputGenerate inputPurpose = iota
	inputSaveText
	inputSaveName
	inputLoadPath
	inputPreviewText
)

// pagerKind tags what the pager is displaying, for per-view keybindings
type pagerKind int

const (
	pagerResult pagerKind = iota
	pagerFonts
	pagerPreview
)

// menuItems are the numbered menu options, dispatched by digit key
var menuItems = []string{
	"Generate ASCII Art",
	"List Available Fonts",
	"Save ASCII Art to File",
	"Load Text from File",
	"Change Font",
	"Preview Fonts",
	"Batch Export Session",
	"Export Last as HTML",
	"Exit",
}

// Model represents the application state following Elm architecture
type Model struct {
	session *Session
	screen  screen

	// menu
	cursor int

	// text entry
	input       textinput.Model
	purpose     inputPurpose
	pendingText string // text captured before the save-filename prompt

	// pager
	viewport   viewport.Model
	pager      pagerKind
	pagerTitle string
	pagerBody  string
	bordered   bool
	ready      bool

	// font picker
	fontFilter textinput.Model
	fonts      []string
	fontCursor int

	status   string
	statusOK bool
	width    int
	height   int
}

// Init performs no setup; all state is wired before the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenInput:
			return m.updateInput(msg)
		case screenFontPick:
			return m.updateFontPick(msg)
		case screenPager:
			return m.updatePager(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.pagerHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = m.pagerHeight()
		}
	}

	return m, nil
}

// pagerHeight leaves room for the pager title and status bar
func (m Model) pagerHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.dispatch(m.cursor)
	case "t":
		name := NextTheme()
		InitStyles()
		m.setStatus(fmt.Sprintf("Theme: %s (%d available)", name, GetThemeCount()), true)
		return m, nil
	case "r":
		font := m.session.catalog.Random()
		m.session.SetFont(font)
		m.setStatus(fmt.Sprintf("Random font: %s", font), true)
		return m, nil
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(menuItems) {
		m.cursor = n - 1
		return m.dispatch(n - 1)
	}

	return m, nil
}

// dispatch runs a menu option by index
func (m Model) dispatch(index int) (tea.Model, tea.Cmd) {
	switch index {
	case 0:
		return m.promptInput(inputGenerate, "Enter text to convert"), nil
	case 1:
		return m.showFontList(), nil
	case 2:
		return m.promptInput(inputSaveText, "Enter text to convert and save"), nil
	case 3:
		return m.promptInput(inputLoadPath, "Enter file path to load"), nil
	case 4:
		return m.openFontPicker(), nil
	case 5:
		return m.promptInput(inputPreviewText, "Enter text for preview (empty for Sample)"), nil
	case 6:
		return m.batchExport(), nil
	case 7:
		return m.exportHTML(), nil
	case 8:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		return m.submitInput(value), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput handles a completed text entry according to its purpose
func (m Model) submitInput(value string) Model {
	switch m.purpose {
	case inputGenerate:
		return m.generate(value)
	case inputSaveText:
		if strings.TrimSpace(value) == "" {
			m.screen = screenMenu
			m.setStatus("Please enter some text!", false)
			return m
		}
		m.pendingText = value
		return m.promptInput(inputSaveName, "Enter filename (empty for ascii_art)")
	case inputSaveName:
		return m.saveArtifact(m.pendingText, value)
	case inputLoadPath:
		return m.loadAndRender(value)
	case inputPreviewText:
		return m.preview(value)
	}
	m.screen = screenMenu
	return m
}

func (m Model) updateFontPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
		m.fontFilter.Blur()
		return m, nil
	case "up":
		if m.fontCursor > 0 {
			m.fontCursor--
		}
		return m, nil
	case "down":
		if m.fontCursor < len(m.fonts)-1 {
			m.fontCursor++
		}
		return m, nil
	case "enter":
		if len(m.fonts) > 0 {
			font := m.fonts[m.fontCursor]
			if m.session.SetFont(font) {
				m.setStatus(fmt.Sprintf("Font changed to: %s", font), true)
			} else {
				m.setStatus(fmt.Sprintf("Font not available: %s", font), false)
			}
		}
		m.screen = screenMenu
		m.fontFilter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.fontFilter, cmd = m.fontFilter.Update(msg)

	// Re-filter on every keystroke and keep the cursor in range
	m.fonts = m.session.catalog.Search(m.fontFilter.Value())
	if m.fontCursor >= len(m.fonts) {
		m.fontCursor = 0
	}
	return m, cmd
}

func (m Model) updatePager(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "enter":
		m.screen = screenMenu
		return m, nil
	case "b":
		// Toggle a border around the rendered result
		if m.pager == pagerResult && m.session.Last() != nil {
			m.bordered = !m.bordered
			body := m.session.Last().Output
			if m.bordered {
				body = addBorder(body, '*')
			}
			m.pagerBody = body
			m.viewport.SetContent(bannerStyle.Render(body))
		}
		return m, nil
	case "e":
		// Export the font list from the font list view
		if m.pager == pagerFonts {
			path, err := m.session.store.ExportFontList(m.session.catalog.Fonts())
			if err != nil {
				m.setStatus(err.Error(), false)
			} else {
				m.setStatus(fmt.Sprintf("Font list exported to: %s", path), true)
			}
			m.screen = screenMenu
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// promptInput switches to the text entry screen
func (m Model) promptInput(purpose inputPurpose, placeholder string) Model {
	m.purpose = purpose
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	m.screen = screenInput
	return m
}

// showPager switches to the pager screen with the given content
func (m Model) showPager(kind pagerKind, title, body string, style lipgloss.Style) Model {
	m.pager = kind
	m.pagerTitle = title
	m.pagerBody = body
	m.bordered = false
	if m.ready {
		m.viewport.Height = m.pagerHeight()
		m.viewport.SetContent(style.Render(body))
		m.viewport.GotoTop()
	}
	m.screen = screenPager
	return m
}

func (m Model) generate(text string) Model {
	art, err := m.session.Render(text)
	if err != nil {
		m.screen = screenMenu
		m.setStatus(renderErrMessage(err), false)
		return m
	}
	return m.showPager(pagerResult, fmt.Sprintf("ASCII Art Result (font: %s)", art.Font), art.Output, bannerStyle)
}

func (m Model) saveArtifact(text, name string) Model {
	m.screen = screenMenu

	art, err := m.session.Render(text)
	if err != nil {
		m.setStatus(renderErrMessage(err), false)
		return m
	}

	path, err := m.session.store.Save(art, name)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error saving file: %v", err), false)
		return m
	}
	m.setStatus(fmt.Sprintf("ASCII art saved to: %s", path), true)
	return m
}

func (m Model) loadAndRender(path string) Model {
	path = strings.TrimSpace(path)
	if path == "" {
		m.screen = screenMenu
		m.setStatus("Please enter a filename!", false)
		return m
	}

	text, err := m.session.store.Load(path)
	if err != nil {
		m.screen = screenMenu
		m.setStatus(fmt.Sprintf("Error loading file: %v", err), false)
		return m
	}

	art, err := m.session.Render(text)
	if err != nil {
		m.screen = screenMenu
		m.setStatus(renderErrMessage(err), false)
		return m
	}
	return m.showPager(pagerResult, fmt.Sprintf("ASCII Art from %s", path), art.Output, bannerStyle)
}

func (m Model) preview(sample string) Model {
	previews := m.session.Preview(sample)
	if len(previews) == 0 {
		m.screen = screenMenu
		m.setStatus("No fonts available for preview", false)
		return m
	}

	var sections []string
	for _, art := range previews {
		header := fmt.Sprintf("--- %s ---", art.Font)
		sections = append(sections, labelStyle.Render(header)+"\n"+art.Output)
	}
	body := strings.Join(sections, "\n\n")
	return m.showPager(pagerPreview, fmt.Sprintf("Font Preview (%d fonts)", len(previews)), body, baseStyle)
}

func (m Model) showFontList() Model {
	fonts := m.session.catalog.Fonts()
	stats := m.session.catalog.Stats()

	var lines []string
	for i, font := range fonts {
		marker := ""
		if font == m.session.Font() {
			marker = "  (CURRENT)"
		}
		lines = append(lines, fmt.Sprintf("%3d. %s%s", i+1, font, marker))
	}
	lines = append(lines, "", fmt.Sprintf("Total: %d fonts (%s), %d popular available",
		stats.Total, stats.Source, stats.Popular))

	return m.showPager(pagerFonts, "Available Fonts", strings.Join(lines, "\n"), baseStyle)
}

func (m Model) openFontPicker() Model {
	m.fonts = m.session.catalog.Fonts()
	m.fontCursor = 0
	for i, font := range m.fonts {
		if font == m.session.Font() {
			m.fontCursor = i
			break
		}
	}
	m.fontFilter.Placeholder = "Type to filter fonts"
	m.fontFilter.SetValue("")
	m.fontFilter.Focus()
	m.screen = screenFontPick
	return m
}

func (m Model) batchExport() Model {
	history := m.session.History()
	if len(history) == 0 {
		m.setStatus("Nothing to export yet - generate some art first", false)
		return m
	}

	path, err := m.session.store.BatchExport(history, "batch")
	if err != nil {
		m.setStatus(fmt.Sprintf("Error saving file: %v", err), false)
		return m
	}
	m.setStatus(fmt.Sprintf("%d artifacts exported to: %s", len(history), path), true)
	return m
}

func (m Model) exportHTML() Model {
	last := m.session.Last()
	if last == nil {
		m.setStatus("Nothing to export yet - generate some art first", false)
		return m
	}

	path, err := m.session.store.ExportHTML(last, last.Text)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error saving file: %v", err), false)
		return m
	}
	m.setStatus(fmt.Sprintf("HTML exported to: %s", path), true)
	return m
}

func (m *Model) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}

// renderErrMessage maps render errors to user-facing text
func renderErrMessage(err error) string {
	if errors.Is(err, ErrEmptyText) {
		return "Please enter some text!"
	}
	return fmt.Sprintf("Error generating ASCII art: %v", err)
}

// View renders the TUI
func (m Model) View() string {
	switch m.screen {
	case screenInput:
		return m.viewInput()
	case screenFontPick:
		return m.viewFontPick()
	case screenPager:
		return m.viewPager()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var sections []string

	// Header banner always uses the builtin glyphs so the menu looks the
	// same in both render modes
	header := bannerStyle.Render(renderGlyphs("TEXT ART"))
	sections = append(sections, header, "")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = titleStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s",
			cursor,
			menuKeyStyle.Render(fmt.Sprintf("%d.", i+1)),
			baseStyle.Render(item))
		sections = append(sections, line)
	}

	info := fmt.Sprintf("font: %s | renderer: %s | theme: %s",
		m.session.Font(), m.session.renderer.Name(), GetCurrentThemeName())
	sections = append(sections, "", labelStyle.Render(info))

	if m.status != "" {
		style := successStyle
		if !m.statusOK {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	sections = append(sections, "", m.statusBar("1-9: select | enter: run | t: theme | r: random font | q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewInput() string {
	title := titleStyle.Render(menuItems[m.cursor])
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.input.View(),
		"",
		m.statusBar("enter: submit | esc: back"),
	)
}

func (m Model) viewFontPick() string {
	title := titleStyle.Render(fmt.Sprintf("Change Font (%d matches)", len(m.fonts)))

	// Window the list around the cursor so long catalogs fit the screen
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.fontCursor >= visible {
		start = m.fontCursor - visible + 1
	}
	end := start + visible
	if end > len(m.fonts) {
		end = len(m.fonts)
	}

	var lines []string
	for i := start; i < end; i++ {
		font := m.fonts[i]
		marker := "  "
		if i == m.fontCursor {
			marker = titleStyle.Render("> ")
		}
		name := baseStyle.Render(font)
		if font == m.session.Font() {
			name = successStyle.Render(font + " (current)")
		}
		lines = append(lines, marker+name)
	}
	if len(m.fonts) == 0 {
		lines = append(lines, labelStyle.Render("No fonts match"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.fontFilter.View(),
		"",
		strings.Join(lines, "\n"),
		"",
		m.statusBar("up/down: move | enter: select | esc: cancel"),
	)
}

func (m Model) viewPager() string {
	title := titleStyle.Render(m.pagerTitle)

	help := "up/down: scroll | esc: back"
	switch m.pager {
	case pagerResult:
		help = "b: border | up/down: scroll | esc: back"
	case pagerFonts:
		help = "e: export list | up/down: scroll | esc: back"
	}

	if !m.ready {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.pagerBody)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.viewport.View(),
		"",
		m.statusBar(help),
	)
}

func (m Model) statusBar(help string) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return statusBarStyle.Width(width).Render(truncate(help, width))
}

func main() {
	cfg := LoadConfig()

	InitTheme(cfg.Theme, cfg.ThemeDir)
	InitStyles()

	session, err := NewSession(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	input := textinput.New()
	input.CharLimit = 200
	input.Width = 60

	filter := textinput.New()
	filter.CharLimit = 50
	filter.Width = 30

	m := Model{
		session:    session,
		input:      input,
		fontFilter: filter,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
