package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"pyroxene.dev/launcher/internal/core/catalog"
	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ranking"
)

const (
	categoryColumnWidth = 18
	defaultMenuWidth    = 80
	defaultMenuHeight   = 24
	menuChromeHeight    = 5
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("240"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// menuSource is what the menu needs from the launcher service
type menuSource interface {
	Categories() []catalog.Category
	Search(query string) []ranking.Result
}

// menuKeyMap holds the menu key bindings. Letters are reserved for the query.
type menuKeyMap struct {
	Quit         key.Binding
	Launch       key.Binding
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "quit"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "launch"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab", "pgdown"),
			key.WithHelp("Tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab", "pgup"),
			key.WithHelp("Shift+Tab", "previous category"),
		),
	}
}

// menuModel holds the state for the Bubble Tea menu.
// With an empty query it shows categories; otherwise ranked results.
type menuModel struct {
	source     menuSource
	keys       menuKeyMap
	input      textinput.Model
	categories []catalog.Category
	category   int
	cursor     int
	results    []ranking.Result
	width      int
	height     int
	chosen     *desktop.Entry
}

// newMenuModel creates a menu over source
func newMenuModel(source menuSource) menuModel {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Type to search"
	input.Focus()

	return menuModel{
		source:     source,
		keys:       defaultMenuKeyMap(),
		input:      input,
		categories: source.Categories(),
		width:      defaultMenuWidth,
		height:     defaultMenuHeight,
	}
}

// runMenu shows the menu and launches the chosen entry once it closes
func runMenu(ctx context.Context, container *CLIContainer) error {
	if err := loadEntries(ctx, container); err != nil {
		return err
	}

	program := tea.NewProgram(newMenuModel(container.Service), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}

	if m, ok := final.(menuModel); ok && m.chosen != nil {
		return container.Service.Launch(ctx, m.chosen)
	}
	return nil
}

// Init implements the Bubble Tea init method
func (m menuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements the Bubble Tea update method
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Launch):
			if entry := m.selected(); entry != nil {
				m.chosen = entry
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.NextCategory):
			if !m.searching() && len(m.categories) > 0 {
				m.category = (m.category + 1) % len(m.categories)
				m.cursor = 0
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevCategory):
			if !m.searching() && len(m.categories) > 0 {
				m.category = (m.category + len(m.categories) - 1) % len(m.categories)
				m.cursor = 0
			}
			return m, nil
		}
	}

	previous := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != previous {
		m.results = m.source.Search(query)
		m.cursor = 0
	}

	return m, cmd
}

// searching reports whether a query is active
func (m menuModel) searching() bool {
	return m.input.Value() != ""
}

// visible returns the entries in the right hand list
func (m menuModel) visible() []*desktop.Entry {
	if m.searching() {
		return ranking.Entries(m.results)
	}
	if len(m.categories) == 0 {
		return nil
	}
	return m.categories[m.category].Entries()
}

// selected returns the entry under the cursor, if any
func (m menuModel) selected() *desktop.Entry {
	entries := m.visible()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	return entries[m.cursor]
}

// View implements the Bubble Tea view method
func (m menuModel) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Left, titleStyle.Render("Pyroxene"), "  ", m.input.View())
	divider := dividerStyle.Render(strings.Repeat("─", max(1, m.width)))

	var body string
	switch {
	case len(m.categories) == 0 && !m.searching():
		body = dimStyle.Render("\n  No applications found\n")
	case m.searching():
		body = m.renderResults()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderCategories(), " ", m.renderMembers())
	}

	controls := dimStyle.Render("Controls: [type] Search | [↑↓] Move | [Tab] Category | [Enter] Launch | [Esc] Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, divider, body, divider, controls)
}

// listHeight is the number of rows available to the lists
func (m menuModel) listHeight() int {
	return max(1, m.height-menuChromeHeight)
}

// renderCategories renders the category column
func (m menuModel) renderCategories() string {
	rows := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		label := truncate.StringWithTail(fmt.Sprintf("%s (%d)", c.DisplayName, c.Len()), categoryColumnWidth, ellipsis)
		style := lipgloss.NewStyle().Width(categoryColumnWidth)
		if i == m.category {
			style = style.Inherit(selectedStyle)
		}
		rows = append(rows, style.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMembers renders the members of the selected category
func (m menuModel) renderMembers() string {
	width := max(1, m.width-categoryColumnWidth-1)
	return m.renderList(m.visible(), width, func(e *desktop.Entry) []int { return nil })
}

// renderResults renders ranked results with matched characters emphasised
func (m menuModel) renderResults() string {
	if len(m.results) == 0 {
		return dimStyle.Render("\n  No matches\n")
	}
	query := m.input.Value()
	return m.renderList(m.visible(), max(1, m.width), func(e *desktop.Entry) []int {
		return ranking.Highlight(e.Name(), query)
	})
}

// renderList renders a scrolling window of entries around the cursor
func (m menuModel) renderList(entries []*desktop.Entry, width int, matches func(*desktop.Entry) []int) string {
	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(len(entries), start+height)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := entries[i]
		name := highlightName(truncate.StringWithTail(e.Name(), uint(width), ellipsis), matches(e))
		if i == m.cursor {
			name = selectedStyle.Render(name)
		}
		rows = append(rows, name)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// highlightName styles the bytes of name at the given indexes
func highlightName(name string, indexes []int) string {
	if len(indexes) == 0 {
		return name
	}

	hit := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
