package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyroxene.dev/launcher/internal/core/catalog"
	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ranking"
	"pyroxene.dev/launcher/internal/core/testfixtures"
)

type fakeMenuSource struct {
	entries  []*desktop.Entry
	searches []string
}

func (s *fakeMenuSource) Categories() []catalog.Category {
	return catalog.Populate(catalog.Default(), s.entries)
}

func (s *fakeMenuSource) Search(query string) []ranking.Result {
	s.searches = append(s.searches, query)
	return ranking.Top(ranking.Rank(s.entries, query), ranking.DefaultLimit)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m menuModel, msgs ...tea.Msg) (menuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(menuModel)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMenu_StartsInCategoryView(t *testing.T) {
	m := newMenuModel(&fakeMenuSource{entries: testfixtures.SampleEntries()})

	assert.False(t, m.searching())
	require.NotEmpty(t, m.categories)
	assert.Equal(t, "utility", m.categories[0].ID)
	assert.Equal(t, "Files", m.selected().Name())
}

func TestMenu_TypingSearchesAndBackspaceReturns(t *testing.T) {
	src := &fakeMenuSource{entries: testfixtures.SampleEntries()}
	m := newMenuModel(src)

	m, _ = send(t, m, runes("F"), runes("i"))
	assert.True(t, m.searching())
	assert.Equal(t, []string{"F", "Fi"}, src.searches)
	require.NotEmpty(t, m.results)
	assert.Equal(t, m.results[0].Entry, m.selected())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.False(t, m.searching())
	assert.Nil(t, m.results)
	assert.Equal(t, "Files", m.selected().Name())
}

func TestMenu_EnterLaunchesSelection(t *testing.T) {
	m := newMenuModel(&fakeMenuSource{entries: testfixtures.SampleEntries()})

	m, cmd := send(t, m, runes("Firefox"), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.chosen)
	assert.Equal(t, "Firefox", m.chosen.Name())
	assert.True(t, isQuit(cmd))
}

func TestMenu_EnterWithNothingSelected(t *testing.T) {
	m := newMenuModel(&fakeMenuSource{})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.chosen)
	assert.False(t, isQuit(cmd))
}

func TestMenu_EscQuitsWithoutLaunching(t *testing.T) {
	m := newMenuModel(&fakeMenuSource{entries: testfixtures.SampleEntries()})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.chosen)
	assert.True(t, isQuit(cmd))
}

func TestMenu_Navigation(t *testing.T) {
	entries := []*desktop.Entry{
		testfixtures.NewEntryBuilder().WithName("Htop").WithCategories("System").MustBuild(),
		testfixtures.NewEntryBuilder().WithName("Terminal").WithCategories("System").MustBuild(),
		testfixtures.NewEntryBuilder().WithName("Firefox").WithCategories("Network").MustBuild(),
	}
	m := newMenuModel(&fakeMenuSource{entries: entries})
	require.Len(t, m.categories, 2)
	assert.Equal(t, "Firefox", m.selected().Name())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays at the top")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Htop", m.selected().Name())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Terminal", m.selected().Name(), "cursor stays at the bottom")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Firefox", m.selected().Name(), "tab wraps around")
	assert.Equal(t, 0, m.cursor)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Htop", m.selected().Name())
}

func TestMenu_View(t *testing.T) {
	m := newMenuModel(&fakeMenuSource{entries: testfixtures.SampleEntries()})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Accessories (1)")
	assert.Contains(t, view, "Network (1)")
	assert.Contains(t, view, "Files")

	empty := newMenuModel(&fakeMenuSource{})
	assert.Contains(t, empty.View(), "No applications found")

	m, _ = send(t, m, runes("zzz"))
	assert.NotContains(t, m.View(), "Accessories (1)")
}

func TestHighlightName(t *testing.T) {
	assert.Equal(t, "files", highlightName("files", nil))
	assert.Contains(t, highlightName("files", []int{0, 1}), "les")
}
