package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"pyroxene.dev/launcher/internal/core/catalog"
	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ranking"
)

const (
	nameColumnWidth = 32
	ellipsis        = "…"
)

// EntryView is the JSON form of an entry
type EntryView struct {
	Name        string   `json:"name"`
	Exec        string   `json:"exec"`
	Icon        string   `json:"icon,omitempty"`
	GenericName string   `json:"generic_name,omitempty"`
	Comment     string   `json:"comment,omitempty"`
	Path        string   `json:"path,omitempty"`
	Terminal    bool     `json:"terminal,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// CategoryView is the JSON form of a populated category
type CategoryView struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Icon    string      `json:"icon"`
	Entries []EntryView `json:"entries"`
}

// ResultView is the JSON form of a ranked entry
type ResultView struct {
	EntryView
	Score float64 `json:"score"`
}

func newEntryView(e *desktop.Entry) EntryView {
	return EntryView{
		Name:        e.Name(),
		Exec:        e.Exec(),
		Icon:        e.Icon(),
		GenericName: e.GenericName(),
		Comment:     e.Comment(),
		Path:        e.Path(),
		Terminal:    e.Terminal(),
		Categories:  e.Categories(),
		Source:      e.Source(),
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// renderCategories prints each category followed by its members
func renderCategories(w io.Writer, categories []catalog.Category, asJSON bool) error {
	if asJSON {
		views := make([]CategoryView, 0, len(categories))
		for _, c := range categories {
			view := CategoryView{ID: c.ID, Name: c.DisplayName, Icon: c.IconHint}
			for _, e := range c.Entries() {
				view.Entries = append(view.Entries, newEntryView(e))
			}
			views = append(views, view)
		}
		return writeJSON(w, views)
	}

	if len(categories) == 0 {
		fmt.Fprintln(w, "No applications found")
		return nil
	}

	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", c.DisplayName, c.Len())
		for _, e := range c.Entries() {
			fmt.Fprintf(w, "  %s\n", entryLine(e))
		}
	}
	return nil
}

// renderResults prints ranked results with their similarity
func renderResults(w io.Writer, results []ranking.Result, asJSON bool) error {
	if asJSON {
		views := make([]ResultView, 0, len(results))
		for _, r := range results {
			views = append(views, ResultView{EntryView: newEntryView(r.Entry), Score: ranking.Fraction(r.Score)})
		}
		return writeJSON(w, views)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No applications found")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(w, "%.3f  %s\n", ranking.Fraction(r.Score), entryLine(r.Entry))
	}
	return nil
}

// entryLine formats an entry as a padded name and its description
func entryLine(e *desktop.Entry) string {
	name := truncate.StringWithTail(e.Name(), nameColumnWidth, ellipsis)
	description := e.Comment()
	if description == "" {
		description = e.GenericName()
	}
	if description == "" {
		return name
	}
	return name + strings.Repeat(" ", max(1, nameColumnWidth+2-lipgloss.Width(name))) + description
}
