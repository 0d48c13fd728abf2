package desktop

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s used for case-insensitive matching.
// A Caser is stateful, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Entry is a parsed application descriptor. It is immutable once constructed.
type Entry struct {
	source      string
	name        string
	exec        string
	icon        string
	genericName string
	comment     string
	path        string
	terminal    bool
	categories  []string
	keywords    []string
}

// Fields holds the raw values used to construct an Entry
type Fields struct {
	Name        string
	Exec        string
	Icon        string
	GenericName string
	Comment     string
	Path        string
	Terminal    bool
	Categories  []string
	Keywords    []string
}

// NewEntry creates an Entry, enforcing that Name and Exec are present
func NewEntry(f Fields) (*Entry, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("entry name cannot be empty")
	}
	if f.Exec == "" {
		return nil, fmt.Errorf("entry exec cannot be empty")
	}
	return newEntry(f), nil
}

func newEntry(f Fields) *Entry {
	return &Entry{
		name:        f.Name,
		exec:        f.Exec,
		icon:        f.Icon,
		genericName: f.GenericName,
		comment:     f.Comment,
		path:        f.Path,
		terminal:    f.Terminal,
		categories:  cloneStrings(f.Categories),
		keywords:    cloneStrings(f.Keywords),
	}
}

// WithSource returns a copy of the entry bound to the file it was read from
func (e *Entry) WithSource(path string) *Entry {
	c := *e
	c.source = path
	return &c
}

// Source returns the path of the descriptor file, empty if parsed from text
func (e *Entry) Source() string {
	return e.source
}

// Name returns the display name
func (e *Entry) Name() string {
	return e.name
}

// Exec returns the raw command line, placeholders included
func (e *Entry) Exec() string {
	return e.exec
}

// Icon returns the icon name or path
func (e *Entry) Icon() string {
	return e.icon
}

// GenericName returns the generic name, e.g. "Web Browser"
func (e *Entry) GenericName() string {
	return e.genericName
}

// Comment returns the tooltip comment
func (e *Entry) Comment() string {
	return e.comment
}

// Path returns the working directory to launch in
func (e *Entry) Path() string {
	return e.path
}

// Terminal reports whether the program must run in a terminal
func (e *Entry) Terminal() bool {
	return e.terminal
}

// Categories returns a copy of the category identifiers
func (e *Entry) Categories() []string {
	return cloneStrings(e.categories)
}

// Keywords returns a copy of the search keywords
func (e *Entry) Keywords() []string {
	return cloneStrings(e.keywords)
}

// HasCategory reports whether the entry is tagged with id, ignoring case
func (e *Entry) HasCategory(id string) bool {
	want := Fold(id)
	for _, c := range e.categories {
		if Fold(c) == want {
			return true
		}
	}
	return false
}

// String implements the Stringer interface
func (e *Entry) String() string {
	return fmt.Sprintf("Entry{name=%q, exec=%q}", e.name, e.exec)
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
