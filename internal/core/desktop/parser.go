package desktop

import (
	"strings"
)

// SectionDesktopEntry is the only section whose keys are interpreted
const SectionDesktopEntry = "Desktop Entry"

// ReadFunc reads the full contents of a descriptor file
type ReadFunc func(path string) ([]byte, error)

// Parser turns descriptor text into entries.
// Desktops holds the identifiers of the running environment, matched
// against OnlyShowIn and NotShowIn.
type Parser struct {
	Desktops []string
}

// NewParser creates a parser for the given desktop environment identifiers
func NewParser(desktops ...string) Parser {
	return Parser{Desktops: desktops}
}

// parseState accumulates first-occurrence values while scanning lines
type parseState struct {
	typ         field[string]
	name        field[string]
	icon        field[string]
	genericName field[string]
	comment     field[string]
	exec        field[string]
	path        field[string]
	terminal    field[bool]
	categories  field[[]string]
	keywords    field[[]string]
	hidden      field[bool]
	onlyShowIn  field[[]string]
	notShowIn   field[[]string]
}

// keyHandler applies the value of one recognised key to the state
type keyHandler struct {
	prefix string
	apply  func(p Parser, s *parseState, value string) *RejectError
}

// keyHandlers are tested in order against each line; the first prefix match wins
var keyHandlers = []keyHandler{
	{"Type=", func(_ Parser, s *parseState, v string) *RejectError {
		if s.typ.assign(v) && v != "Application" {
			return reject(ReasonNotApplication)
		}
		return nil
	}},
	{"Name=", func(_ Parser, s *parseState, v string) *RejectError {
		s.name.assign(v)
		return nil
	}},
	{"Icon=", func(_ Parser, s *parseState, v string) *RejectError {
		s.icon.assign(v)
		return nil
	}},
	{"GenericName=", func(_ Parser, s *parseState, v string) *RejectError {
		s.genericName.assign(v)
		return nil
	}},
	{"Comment=", func(_ Parser, s *parseState, v string) *RejectError {
		s.comment.assign(v)
		return nil
	}},
	{"Exec=", func(_ Parser, s *parseState, v string) *RejectError {
		s.exec.assign(v)
		return nil
	}},
	{"Path=", func(_ Parser, s *parseState, v string) *RejectError {
		s.path.assign(v)
		return nil
	}},
	{"Terminal=", func(_ Parser, s *parseState, v string) *RejectError {
		s.terminal.assign(v == "true")
		return nil
	}},
	{"Categories=", func(_ Parser, s *parseState, v string) *RejectError {
		s.categories.assign(SplitList(v))
		return nil
	}},
	{"Keywords=", func(_ Parser, s *parseState, v string) *RejectError {
		s.keywords.assign(SplitList(v))
		return nil
	}},
	{"Hidden=", func(_ Parser, s *parseState, v string) *RejectError {
		if s.hidden.assign(v == "true") && s.hidden.get() {
			return reject(ReasonHidden)
		}
		return nil
	}},
	{"OnlyShowIn=", func(p Parser, s *parseState, v string) *RejectError {
		if s.onlyShowIn.assign(SplitList(v)) && !p.matchesAny(s.onlyShowIn.get()) {
			return reject(ReasonOnlyShowIn)
		}
		return nil
	}},
	{"NotShowIn=", func(p Parser, s *parseState, v string) *RejectError {
		if s.notShowIn.assign(SplitList(v)) && p.matchesAny(s.notShowIn.get()) {
			return reject(ReasonNotShowIn)
		}
		return nil
	}},
}

// Parse converts the raw text of one descriptor file into an Entry.
// On failure the returned error is a *RejectError.
func (p Parser) Parse(raw string) (*Entry, error) {
	var s parseState
	inSection := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, "[") {
			if len(line) < 3 {
				return nil, reject(ReasonInvalidGroupHeader)
			}
			inSection = line[1:len(line)-1] == SectionDesktopEntry
			continue
		}

		if !inSection {
			continue
		}

		for _, h := range keyHandlers {
			if !strings.HasPrefix(line, h.prefix) {
				continue
			}
			if rej := h.apply(p, &s, line[len(h.prefix):]); rej != nil {
				return nil, rej
			}
			break
		}
	}

	// Name is checked before Exec
	if !s.name.isSet() {
		return nil, reject(ReasonMissingName)
	}
	if !s.exec.isSet() {
		return nil, reject(ReasonMissingExec)
	}

	return newEntry(Fields{
		Name:        s.name.get(),
		Exec:        s.exec.get(),
		Icon:        s.icon.get(),
		GenericName: s.genericName.get(),
		Comment:     s.comment.get(),
		Path:        s.path.get(),
		Terminal:    s.terminal.get(),
		Categories:  s.categories.get(),
		Keywords:    s.keywords.get(),
	}), nil
}

// ParseFile reads path with read and parses its contents.
// The returned entry records path as its source.
func (p Parser) ParseFile(path string, read ReadFunc) (*Entry, error) {
	data, err := read(path)
	if err != nil {
		return nil, &RejectError{Reason: ReasonIOFailure, Err: err}
	}

	entry, err := p.Parse(string(data))
	if err != nil {
		return nil, err
	}
	return entry.WithSource(path), nil
}

// matchesAny reports whether any of the parser's desktops is in list
func (p Parser) matchesAny(list []string) bool {
	for _, want := range p.Desktops {
		for _, have := range list {
			if have == want {
				return true
			}
		}
	}
	return false
}

// SplitList splits a ';'-separated value, dropping empty segments
func SplitList(value string) []string {
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
