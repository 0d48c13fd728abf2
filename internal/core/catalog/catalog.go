package catalog

import (
	"sort"

	"pyroxene.dev/launcher/internal/core/desktop"
)

// Definition is one row of the category table
type Definition struct {
	ID          string // lowercase key matched against entry categories
	DisplayName string
	IconHint    string
}

// Default returns the fixed category table in display order
func Default() []Definition {
	return []Definition{
		{ID: "utility", DisplayName: "Accessories", IconHint: "applications-utilities"},
		{ID: "development", DisplayName: "Development", IconHint: "applications-development"},
		{ID: "education", DisplayName: "Education", IconHint: "applications-science"},
		{ID: "game", DisplayName: "Games", IconHint: "applications-games"},
		{ID: "graphics", DisplayName: "Graphics", IconHint: "applications-graphics"},
		{ID: "audiovideo", DisplayName: "Multimedia", IconHint: "applications-multimedia"},
		{ID: "network", DisplayName: "Network", IconHint: "applications-internet"},
		{ID: "office", DisplayName: "Office", IconHint: "applications-office"},
		{ID: "other", DisplayName: "Other", IconHint: "applications-other"},
		{ID: "settings", DisplayName: "Settings", IconHint: "applications-accessories"},
		{ID: "system", DisplayName: "System", IconHint: "applications-system"},
	}
}

// Category is a populated category. Membership is fixed once built.
type Category struct {
	Definition
	entries []*desktop.Entry
}

// Entries returns the members sorted by name
func (c Category) Entries() []*desktop.Entry {
	out := make([]*desktop.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of members
func (c Category) Len() int {
	return len(c.entries)
}

// Populate fills every definition with the entries tagged with its ID.
// Members are sorted by case-insensitive name, ties keeping input order.
// Categories left empty are dropped; the rest keep table order.
func Populate(defs []Definition, entries []*desktop.Entry) []Category {
	out := make([]Category, 0, len(defs))

	for _, def := range defs {
		members := filter(def.ID, entries)
		if len(members) == 0 {
			continue
		}
		out = append(out, Category{Definition: def, entries: members})
	}

	return out
}

// filter selects and sorts the members of one category
func filter(id string, entries []*desktop.Entry) []*desktop.Entry {
	type keyed struct {
		entry *desktop.Entry
		key   string
	}

	var members []keyed
	for _, e := range entries {
		if e.HasCategory(id) {
			members = append(members, keyed{entry: e, key: desktop.Fold(e.Name())})
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].key < members[j].key
	})

	out := make([]*desktop.Entry, len(members))
	for i, m := range members {
		out[i] = m.entry
	}
	return out
}
