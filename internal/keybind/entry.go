// Package keybind models compositor keybindings and provides the parser,
// query/sort engine and export formatters that operate on them.
package keybind

import "strings"

// SearchOptions selects which fields participate in substring matching.
type SearchOptions struct {
	Keybind     bool `toml:"keybind" json:"keybind" yaml:"keybind"`
	Command     bool `toml:"command" json:"command" yaml:"command"`
	Description bool `toml:"description" json:"description" yaml:"description"`
}

// DefaultSearchOptions returns options with every field enabled.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Keybind: true, Command: true, Description: true}
}

// Entry is one parsed keybinding. Empty string is the "no value"
// representation for every field.
type Entry struct {
	Modifiers   string `json:"modifiers" yaml:"modifiers"`     // e.g. "SUPER+SHIFT"
	Key         string `json:"key" yaml:"key"`                 // e.g. "Return"
	Command     string `json:"command" yaml:"command"`         // e.g. "exec kitty"
	Description string `json:"description" yaml:"description"` // free text
}

// NewEntry builds an Entry from its four fields. Invalid UTF-8 is replaced
// with U+FFFD so the entry encodes losslessly.
func NewEntry(modifiers, key, command, description string) Entry {
	return Entry{
		Modifiers:   validUTF8(modifiers),
		Key:         validUTF8(key),
		Command:     validUTF8(command),
		Description: validUTF8(description),
	}
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// ModifierList splits the modifiers string into its tokens. It returns nil
// when the entry has no modifiers.
func (e Entry) ModifierList() []string {
	if e.Modifiers == "" {
		return nil
	}
	return strings.Split(e.Modifiers, ModifierSeparator)
}

// Matches reports whether query is a case-insensitive substring of any field
// enabled in opts. The keybind option matches against both the modifiers and
// the key.
func (e Entry) Matches(query string, opts SearchOptions) bool {
	q := strings.ToLower(query)
	if opts.Keybind &&
		(strings.Contains(strings.ToLower(e.Modifiers), q) ||
			strings.Contains(strings.ToLower(e.Key), q)) {
		return true
	}
	if opts.Command && strings.Contains(strings.ToLower(e.Command), q) {
		return true
	}
	return opts.Description && strings.Contains(strings.ToLower(e.Description), q)
}

// Bindings is an ordered collection of entries in source order. Duplicates
// are legal and preserved.
type Bindings struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Add appends an entry to the collection.
func (b *Bindings) Add(e Entry) {
	b.Entries = append(b.Entries, e)
}

// Len returns the number of entries.
func (b Bindings) Len() int {
	return len(b.Entries)
}

// Filter returns the entries matching query under opts, in collection order.
// An empty query matches everything.
func (b Bindings) Filter(query string, opts SearchOptions) []Entry {
	out := make([]Entry, 0, len(b.Entries))
	for _, e := range b.Entries {
		if query == "" || e.Matches(query, opts) {
			out = append(out, e)
		}
	}
	return out
}
