package keybind

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// decorationSeparator joins decorated modifier and key tokens.
const decorationSeparator = " + "

// JSON encodes the collection as indented JSON with a top-level "entries"
// array. An empty collection encodes as an empty array. Field text is written
// as-is, without HTML escaping. Invalid UTF-8 cannot be represented and is
// written as U+FFFD; entries built with NewEntry never contain it.
func (b Bindings) JSON() ([]byte, error) {
	out := b
	if out.Entries == nil {
		out.Entries = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("keybind: encode json: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ParseJSON decodes a collection produced by Bindings.JSON.
func ParseJSON(data []byte) (Bindings, error) {
	var b Bindings
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return Bindings{}, fmt.Errorf("keybind: decode json: %w", err)
	}
	return b, nil
}

// YAML encodes the collection with the same schema as JSON.
func (b Bindings) YAML() ([]byte, error) {
	out := b
	if out.Entries == nil {
		out.Entries = []Entry{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("keybind: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("keybind: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseYAML decodes a collection produced by Bindings.YAML.
func ParseYAML(data []byte) (Bindings, error) {
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bindings{}, fmt.Errorf("keybind: decode yaml: %w", err)
	}
	return b, nil
}

// Decorate renders the entry's modifiers and key through the icon table,
// joined with " + ". An entry without modifiers renders the key alone.
func Decorate(e Entry) string {
	mods := e.ModifierList()
	parts := make([]string, 0, len(mods)+1)
	for _, m := range mods {
		parts = append(parts, Icon(m))
	}
	parts = append(parts, Icon(e.Key))
	return strings.Join(parts, decorationSeparator)
}

// DisplayText is the description when present, otherwise the command.
func (e Entry) DisplayText() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Command
}

// Dmenu renders one "<decorated keybind> : <text>" line per entry, joined by
// newlines, for piping into dmenu-style launchers.
func (b Bindings) Dmenu() string {
	lines := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		lines[i] = Decorate(e) + " : " + e.DisplayText()
	}
	return strings.Join(lines, "\n")
}
