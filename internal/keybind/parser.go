package keybind

import (
	"strconv"
	"strings"
)

// blockSeparator divides the bind report into one paragraph per binding.
const blockSeparator = "\n\n"

// Field names read from a bind block. Anything else is ignored.
const (
	fieldModmask     = "modmask"
	fieldKey         = "key"
	fieldDispatcher  = "dispatcher"
	fieldArg         = "arg"
	fieldDescription = "description"
)

// Parse converts the text of a compositor bind report into Bindings.
//
// Blocks that lack a numeric modmask or a non-empty key and dispatcher are
// skipped; they never abort parsing of the remaining blocks. Parse never
// fails: empty or garbage input yields an empty collection.
func Parse(raw string) Bindings {
	var b Bindings
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	for _, block := range strings.Split(raw, blockSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		if entry, ok := parseBlock(block); ok {
			b.Add(entry)
		}
	}
	return b
}

// parseBlock extracts one entry from a bind block.
func parseBlock(block string) (Entry, bool) {
	fields := blockFields(block)

	modmask, err := strconv.ParseUint(fields[fieldModmask], 10, 32)
	if err != nil {
		return Entry{}, false
	}
	key := fields[fieldKey]
	dispatcher := fields[fieldDispatcher]
	if key == "" || dispatcher == "" {
		return Entry{}, false
	}

	command := dispatcher
	if arg := fields[fieldArg]; arg != "" {
		command = dispatcher + " " + arg
	}

	return NewEntry(DecodeModmask(uint32(modmask)), key, command, fields[fieldDescription]), true
}

// blockFields splits each line on its first colon. Lines without a colon are
// skipped and a repeated name keeps the last value.
func blockFields(block string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		name, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return fields
}
