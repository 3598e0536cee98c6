package keybind

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dmenuFixture() Bindings {
	var b Bindings
	b.Add(NewEntry("", "Return", "exec kitty", "Terminal"))
	b.Add(NewEntry("SUPER+SHIFT", "Q", "killactive", "Kill window"))
	b.Add(NewEntry("SUPER+ALT", "F1", "exec firefox", ""))
	b.Add(NewEntry("CTRL+SHIFT", "F2", "", ""))
	return b
}

func TestDmenu(t *testing.T) {
	want := []string{
		"\U000f0311 : Terminal",
		"\uf17a +  \U000f0636  + Q : Kill window",
		"\uf17a + ALT + F1 : exec firefox",
		"CTRL +  \U000f0636  + F2 : ",
	}
	assert.Equal(t, strings.Join(want, "\n"), dmenuFixture().Dmenu())
}

func TestDmenu_Empty(t *testing.T) {
	assert.Equal(t, "", Bindings{}.Dmenu())
}

func TestDmenu_NoTrailingNewline(t *testing.T) {
	out := dmenuFixture().Dmenu()
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Len(t, strings.Split(out, "\n"), 4)
}

func TestDecorate(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{NewEntry("", "A", "", ""), "A"},
		{NewEntry("SUPER", "Return", "", ""), "\uf17a + \U000f0311"},
		{NewEntry("ALT", "mouse:272", "", ""), "ALT + \ueb6f\U000f037d"},
		{NewEntry("SUPER", "left", "", ""), "\uf17a + \U000f0731"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decorate(tt.entry))
	}
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "\uf17a", Icon("SUPER"))
	assert.Equal(t, "\uf17a", Icon("super"))
	assert.Equal(t, "\U000f0311", Icon("Enter"))
	assert.Equal(t, "TAB", Icon("Tab"))
	assert.Equal(t, "\uf028", Icon("XF86AudioRaiseVolume"))
	assert.Equal(t, "CTRL", Icon("CTRL"))
	assert.Equal(t, "F13", Icon("F13"))
	assert.Equal(t, "", Icon(""))
}

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "Terminal", NewEntry("", "", "exec kitty", "Terminal").DisplayText())
	assert.Equal(t, "exec kitty", NewEntry("", "", "exec kitty", "").DisplayText())
	assert.Equal(t, "", NewEntry("", "", "", "").DisplayText())
}

func TestJSON_FieldNames(t *testing.T) {
	var b Bindings
	b.Add(NewEntry("SUPER", "Return", "exec kitty", "Terminal"))

	data, err := b.JSON()
	require.NoError(t, err)

	var raw map[string][]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw["entries"], 1)
	assert.Equal(t, map[string]string{
		"modifiers":   "SUPER",
		"key":         "Return",
		"command":     "exec kitty",
		"description": "Terminal",
	}, raw["entries"][0])
	assert.Contains(t, string(data), "\n  \"entries\": [")
}

func TestJSON_Empty(t *testing.T) {
	data, err := Bindings{}.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries": []}`, string(data))
}

func TestJSON_RoundTrip(t *testing.T) {
	b := dmenuFixture()
	b.Add(NewEntry("SUPER", "A", "exec test", `Test: with "quotes" and 'apostrophes' and 日本語`))

	data, err := b.JSON()
	require.NoError(t, err)
	got, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestJSON_ShellCharactersVerbatim(t *testing.T) {
	var b Bindings
	b.Add(NewEntry("SUPER", "Print", `exec grim -g "$(slurp)" - > /tmp/s.png && notify-send <done>`, "Screenshot & notify"))

	data, err := b.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command": "exec grim -g \"$(slurp)\" - > /tmp/s.png && notify-send <done>"`)
	assert.Contains(t, string(data), `"description": "Screenshot & notify"`)
	assert.NotContains(t, string(data), `\u00`)
	assert.False(t, strings.HasSuffix(string(data), "\n"), "no trailing newline")

	got, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestJSON_FieldOrder(t *testing.T) {
	var b Bindings
	b.Add(NewEntry("SUPER", "Return", "exec kitty", "Terminal"))

	data, err := b.JSON()
	require.NoError(t, err)
	s := string(data)
	mods := strings.Index(s, `"modifiers"`)
	key := strings.Index(s, `"key"`)
	cmd := strings.Index(s, `"command"`)
	desc := strings.Index(s, `"description"`)
	assert.True(t, mods < key && key < cmd && cmd < desc, "field order:\n%s", s)
}

func TestNewEntry_InvalidUTF8(t *testing.T) {
	e := NewEntry("SUPER", "A", "exec \xff\xfe", "bad \xc3")
	assert.Equal(t, "exec \uFFFD", e.Command)
	assert.Equal(t, "bad \uFFFD", e.Description)

	var b Bindings
	b.Add(e)
	data, err := b.JSON()
	require.NoError(t, err)
	got, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestParseJSON_Errors(t *testing.T) {
	for _, input := range []string{"", "{", `{"entries": 3}`, `{"entries": [], "extra": true}`} {
		_, err := ParseJSON([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	b := dmenuFixture()
	data, err := b.YAML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "entries:\n"))

	got, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestYAML_Empty(t *testing.T) {
	data, err := Bindings{}.YAML()
	require.NoError(t, err)
	assert.Equal(t, "entries: []\n", string(data))
}
