package keybind

import "strings"

// iconTable maps lowercased key and modifier names to Nerd Font glyphs.
var iconTable = map[string]string{
	"super":                 "\uf17a",
	"shift":                 " \U000f0636 ",
	"return":                "\U000f0311",
	"enter":                 "\U000f0311",
	"semicolon":             ";",
	"delete":                "DEL",
	"tab":                   "TAB",
	"left":                  "\U000f0731",
	"right":                 "\U000f0734",
	"up":                    "\U000f0737",
	"down":                  "\U000f072e",
	"mouse_down":            "\U000f1550",
	"mouse_up":              "\U000f1551",
	"mouse:272":             "\ueb6f\U000f037d",
	"mouse:273":             "\U000f037d\ueb70",
	"xf86audioraisevolume":  "\uf028",
	"xf86audiolowervolume":  "\uf027",
	"xf86audiomute":         "\ueee8",
	"xf86audiomicmute":      "\U000f036d",
	"xf86monbrightnessup":   "\U000f00e0",
	"xf86monbrightnessdown": "\U000f00de",
	"xf86audionext":         "\U000f0661",
	"xf86audiopause":        "\uf04c",
	"xf86audioplay":         "\uf04b",
	"xf86audioprev":         "\U000f0663",
}

// Icon returns the glyph for a key or modifier name, matched
// case-insensitively. Unknown tokens are returned unchanged.
func Icon(token string) string {
	if icon, ok := iconTable[strings.ToLower(token)]; ok {
		return icon
	}
	return token
}
