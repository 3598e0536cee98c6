package keybind

import "strings"

// ModifierSeparator joins modifier names in Entry.Modifiers.
const ModifierSeparator = "+"

// Modifier bits as reported by the compositor.
const (
	ModShift uint32 = 0x01
	ModCtrl  uint32 = 0x04
	ModAlt   uint32 = 0x08
	ModSuper uint32 = 0x40
)

// modifierOrder is the display order, which is not bit order.
var modifierOrder = []struct {
	bit  uint32
	name string
}{
	{ModSuper, "SUPER"},
	{ModAlt, "ALT"},
	{ModCtrl, "CTRL"},
	{ModShift, "SHIFT"},
}

// DecodeModmask converts a modifier bitmask into "SUPER+ALT+CTRL+SHIFT" form.
// Unknown bits are ignored and a zero mask yields "".
func DecodeModmask(mask uint32) string {
	var mods []string
	for _, m := range modifierOrder {
		if mask&m.bit != 0 {
			mods = append(mods, m.name)
		}
	}
	return strings.Join(mods, ModifierSeparator)
}
