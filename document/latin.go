package document

import "strings"

// The embedded core fonts only carry the base Latin glyph set, so every
// piece of free text is transliterated before it is placed on a page.
var latinReplacer = strings.NewReplacer(
	"č", "c", "ć", "c", "š", "s", "ž", "z", "đ", "dj",
	"Č", "C", "Ć", "C", "Š", "S", "Ž", "Z", "Đ", "Dj",
)

// Latinize replaces diacritic characters with their closest ASCII
// equivalent ("ž" -> "z", "đ" -> "dj", ...).
func Latinize(s string) string {
	return latinReplacer.Replace(s)
}
