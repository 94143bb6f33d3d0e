package config

import (
	"strings"

	"github.com/gosimple/slug"
)

const badFileName = "_bad_file_name_"

// CleanFileName removes characters not allowed in a single path element.
// Leading dots are dropped so result never names hidden or parent entry.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if strings.ContainsRune(unsafeFileRunes, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimRight(strings.TrimLeft(out, "."), " ")
	if len(out) == 0 {
		out = badFileName
	}
	return out
}

// SettingsFileName derives file name for a new settings document from a
// layer name: "Base Layer" becomes "base-layer.json".
func SettingsFileName(name, ext string) string {
	base := slug.Make(name)
	if len(base) == 0 {
		base = badFileName
	}
	return CleanFileName(base) + ext
}
