package lang

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// codes is the full ISO 639-1 set. Two-letter codes only; regional variants
// like "en-US" are not part of the registry.
var codes = []string{
	"aa", "ab", "ae", "af", "ak", "am", "an", "ar", "as", "av",
	"ay", "az", "ba", "be", "bg", "bh", "bi", "bm", "bn", "bo",
	"br", "bs", "ca", "ce", "ch", "co", "cr", "cs", "cu", "cv",
	"cy", "da", "de", "dv", "dz", "ee", "el", "en", "eo", "es",
	"et", "eu", "fa", "ff", "fi", "fj", "fo", "fr", "fy", "ga",
	"gd", "gl", "gn", "gu", "gv", "ha", "he", "hi", "ho", "hr",
	"ht", "hu", "hy", "hz", "ia", "id", "ie", "ig", "ii", "ik",
	"io", "is", "it", "iu", "ja", "jv", "ka", "kg", "ki", "kj",
	"kk", "kl", "km", "kn", "ko", "kr", "ks", "ku", "kv", "kw",
	"ky", "la", "lb", "lg", "li", "ln", "lo", "lt", "lu", "lv",
	"mg", "mh", "mi", "mk", "ml", "mn", "mr", "ms", "mt", "my",
	"na", "nb", "nd", "ne", "ng", "nl", "nn", "no", "nr", "nv",
	"ny", "oc", "oj", "om", "or", "os", "pa", "pi", "pl", "ps",
	"pt", "qu", "rm", "rn", "ro", "ru", "rw", "sa", "sc", "sd",
	"se", "sg", "si", "sk", "sl", "sm", "sn", "so", "sq", "sr",
	"ss", "st", "su", "sv", "sw", "ta", "te", "tg", "th", "ti",
	"tk", "tl", "tn", "to", "tr", "ts", "tt", "tw", "ty", "ug",
	"uk", "ur", "uz", "ve", "vi", "vo", "wa", "wo", "xh", "yi",
	"yo", "za", "zh", "zu",
}

// names maps each registry code to its English display name. Built once at
// package load from the x/text display tables; codes x/text cannot name keep
// the bare code as their display name.
var names = func() map[string]string {
	namer := display.English.Languages()
	m := make(map[string]string, len(codes))
	for _, code := range codes {
		name := namer.Name(language.Make(code))
		if name == "" {
			name = code
		}
		m[code] = name
	}
	return m
}()

// Suggestion pairs a registry code with its English display name.
type Suggestion struct {
	Code string
	Name string
}

// IsValid reports whether code is a registry language code.
// Matching is case-insensitive.
func IsValid(code string) bool {
	_, ok := names[strings.ToLower(code)]
	return ok
}

// Name returns the English display name for a registry code.
func Name(code string) (string, bool) {
	name, ok := names[strings.ToLower(code)]
	return name, ok
}

// Codes returns all registry codes sorted alphabetically.
// The returned slice is a copy and safe to modify.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	sort.Strings(out)
	return out
}

// Suggest returns registry entries whose code or English display name
// contains fragment, case-insensitively, sorted by code. An empty fragment
// matches every entry.
func Suggest(fragment string) []Suggestion {
	fragment = strings.ToLower(fragment)

	var out []Suggestion
	for code, name := range names {
		if strings.Contains(code, fragment) || strings.Contains(strings.ToLower(name), fragment) {
			out = append(out, Suggestion{Code: code, Name: name})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
