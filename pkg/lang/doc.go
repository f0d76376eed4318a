// Package lang provides the closed registry of ISO 639-1 language codes used
// by translation files and resolution requests.
//
// The registry is a fixed, process-wide table initialized at package load.
// All lookups are read-only and safe for concurrent use.
//
// # Membership
//
//	lang.IsValid("es") // true
//	lang.IsValid("xx") // false
//
// # Suggestions
//
// Suggest performs a case-insensitive substring match against both the
// two-letter code and the English display name, which is useful for building
// actionable error messages when a caller passes an unknown code:
//
//	for _, s := range lang.Suggest("span") {
//		fmt.Printf("%s (%s)\n", s.Code, s.Name) // "es (Spanish)"
//	}
package lang
