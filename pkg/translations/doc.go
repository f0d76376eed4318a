// Package translations implements the translation resolution engine: the
// in-memory tree built from hierarchical translation files, the validation
// performed while loading them, the cross-file precedence rules, path lookup,
// and placeholder substitution.
//
// # Data model
//
// A translation file is a nested string-keyed table. Every level is either a
// namespace (all children are tables) or a leaf translation set (all children
// are language-code-keyed strings) — never a mix. Files are loaded into an
// ordered Collection whose iteration order encodes the configured precedence,
// so lookup is always "first node that satisfies the path wins".
//
// # Loading
//
//	coll, err := translations.LoadFS(fsys, translations.SeekAlphabetical, translations.OverlapOverwrite)
//	if err != nil {
//		// the load failed as a whole; err carries the offending file
//	}
//
// Loading validates every file: leaf keys must be registry-valid language
// codes, template braces must balance, and namespace/leaf children must not
// be mixed at one level. Any violation aborts the load.
//
// # Resolution
//
//	resolver := translations.NewResolver(coll)
//	tmpl, err := resolver.Resolve("es", "common.greeting")
//	// tmpl == "¡Hola {name}!"
//
// Resolution errors are per-query and typed: InvalidLanguageError (with
// suggestions), PathNotFoundError, LanguageNotAvailableError. All unwrap to
// package sentinels so errors.Is works.
//
// # Substitution
//
//	translations.Substitute("¡Hola {name}!", translations.M{"name": "John"})
//	// "¡Hola John!"
//
// Placeholders use single braces; a doubled brace form {{name}} is the
// escaped literal and survives substitution as {name}. Placeholders without
// a matching binding are left verbatim.
//
// All types are immutable after construction and safe for concurrent use.
package translations
