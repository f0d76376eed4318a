// Package translatable resolves translated strings for multilingual
// applications from hierarchical TOML and YAML translation files.
//
// Translation files are nested tables whose leaves map ISO 639-1 language
// codes to template strings:
//
//	[common.greeting]
//	en = "Hello {name}"
//	es = "¡Hola {name}!"
//
// # Usage
//
//	t, err := translatable.New(translatable.WithFS(os.DirFS("./translations")))
//	if err != nil {
//		// a structural or I/O problem in the files; the load failed as a whole
//	}
//
//	tmpl, err := t.Resolve("es", "common.greeting")
//	// tmpl == "¡Hola {name}!"
//
//	msg := t.T("es", "common.greeting", translatable.M{"name": "John"})
//	// msg == "¡Hola John!"
//
// When several files define the same path and language, the seek mode and
// overlap policy decide which one wins; see the pkg/translations package for
// the precedence rules.
//
// # Default instance
//
// Default lazily builds a process-wide instance from the optional
// translatable.toml configuration file (translation directory, seek mode,
// overlap policy). The load happens exactly once, is safe under concurrent
// first use, and a failed load stays failed:
//
//	t, err := translatable.Default()
//
// Everything is immutable after loading, so instances are safe for
// concurrent use without locking.
package translatable
