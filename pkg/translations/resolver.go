package translations

import (
	"strings"

	"github.com/dmitrymomot/translatable/pkg/lang"
)

// Resolver answers (language, path) queries against a loaded Collection.
// It is stateless apart from the collection reference and safe for
// concurrent use.
type Resolver struct {
	collection *Collection
}

// NewResolver wraps a loaded collection.
func NewResolver(collection *Collection) *Resolver {
	return &Resolver{collection: collection}
}

// Resolve returns the raw template string stored for the dot-separated path
// in the given language. No placeholder substitution is performed; pass the
// result to Substitute for that.
//
// Failures are typed: InvalidLanguageError when the language code is not in
// the registry (carrying suggestions), PathNotFoundError when no loaded file
// defines the path, and LanguageNotAvailableError when the path exists but
// has no translation in that language. An empty or partial path is simply
// not found; it is never a structural error.
func (r *Resolver) Resolve(language, path string) (string, error) {
	if !lang.IsValid(language) {
		return "", &InvalidLanguageError{Code: language, Suggestions: lang.Suggest(language)}
	}

	object, ok := r.collection.FindPath(strings.Split(path, "."))
	if !ok {
		return "", &PathNotFoundError{Path: path}
	}

	template, ok := object.Get(language)
	if !ok {
		return "", &LanguageNotAvailableError{Language: strings.ToLower(language), Path: path}
	}
	return template, nil
}

// Collection returns the collection this resolver queries.
func (r *Resolver) Collection() *Collection {
	return r.collection
}
