package translatable

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/translatable/pkg/lang"
	"github.com/dmitrymomot/translatable/pkg/translations"
)

// Type aliases - public API, so callers rarely need to import the engine
// packages directly.
type (
	// M is a map of placeholder names to display values.
	M = translations.M

	// SeekMode is the base file ordering applied before the overlap policy.
	SeekMode = translations.SeekMode

	// Overlap decides which file wins when several define the same path.
	Overlap = translations.Overlap

	// File is one raw translation source handed to WithFiles.
	File = translations.File

	// Suggestion pairs a language code with its English display name.
	Suggestion = lang.Suggestion
)

const (
	SeekAlphabetical   = translations.SeekAlphabetical
	SeekUnalphabetical = translations.SeekUnalphabetical
	OverlapOverwrite   = translations.OverlapOverwrite
	OverlapIgnore      = translations.OverlapIgnore
)

// ErrNoSource is returned by New when no translation input was configured.
var ErrNoSource = errors.New("translatable: no translation source configured")

// Translatable is the top-level engine: a loaded, immutable collection plus
// the resolver that queries it. Safe for concurrent use.
type Translatable struct {
	collection *translations.Collection
	resolver   *translations.Resolver
	logger     *slog.Logger
}

// New loads the configured translation sources and returns a ready engine.
// At least one of WithFS or WithFiles must be provided. Loading validates
// every file; any structural or read failure makes the whole call fail.
func New(opts ...Option) (*Translatable, error) {
	s := settings{
		seekMode: SeekAlphabetical,
		overlap:  OverlapOverwrite,
	}
	for _, opt := range opts {
		opt(&s)
	}

	files := s.files
	if s.fsys != nil {
		fromFS, err := translations.ReadDir(s.fsys)
		if err != nil {
			return nil, err
		}
		files = append(files, fromFS...)
	}
	if len(files) == 0 {
		return nil, ErrNoSource
	}

	collection, err := translations.Load(files, s.seekMode, s.overlap)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("translations loaded",
			"files", collection.Len(),
			"seek_mode", string(s.seekMode),
			"overlap", string(s.overlap),
		)
	}

	return &Translatable{
		collection: collection,
		resolver:   translations.NewResolver(collection),
		logger:     s.logger,
	}, nil
}

// Resolve returns the raw template stored for the dot-separated path in the
// given language, without placeholder substitution.
func (t *Translatable) Resolve(language, path string) (string, error) {
	return t.resolver.Resolve(language, path)
}

// T resolves and substitutes in one call. On any resolution failure it
// returns the path itself, so templates degrade to visible keys instead of
// empty strings.
func (t *Translatable) T(language, path string, bindings ...M) string {
	template, err := t.resolver.Resolve(language, path)
	if err != nil {
		if t.logger != nil {
			t.logger.Debug("translation not resolved", "language", language, "path", path, "error", err)
		}
		return path
	}

	if len(bindings) == 0 {
		return translations.Substitute(template, nil)
	}
	merged := make(M)
	for _, b := range bindings {
		for k, v := range b {
			merged[k] = v
		}
	}
	return translations.Substitute(template, merged)
}

// Substitute applies placeholder bindings to a template string.
func (t *Translatable) Substitute(template string, bindings M) string {
	return translations.Substitute(template, bindings)
}

// Collection returns the loaded collection for direct inspection.
func (t *Translatable) Collection() *translations.Collection {
	return t.collection
}

// Languages returns every language code the registry accepts.
func (t *Translatable) Languages() []string {
	return lang.Codes()
}
