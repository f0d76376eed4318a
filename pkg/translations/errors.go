package translations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/translatable/pkg/lang"
)

// Structural sentinels: load-time validation failures, fatal to the load.
var (
	ErrInvalidLanguageCode = errors.New("translations: leaf key is not a valid ISO 639-1 code")
	ErrUnbalancedTemplate  = errors.New("translations: unbalanced braces in template")
	ErrMixedNodeKinds      = errors.New("translations: namespaces and translations mixed at one level")
	ErrUnsupportedValue    = errors.New("translations: value must be a string or a nested table")
	ErrUnsupportedFormat   = errors.New("translations: unsupported file format")
)

// Resolution sentinels: per-query failures, recoverable by the caller.
var (
	ErrInvalidLanguage      = errors.New("translations: invalid language")
	ErrPathNotFound         = errors.New("translations: path not found")
	ErrLanguageNotAvailable = errors.New("translations: language not available")
)

// StructuralError ties a load-time validation failure to the file and the
// path within that file where it was detected. Path is dot-separated and may
// be empty when the failure is at the file's top level.
type StructuralError struct {
	File string
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Path != "" {
		fmt.Fprintf(&b, " at %q", e.Path)
	}
	if e.File != "" {
		fmt.Fprintf(&b, " in %q", e.File)
	}
	return b.String()
}

func (e *StructuralError) Unwrap() error { return e.Err }

// InvalidLanguageError reports a resolution request with a language code that
// is not in the registry. Suggestions lists registry entries whose code or
// display name contains the requested code.
type InvalidLanguageError struct {
	Code        string
	Suggestions []lang.Suggestion
}

func (e *InvalidLanguageError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q is not valid ISO 639-1", ErrInvalidLanguage, e.Code)
	}

	similar := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		similar[i] = fmt.Sprintf("%s (%s)", s.Code, s.Name)
	}
	return fmt.Sprintf("%s: %q is not valid ISO 639-1, did you mean: %s",
		ErrInvalidLanguage, e.Code, strings.Join(similar, ", "))
}

func (e *InvalidLanguageError) Unwrap() error { return ErrInvalidLanguage }

// PathNotFoundError reports a path that no loaded file defines.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrPathNotFound, e.Path)
}

func (e *PathNotFoundError) Unwrap() error { return ErrPathNotFound }

// LanguageNotAvailableError reports a path that exists but carries no
// translation for the requested language.
type LanguageNotAvailableError struct {
	Language string
	Path     string
}

func (e *LanguageNotAvailableError) Error() string {
	return fmt.Sprintf("%s: %q has no %q translation", ErrLanguageNotAvailable, e.Path, e.Language)
}

func (e *LanguageNotAvailableError) Unwrap() error { return ErrLanguageNotAvailable }
