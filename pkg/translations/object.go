package translations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/translatable/pkg/lang"
)

// Object is a leaf translation set: one template string per language code.
// It is immutable after construction.
type Object struct {
	templates map[string]string
}

// NewObject builds a leaf translation set from raw file content. Every key
// must be a registry-valid ISO 639-1 code and every value must have balanced
// braces (net count of zero scanning left to right), so "{{a}}" is valid
// while "{a}}" is not.
func NewObject(raw map[string]string) (*Object, error) {
	templates := make(map[string]string, len(raw))
	for key, value := range raw {
		if !lang.IsValid(key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageCode, key)
		}
		if braceBalance(value) != 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnbalancedTemplate, value)
		}
		templates[strings.ToLower(key)] = value
	}
	return &Object{templates: templates}, nil
}

// Get returns the template string for a language code, case-insensitively.
func (o *Object) Get(language string) (string, bool) {
	value, ok := o.templates[strings.ToLower(language)]
	return value, ok
}

// Languages returns the language codes present in this set, sorted.
func (o *Object) Languages() []string {
	out := make([]string, 0, len(o.templates))
	for code := range o.templates {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func braceBalance(s string) int {
	balance := 0
	for _, r := range s {
		switch r {
		case '{':
			balance++
		case '}':
			balance--
		}
	}
	return balance
}
