package translations_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translatable/pkg/translations"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		bindings translations.M
		expected string
	}{
		{
			name:     "no bindings",
			template: "Hello {name}",
			bindings: nil,
			expected: "Hello {name}",
		},
		{
			name:     "single binding",
			template: "¡Hola {name}!",
			bindings: translations.M{"name": "John"},
			expected: "¡Hola John!",
		},
		{
			name:     "escaped placeholder stays literal",
			template: "{{name}} is {name}",
			bindings: translations.M{"name": "Ann"},
			expected: "{name} is Ann",
		},
		{
			name:     "multiple bindings",
			template: "{greeting} {name}",
			bindings: translations.M{"greeting": "Hi", "name": "Bo"},
			expected: "Hi Bo",
		},
		{
			name:     "unbound placeholder left verbatim",
			template: "{greeting}, {name}!",
			bindings: translations.M{"name": "Bo"},
			expected: "{greeting}, Bo!",
		},
		{
			name:     "unused binding is harmless",
			template: "¡Hola {name}!",
			bindings: translations.M{"name": "John", "extra": 10},
			expected: "¡Hola John!",
		},
		{
			name:     "non-string values formatted",
			template: "{count} items",
			bindings: translations.M{"count": 42},
			expected: "42 items",
		},
		{
			name:     "escaped placeholder without binding untouched",
			template: "use {{name}} here",
			bindings: translations.M{"other": "x"},
			expected: "use {{name}} here",
		},
		{
			name:     "repeated placeholder",
			template: "{name} and {name}",
			bindings: translations.M{"name": "Bo"},
			expected: "Bo and Bo",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, translations.Substitute(tt.template, tt.bindings))
		})
	}
}

func TestSubstituteOrderIndependence(t *testing.T) {
	t.Parallel()

	// Map iteration order is randomized; many runs exercise different
	// binding orders over a template mixing escaped and live placeholders.
	template := "{{greeting}} {greeting}, {{name}} {name}"
	bindings := translations.M{"greeting": "Hi", "name": "Bo"}
	expected := "{greeting} Hi, {name} Bo"

	for i := 0; i < 100; i++ {
		require.Equal(t, expected, translations.Substitute(template, bindings))
	}
}
