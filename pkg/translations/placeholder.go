package translations

import (
	"fmt"
	"strings"
)

// M is a map of placeholder names to display values.
type M map[string]any

// marker wraps a protected placeholder during substitution. A non-printable
// control byte cannot appear in valid template content, so the sentinel
// sequence never collides with it.
const marker = "\x01"

// Substitute replaces every {name} placeholder in template with the bound
// value, formatted with fmt. The escaped form {{name}} is left as literal
// {name} text. Placeholders without a binding stay verbatim.
//
// Each binding is applied as a three-phase rewrite so escaped braces are
// never corrupted: {{name}} is parked behind a sentinel sequence, {name} is
// replaced with the value, then the sentinel is unparked as {name}. The
// phases for one key only touch tokens carrying exactly that key's name, so
// binding iteration order does not affect the result.
func Substitute(template string, bindings M) string {
	if len(bindings) == 0 {
		return template
	}

	result := template
	for key, value := range bindings {
		escaped := "{{" + key + "}}"
		placeholder := "{" + key + "}"
		parked := marker + placeholder + marker

		result = strings.ReplaceAll(result, escaped, parked)
		result = strings.ReplaceAll(result, placeholder, fmt.Sprintf("%v", value))
		result = strings.ReplaceAll(result, parked, placeholder)
	}
	return result
}
