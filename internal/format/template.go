// Package format renders a Mapping as text: either the default
// "name:value" listing, or a user-supplied template with "$name"/"${name}"
// placeholders. The template syntax and parser are adapted from the
// teacher's internal/compiler/replace_template.go, repurposed from
// generating Go code that builds a replacement string to directly
// substituting matched group text at run time.
package format

import (
	"strings"
	"unicode"

	"github.com/varspan/varspan/internal/mapping"
)

// DefaultRender renders a Mapping the way mapping.Mapping.String does: a
// space-separated "name:"text"" listing in variable-id order.
func DefaultRender(m *mapping.Mapping) string {
	return m.String()
}

// Render substitutes every "$name" / "${name}" placeholder in tmpl with the
// text bound to that variable on m (empty string if m has no span for it),
// "$$" with a literal dollar sign, and anything else verbatim. The whole
// match is available as "$match".
func Render(tmpl string, m *mapping.Mapping) string {
	var sb strings.Builder
	i := 0
	for i < len(tmpl) {
		if tmpl[i] != '$' {
			sb.WriteByte(tmpl[i])
			i++
			continue
		}
		if i+1 >= len(tmpl) {
			sb.WriteByte('$')
			i++
			continue
		}
		switch next := tmpl[i+1]; {
		case next == '$':
			sb.WriteByte('$')
			i += 2
		case next == '{':
			name, consumed, ok := parseBraced(tmpl[i:])
			if !ok {
				sb.WriteByte('$')
				i++
				continue
			}
			writeValue(&sb, m, name)
			i += consumed
		case isNameStart(rune(next)):
			name, consumed := parseName(tmpl[i:])
			writeValue(&sb, m, name)
			i += consumed
		default:
			sb.WriteByte('$')
			i++
		}
	}
	return sb.String()
}

func writeValue(sb *strings.Builder, m *mapping.Mapping, name string) {
	if v, ok := m.Value(name); ok {
		sb.WriteString(v)
	}
}

func parseBraced(s string) (name string, consumed int, ok bool) {
	end := strings.IndexByte(s, '}')
	if end == -1 {
		return "", 0, false
	}
	content := s[2:end]
	if content == "" {
		return "", 0, false
	}
	return content, end + 1, true
}

func parseName(s string) (name string, consumed int) {
	end := 2
	for end < len(s) && isNameContinue(rune(s[end])) {
		end++
	}
	return s[1:end], end
}

func isNameStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
