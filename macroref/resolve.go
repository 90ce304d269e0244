package macroref

import (
	"sort"
	"strings"
)

// matcher recognises macro reference tokens over a fixed set of names.
// The names are tried longest first so a name that is a prefix of another
// known name never shadows the longer one. No check is made on the
// character following a matched name so a name can still match at the
// head of an unrelated longer identifier.
type matcher struct {
	names []string
}

func newMatcher(names []string) *matcher {
	m := &matcher{names: make([]string, len(names))}
	copy(m.names, names)

	sort.SliceStable(m.names, func(i, j int) bool {
		return len(m.names[i]) > len(m.names[j])
	})

	return m
}

// matchAt returns the name referenced at the given position in the text,
// where i is the index of the Marker itself, and whether there was one.
func (m *matcher) matchAt(text string, i int) (string, bool) {
	rest := text[i+len(Marker):]
	for _, name := range m.names {
		if strings.HasPrefix(rest, name) {
			return name, true
		}
	}

	return "", false
}

// tokens returns the distinct reference tokens found in the text, each
// with its leading Marker, in order of first occurrence.
func (m *matcher) tokens(text string) []string {
	var found []string

	seen := map[string]bool{}
	for i := 0; i < len(text); {
		if !strings.HasPrefix(text[i:], Marker) {
			i++
			continue
		}

		name, ok := m.matchAt(text, i)
		if !ok {
			i += len(Marker)
			continue
		}

		token := Marker + name
		if !seen[token] {
			seen[token] = true
			found = append(found, token)
		}
		i += len(token)
	}

	return found
}

// replace rewrites every reference to the named macro with the given
// code. References to the other known names are copied through untouched,
// even where this macro's name forms the head of their token.
func (m *matcher) replace(text, name, code string) string {
	var b strings.Builder

	for i := 0; i < len(text); {
		if !strings.HasPrefix(text[i:], Marker) {
			b.WriteByte(text[i])
			i++
			continue
		}

		matched, ok := m.matchAt(text, i)
		if ok && matched == name {
			b.WriteString(code)
		} else {
			b.WriteString(Marker)
			b.WriteString(matched)
		}
		i += len(Marker) + len(matched)
	}

	return b.String()
}

// HasMacros reports whether the text contains a reference to any of the
// named macros. The names must already have had the leading Marker
// removed, as with the names returned by the Registry's Names method. An
// empty list of names never matches.
func HasMacros(names []string, text string) bool {
	if len(names) == 0 {
		return false
	}

	m := newMatcher(names)
	for i := 0; i < len(text); i++ {
		if strings.HasPrefix(text[i:], Marker) {
			if _, ok := m.matchAt(text, i); ok {
				return true
			}
		}
	}

	return false
}

// ResolveMacros returns a copy of the text with every reference to one of
// the given macros replaced by that macro's code. Each distinct token is
// replaced throughout the text, taking tokens in order of their first
// occurrence; where two definitions share a name the earlier one in defs
// wins. References are resolved in a single pass over the original text
// so a reference appearing only inside substituted code is left as it is.
// Neither the text nor the definitions are changed; if defs is empty the
// text is returned unchanged.
func ResolveMacros(defs []MacroDef, text string) string {
	if len(defs) == 0 {
		return text
	}

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	m := newMatcher(names)

	for _, token := range m.tokens(text) {
		def, ok := findDef(defs, strings.TrimPrefix(token, Marker))
		if !ok {
			continue
		}
		text = m.replace(text, def.Name, def.Code)
	}

	return text
}

// findDef returns the first definition in defs with the given name and
// whether there was one.
func findDef(defs []MacroDef, name string) (MacroDef, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}

	return MacroDef{}, false
}
