package macroref_test

import (
	"testing"

	"github.com/nickwells/macroref.mod/macroref"
)

func TestHasMacros(t *testing.T) {
	testCases := []struct {
		name  string
		names []string
		text  string
		want  bool
	}{
		{
			name:  "simple reference",
			names: []string{"foo"},
			text:  "uses #foo",
			want:  true,
		},
		{
			name:  "no reference",
			names: []string{"foo"},
			text:  "no macro here",
			want:  false,
		},
		{
			name:  "name without marker",
			names: []string{"foo"},
			text:  "foo on its own",
			want:  false,
		},
		{
			name:  "no names",
			names: []string{},
			text:  "even with a #token present",
			want:  false,
		},
		{
			name:  "head of a longer identifier",
			names: []string{"foo"},
			text:  "see #foobar",
			want:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := macroref.HasMacros(tc.names, tc.text)
			if got != tc.want {
				t.Errorf("HasMacros(%v, %q) = %v, want %v",
					tc.names, tc.text, got, tc.want)
			}
		})
	}
}

func TestResolveMacros(t *testing.T) {
	fooDef := []macroref.MacroDef{{Name: "foo", Code: "BAR"}}

	testCases := []struct {
		name string
		defs []macroref.MacroDef
		text string
		want string
	}{
		{
			name: "no definitions",
			defs: nil,
			text: "anything #x",
			want: "anything #x",
		},
		{
			name: "no references",
			defs: fooDef,
			text: "no refs here",
			want: "no refs here",
		},
		{
			name: "single reference",
			defs: fooDef,
			text: "call #foo now",
			want: "call BAR now",
		},
		{
			name: "repeated reference",
			defs: fooDef,
			text: "#foo and #foo again",
			want: "BAR and BAR again",
		},
		{
			name: "several macros",
			defs: []macroref.MacroDef{
				{Name: "a", Code: "1"},
				{Name: "b", Code: "2"},
			},
			text: "#a+#b",
			want: "1+2",
		},
		{
			name: "duplicate names - first wins",
			defs: []macroref.MacroDef{
				{Name: "a", Code: "1"},
				{Name: "a", Code: "2"},
			},
			text: "#a",
			want: "1",
		},
		{
			name: "one name is a prefix of another - longest wins",
			defs: []macroref.MacroDef{
				{Name: "do", Code: "D"},
				{Name: "dot", Code: "T"},
			},
			text: "#dot #do",
			want: "T D",
		},
		{
			name: "name at the head of a longer identifier",
			defs: fooDef,
			text: "see #foobar",
			want: "see BARbar",
		},
		{
			name: "bare marker and unknown name untouched",
			defs: fooDef,
			text: "# and #x stay",
			want: "# and #x stay",
		},
		{
			name: "no recursive expansion",
			defs: []macroref.MacroDef{
				{Name: "a", Code: "#b"},
				{Name: "b", Code: "2"},
			},
			text: "#a",
			want: "#b",
		},
		{
			name: "code may contain the macro's own token",
			defs: []macroref.MacroDef{{Name: "a", Code: "<#a>"}},
			text: "#a",
			want: "<#a>",
		},
		{
			name: "empty name matches a bare marker",
			defs: []macroref.MacroDef{{Name: "", Code: "E"}},
			text: "a # b",
			want: "a E b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := macroref.ResolveMacros(tc.defs, tc.text)
			if got != tc.want {
				t.Errorf("ResolveMacros(..., %q) = %q, want %q",
					tc.text, got, tc.want)
			}
		})
	}
}
