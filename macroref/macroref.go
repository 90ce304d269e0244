package macroref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
)

// Marker is the character that introduces a macro reference in text. A
// reference is the Marker immediately followed by a macro name, as in
// "#name".
const Marker = "#"

// MacroDef records a single macro: the name it is referenced by and the
// code that is substituted for each reference. The name is held without
// the leading Marker; Add will strip one if it is present.
type MacroDef struct {
	Name string
	Code string
}

// Registry records macro definitions, keyed by name and enumerated in the
// order they were first added.
//
// You should create a new Registry with NewRegistry and then if you want
// macros to be read from files in macro directories then add the macro
// directories before calling Find. You can add any suffixes that should
// be tried when searching for a macro in the macro directories using the
// Suffix option.
//
// You can then populate the Registry with Add or AddMany and pass the
// result of Defs to ResolveMacros to rewrite a piece of text.
type Registry struct {
	defs     map[string]MacroDef
	names    []string
	mDirs    []string
	suffixes []string
}

type OptFunc func(r *Registry) error

// NewRegistry creates a new Registry object.
func NewRegistry(opts ...OptFunc) (*Registry, error) {
	r := &Registry{
		defs:     make(map[string]MacroDef),
		names:    make([]string, 0),
		mDirs:    make([]string, 0),
		suffixes: []string{""},
	}

	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Dirs returns an OptFunc that will add the directory names to the,
// initially empty, set of directories to be searched by Find. Each of the
// passed values must be a directory, an error will be returned if not and
// none of the passed values will be added.
func Dirs(dirs ...string) OptFunc {
	return func(r *Registry) error {
		if len(dirs) == 0 {
			return fmt.Errorf("at least one macros directory must be passed")
		}

		es := filecheck.Provisos{
			Checks:    []check.FileInfo{check.FileInfoIsDir},
			Existence: filecheck.MustExist,
		}
		for _, dir := range dirs {
			err := es.StatusCheck(dir)
			if err != nil {
				return err
			}
		}

		r.mDirs = append(r.mDirs, dirs...)
		return nil
	}
}

// Suffix returns an OptFunc that will add a suffix to the list of strings
// to be tried as suffixes. Any suffix must be complete and include the
// separator (if any). For instance ".sql". The suffixes are tried in the
// order they are added and there is always a first, empty suffix so that
// a macro name will always match a file with the exact same name.
func Suffix(suffix string) OptFunc {
	return func(r *Registry) error {
		r.suffixes = append(r.suffixes, suffix)

		return nil
	}
}

// Add stores the definition under its name, first stripping a single
// leading Marker from the name if one is present. Adding a name that is
// already present replaces the stored definition but keeps the name's
// place in the enumeration order. No validation is performed on either
// the name or the code. It returns the Registry so that calls can be
// chained.
func (r *Registry) Add(def MacroDef) *Registry {
	def.Name = strings.TrimPrefix(def.Name, Marker)

	if _, exists := r.defs[def.Name]; !exists {
		r.names = append(r.names, def.Name)
	}
	r.defs[def.Name] = def

	return r
}

// AddMany applies Add to each of the definitions in turn. A later
// definition with the same name as an earlier one replaces it, just as
// with repeated calls to Add. It returns the Registry so that calls can
// be chained.
func (r *Registry) AddMany(defs ...MacroDef) *Registry {
	for _, def := range defs {
		r.Add(def)
	}

	return r
}

// Get returns the definition stored under the given name. The name is
// looked up exactly as given, no Marker stripping is applied, so the
// caller must pass the stripped name. The second return value reports
// whether any definition was found.
func (r *Registry) Get(name string) (MacroDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// GetFunc returns the first definition, in enumeration order, for which f
// returns true. The second return value reports whether any definition
// was found.
func (r *Registry) GetFunc(f func(MacroDef) bool) (MacroDef, bool) {
	for _, name := range r.names {
		if def := r.defs[name]; f(def) {
			return def, true
		}
	}

	return MacroDef{}, false
}

// Names returns the stored macro names in the order they were first
// added.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)

	return names
}

// Defs returns the stored definitions in the same order as Names returns
// their names.
func (r *Registry) Defs() []MacroDef {
	defs := make([]MacroDef, 0, len(r.names))
	for _, name := range r.names {
		defs = append(defs, r.defs[name])
	}

	return defs
}

// Find searches for the named macro in the Registry. If it is not found
// and there are macro directories to be searched then it will search for
// a matching file name and use the file contents as the macro's code,
// caching the new definition for further use. If no matching macro is
// found an error is returned
func (r *Registry) Find(mName string, loc *location.L) (MacroDef, error) {
	if def, ok := r.defs[mName]; ok {
		return def, nil
	}

	for _, fd := range r.mDirs {
		for _, suffix := range r.suffixes {
			code, err := os.ReadFile(filepath.Join(fd, mName+suffix))
			if err == nil {
				def := MacroDef{Name: mName, Code: string(code)}
				r.Add(def)
				return def, nil
			}
		}
	}

	errStr := fmt.Sprintf("Macro '%s' at %s was not found", mName, loc)
	if len(r.mDirs) == 1 {
		errStr += " in the macro directory: " + r.mDirs[0]
	} else if len(r.mDirs) > 1 {
		errStr += " in any of the macro directories: " +
			english.Join(r.mDirs, ", ", " or ")
	}

	return MacroDef{}, errors.New(errStr)
}
