// Package registry provides the read-only subtag registry consumed by
// the language package. A Registry is an immutable snapshot of the
// IANA language-subtag-registry augmented with UN M49 region
// containment data. It is built once, typically from the registry
// files themselves or from the embedded default snapshot, and then
// shared freely between goroutines.
//
// The Registry performs no validation of tag structure. It answers
// existence and metadata questions about individual subtags and whole
// grandfathered or redundant tags, always folding case before lookup.
package registry

import "strings"

// Language describes a registered primary-language or extended-language
// subtag.
type Language struct {
	Subtag         string   // canonical (lowercase) spelling
	Descriptions   []string // human-readable names, most common first
	Macrolanguage  string   // enclosing macrolanguage, if any
	Deprecated     bool
	Preferred      string // replacement code: deprecation target, or an extlang's preferred value
	SuppressScript string // script that should be omitted with this language
	Prefixes       []string // valid primary-language prefixes (extlangs only)
	DefaultRegion  string   // region most commonly associated with the language
	Affinity       string   // name of the regional-affinity group, if any
	PrivateUse     bool
}

// Script describes a registered script subtag.
type Script struct {
	Subtag       string // canonical (titlecase) spelling
	Descriptions []string
	Deprecated   bool
	Preferred    string
	PrivateUse   bool
}

// Region describes a registered region subtag. M49Parent links a
// country or area to its enclosing UN M49 region; macro regions link
// upward in the same way, terminating at the world region 001.
type Region struct {
	Subtag       string // canonical (uppercase) spelling
	Descriptions []string
	Deprecated   bool
	Preferred    string
	M49Parent    string
	Macro        bool // a UN M49 grouping rather than a country or area
	PrivateUse   bool
}

// Variant describes a registered variant subtag. Prefixes holds the
// registered prefix tags, e.g. "sl-rozaj" for the variant "biske".
type Variant struct {
	Subtag       string // canonical (lowercase) spelling
	Descriptions []string
	Deprecated   bool
	Preferred    string
	Prefixes     []string
}

// Tag describes a registered grandfathered or redundant whole tag.
type Tag struct {
	Tag          string // canonical spelling of the whole tag
	Descriptions []string
	Deprecated   bool
	Preferred    string // preferred whole-tag replacement, if any
}

// AffinityGroup names a set of regions that share a language community,
// together with the group's own preferred region. Languages opt into a
// group through their Affinity field.
type AffinityGroup struct {
	Name      string
	Preferred string
	Regions   []string
}

// Registry is an immutable collection of subtag records. All lookup
// keys are folded to lower case, so no entry is ever missed due to
// casing. The zero value is an empty registry.
type Registry struct {
	languages     map[string]*Language
	extlangs      map[string]*Language
	scripts       map[string]*Script
	regions       map[string]*Region
	variants      map[string]*Variant
	grandfathered map[string]*Tag
	redundant     map[string]*Tag
	affinities    map[string]*AffinityGroup
}

// PrimaryLanguage returns the entry for a primary-language subtag.
func (r *Registry) PrimaryLanguage(code string) (*Language, bool) {
	e, ok := r.languages[strings.ToLower(code)]
	return e, ok
}

// Extlang returns the entry for an extended-language subtag.
func (r *Registry) Extlang(code string) (*Language, bool) {
	e, ok := r.extlangs[strings.ToLower(code)]
	return e, ok
}

// Script returns the entry for a script subtag.
func (r *Registry) Script(code string) (*Script, bool) {
	e, ok := r.scripts[strings.ToLower(code)]
	return e, ok
}

// Region returns the entry for a region subtag.
func (r *Registry) Region(code string) (*Region, bool) {
	e, ok := r.regions[strings.ToLower(code)]
	return e, ok
}

// Variant returns the entry for a variant subtag.
func (r *Registry) Variant(code string) (*Variant, bool) {
	e, ok := r.variants[strings.ToLower(code)]
	return e, ok
}

// Grandfathered returns the entry for a grandfathered whole tag.
func (r *Registry) Grandfathered(tag string) (*Tag, bool) {
	e, ok := r.grandfathered[strings.ToLower(tag)]
	return e, ok
}

// Redundant returns the entry for a redundant whole tag.
func (r *Registry) Redundant(tag string) (*Tag, bool) {
	e, ok := r.redundant[strings.ToLower(tag)]
	return e, ok
}

// Affinity returns a regional-affinity group by name.
func (r *Registry) Affinity(name string) (*AffinityGroup, bool) {
	e, ok := r.affinities[strings.ToLower(name)]
	return e, ok
}

// RegionContains reports whether macro transitively contains area in
// the UN M49 containment graph. A region does not contain itself.
func (r *Registry) RegionContains(macro, area string) bool {
	macro = strings.ToLower(macro)
	area = strings.ToLower(area)
	if macro == area {
		return false
	}
	seen := 0
	for cur := area; cur != ""; {
		e, ok := r.regions[cur]
		if !ok || e.M49Parent == "" {
			return false
		}
		parent := strings.ToLower(e.M49Parent)
		if parent == macro {
			return true
		}
		cur = parent
		// The containment graph is shallow; a long walk means a cycle
		// in caller-supplied data.
		if seen++; seen > 16 {
			return false
		}
	}
	return false
}
