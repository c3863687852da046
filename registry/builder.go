package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Builder accumulates registry records and produces an immutable
// Registry. Records may be added programmatically through the Add
// methods or in bulk through ReadSubtagRegistry and ReadM49. Adding a
// record with a subtag that was already added replaces the earlier
// record.
type Builder struct {
	languages     map[string]*Language
	extlangs      map[string]*Language
	scripts       map[string]*Script
	regions       map[string]*Region
	variants      map[string]*Variant
	grandfathered map[string]*Tag
	redundant     map[string]*Tag
	affinities    map[string]*AffinityGroup
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		languages:     map[string]*Language{},
		extlangs:      map[string]*Language{},
		scripts:       map[string]*Script{},
		regions:       map[string]*Region{},
		variants:      map[string]*Variant{},
		grandfathered: map[string]*Tag{},
		redundant:     map[string]*Tag{},
		affinities:    map[string]*AffinityGroup{},
	}
}

// AddLanguage records a primary-language subtag.
func (b *Builder) AddLanguage(e Language) *Builder {
	e.Subtag = strings.ToLower(e.Subtag)
	b.languages[e.Subtag] = &e
	return b
}

// AddExtlang records an extended-language subtag.
func (b *Builder) AddExtlang(e Language) *Builder {
	e.Subtag = strings.ToLower(e.Subtag)
	b.extlangs[e.Subtag] = &e
	return b
}

// AddScript records a script subtag.
func (b *Builder) AddScript(e Script) *Builder {
	e.Subtag = titlecase(e.Subtag)
	b.scripts[strings.ToLower(e.Subtag)] = &e
	return b
}

// AddRegion records a region subtag.
func (b *Builder) AddRegion(e Region) *Builder {
	e.Subtag = strings.ToUpper(e.Subtag)
	b.regions[strings.ToLower(e.Subtag)] = &e
	return b
}

// AddVariant records a variant subtag.
func (b *Builder) AddVariant(e Variant) *Builder {
	e.Subtag = strings.ToLower(e.Subtag)
	b.variants[e.Subtag] = &e
	return b
}

// AddGrandfathered records a grandfathered whole tag.
func (b *Builder) AddGrandfathered(e Tag) *Builder {
	b.grandfathered[strings.ToLower(e.Tag)] = &e
	return b
}

// AddRedundant records a redundant whole tag.
func (b *Builder) AddRedundant(e Tag) *Builder {
	b.redundant[strings.ToLower(e.Tag)] = &e
	return b
}

// AddAffinity records a regional-affinity group.
func (b *Builder) AddAffinity(e AffinityGroup) *Builder {
	b.affinities[strings.ToLower(e.Name)] = &e
	return b
}

// Build validates cross-references between the accumulated records and
// returns the immutable Registry. It fails if a language names an
// affinity group that was never added, or if an affinity group's
// preferred region is not one of its members; such a registry could
// never answer similarity queries coherently.
func (b *Builder) Build() (*Registry, error) {
	for _, l := range b.languages {
		if l.Affinity == "" {
			continue
		}
		g, ok := b.affinities[strings.ToLower(l.Affinity)]
		if !ok {
			return nil, fmt.Errorf("registry: language %q names unknown affinity group %q", l.Subtag, l.Affinity)
		}
		found := false
		for _, reg := range g.Regions {
			if strings.EqualFold(reg, g.Preferred) {
				found = true
				break
			}
		}
		if g.Preferred != "" && !found {
			return nil, fmt.Errorf("registry: affinity group %q prefers %q, which is not a member", g.Name, g.Preferred)
		}
	}
	return &Registry{
		languages:     b.languages,
		extlangs:      b.extlangs,
		scripts:       b.scripts,
		regions:       b.regions,
		variants:      b.variants,
		grandfathered: b.grandfathered,
		redundant:     b.redundant,
		affinities:    b.affinities,
	}, nil
}

// MustBuild is like Build but panics on error. It simplifies
// initialization of registries built from trusted data.
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

var errBadRange = errors.New("registry: malformed subtag range")

// expandRange expands an inclusive registry range such as "qaa..qzz"
// into its member subtags. Both ends must have the same length and
// consist of ASCII letters or of ASCII digits.
func expandRange(start, end string) ([]string, error) {
	if len(start) == 0 || len(start) != len(end) {
		return nil, errBadRange
	}
	lo := strings.ToLower(start)
	hi := strings.ToLower(end)
	if lo > hi {
		return nil, errBadRange
	}
	var out []string
	cur := []byte(lo)
	for {
		out = append(out, string(cur))
		if string(cur) == hi {
			return out, nil
		}
		// Increment the rightmost position, carrying leftward.
		i := len(cur) - 1
		for ; i >= 0; i-- {
			switch {
			case cur[i] >= 'a' && cur[i] < 'z', cur[i] >= '0' && cur[i] < '9':
				cur[i]++
			case cur[i] == 'z':
				cur[i] = 'a'
				continue
			case cur[i] == '9':
				cur[i] = '0'
				continue
			default:
				return nil, errBadRange
			}
			break
		}
		if i < 0 {
			return nil, errBadRange // wrapped past the end without reaching hi
		}
		if len(out) > 1<<16 {
			return nil, errBadRange
		}
	}
}

func titlecase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
