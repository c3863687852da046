package language

import (
	"strings"

	"github.com/ErikFortune/bcp47/registry"
)

// validateSubtags escalates well-formed subtags to the Valid tier:
// every non-private subtag must resolve in the registry, at most one
// extlang may be present, and variants and extension singletons must
// be unique.
func validateSubtags(reg *registry.Registry, sub Subtags) error {
	if sub.Grandfathered != "" {
		if _, ok := reg.Grandfathered(sub.Grandfathered); !ok {
			return &InvalidGrandfatheredError{Tag: sub.Grandfathered}
		}
		return nil
	}
	if sub.PrimaryLanguage == "" {
		if sub.isPrivate() {
			return nil
		}
		return &MissingPrimaryLanguageError{}
	}
	if _, ok := reg.PrimaryLanguage(sub.PrimaryLanguage); !ok {
		return &InvalidSubtagError{Kind: KindPrimaryLanguage, Value: sub.PrimaryLanguage}
	}
	if len(sub.Extlangs) > 3 {
		return &TooManyExtlangError{Extlangs: sub.Extlangs}
	}
	if len(sub.Extlangs) > 1 {
		// Multiple extlangs are well-formed but reserved by RFC 5646.
		return &MultipleExtlangError{Extlangs: sub.Extlangs}
	}
	for _, e := range sub.Extlangs {
		if _, ok := reg.Extlang(e); !ok {
			return &InvalidSubtagError{Kind: KindExtlang, Value: e}
		}
	}
	if sub.Script != "" {
		if _, ok := reg.Script(sub.Script); !ok {
			return &InvalidSubtagError{Kind: KindScript, Value: sub.Script}
		}
	}
	if sub.Region != "" {
		if _, ok := reg.Region(sub.Region); !ok {
			return &InvalidSubtagError{Kind: KindRegion, Value: sub.Region}
		}
	}
	seen := make(map[string]bool, len(sub.Variants))
	for _, v := range sub.Variants {
		folded := lower(v)
		if seen[folded] {
			return &DuplicateVariantError{Variant: v}
		}
		seen[folded] = true
		if _, ok := reg.Variant(v); !ok {
			return &InvalidSubtagError{Kind: KindVariant, Value: v}
		}
	}
	var singletons [256]bool
	for _, e := range sub.Extensions {
		s := e.Singleton
		if 'A' <= s && s <= 'Z' {
			s += 'a' - 'A'
		}
		if singletons[s] {
			return &DuplicateExtensionError{Singleton: e.Singleton}
		}
		singletons[s] = true
	}
	return nil
}

// strictlyValidateSubtags enforces registered prefix constraints. It
// assumes the subtags already passed validateSubtags.
func strictlyValidateSubtags(reg *registry.Registry, sub Subtags) error {
	if sub.Grandfathered != "" || sub.isPrivate() {
		return nil
	}
	for _, e := range sub.Extlangs {
		ent, ok := reg.Extlang(e)
		if !ok {
			return &InvalidSubtagError{Kind: KindExtlang, Value: e}
		}
		if len(ent.Prefixes) > 0 && !containsFold(ent.Prefixes, sub.PrimaryLanguage) {
			return &InvalidPrefixError{Kind: KindExtlang, Value: e, Prefixes: ent.Prefixes}
		}
	}
	for i, v := range sub.Variants {
		ent, ok := reg.Variant(v)
		if !ok {
			return &InvalidSubtagError{Kind: KindVariant, Value: v}
		}
		if len(ent.Prefixes) == 0 {
			continue
		}
		preceding := precedingSubtags(sub, i)
		satisfied := false
		for _, p := range ent.Prefixes {
			if hasPrefixSubtags(preceding, strings.Split(p, "-")) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return &InvalidPrefixError{Kind: KindVariant, Value: v, Prefixes: ent.Prefixes}
		}
	}
	return nil
}

// precedingSubtags lists the subtags that precede variant i in tag
// order: primary language, extlangs, script, region and the earlier
// variants.
func precedingSubtags(sub Subtags, i int) []string {
	out := []string{sub.PrimaryLanguage}
	out = append(out, sub.Extlangs...)
	if sub.Script != "" {
		out = append(out, sub.Script)
	}
	if sub.Region != "" {
		out = append(out, sub.Region)
	}
	out = append(out, sub.Variants[:i]...)
	return out
}

// hasPrefixSubtags reports whether prefix is a left-anchored,
// case-insensitive subtag prefix of seq.
func hasPrefixSubtags(seq, prefix []string) bool {
	if len(prefix) > len(seq) {
		return false
	}
	for i, p := range prefix {
		if !equalFold(seq[i], p) {
			return false
		}
	}
	return true
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if equalFold(v, s) {
			return true
		}
	}
	return false
}
