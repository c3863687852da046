package language

import "strings"

// parseSubtags splits a raw tag string into Subtags. It is a pure
// grammar check: no registry lookups are performed, so the result is
// exactly the well-formed tier. Casing is preserved as given.
//
// The walk follows the langtag production: primary language, up to
// three extlangs, optional script, optional region, variants,
// extensions, optional private use. Two branches exit early: a tag
// whose first subtag is "x" or "X" is entirely private use, and a tag
// that matches a grandfathered token is captured whole.
func parseSubtags(s string) (Subtags, error) {
	var sub Subtags
	if s == "" {
		return sub, &MalformedTagError{Tag: s, Position: 0}
	}
	if g, ok := grandfatheredTags[lower(s)]; ok {
		sub.Grandfathered = g
		return sub, nil
	}

	toks := strings.Split(s, "-")
	for i, t := range toks {
		if t == "" {
			return Subtags{}, &MalformedTagError{Tag: s, Position: i}
		}
	}

	i := 0
	if isPrivateUsePrefix(toks[0]) {
		return scanPrivateUse(s, toks, 0, sub)
	}

	if !isLanguageSubtag(toks[i]) {
		return Subtags{}, &MalformedTagError{Tag: s, Offending: toks[i], Position: i}
	}
	sub.PrimaryLanguage = toks[i]
	i++

	// Extlangs are only possible after a 2-3 letter primary language.
	if len(sub.PrimaryLanguage) <= 3 {
		for i < len(toks) && isExtlangSubtag(toks[i]) {
			sub.Extlangs = append(sub.Extlangs, toks[i])
			i++
			if len(sub.Extlangs) > 3 {
				return Subtags{}, &TooManyExtlangError{Extlangs: sub.Extlangs}
			}
		}
	}

	if i < len(toks) && isScriptSubtag(toks[i]) {
		sub.Script = toks[i]
		i++
	}

	if i < len(toks) && isRegionSubtag(toks[i]) {
		sub.Region = toks[i]
		i++
	}

	for i < len(toks) && isVariantSubtag(toks[i]) {
		sub.Variants = append(sub.Variants, toks[i])
		i++
	}

	for i < len(toks) && isSingleton(toks[i]) {
		ext := Extension{Singleton: toks[i][0]}
		i++
		for i < len(toks) && isExtensionValueSubtag(toks[i]) {
			ext.Values = append(ext.Values, toks[i])
			i++
		}
		if len(ext.Values) == 0 {
			return Subtags{}, &MalformedTagError{Tag: s, Offending: string(ext.Singleton), Position: i - 1}
		}
		sub.Extensions = append(sub.Extensions, ext)
	}

	if i < len(toks) && isPrivateUsePrefix(toks[i]) {
		return scanPrivateUse(s, toks, i, sub)
	}

	if i < len(toks) {
		return Subtags{}, &MalformedTagError{Tag: s, Offending: toks[i], Position: i}
	}
	return sub, nil
}

// scanPrivateUse consumes the private-use production starting at the
// "x" prefix at toks[i]. It must extend to the end of the tag and
// contain at least one segment.
func scanPrivateUse(s string, toks []string, i int, sub Subtags) (Subtags, error) {
	start := i
	i++
	for ; i < len(toks); i++ {
		if !isPrivateUseSubtag(toks[i]) {
			return Subtags{}, &MalformedTagError{Tag: s, Offending: toks[i], Position: i}
		}
		sub.PrivateUse = append(sub.PrivateUse, toks[i])
	}
	if len(sub.PrivateUse) == 0 {
		return Subtags{}, &MalformedTagError{Tag: s, Offending: toks[start], Position: start}
	}
	return sub, nil
}

// checkSubtags verifies that caller-supplied Subtags obey the grammar,
// so Compose and Parse share one notion of well-formedness. It
// reassembles nothing; each field is checked in place.
func checkSubtags(sub Subtags) error {
	if sub.Grandfathered != "" {
		if _, ok := grandfatheredTags[lower(sub.Grandfathered)]; !ok {
			return &InvalidGrandfatheredError{Tag: sub.Grandfathered}
		}
		structured := sub.PrimaryLanguage != "" || len(sub.Extlangs) > 0 ||
			sub.Script != "" || sub.Region != "" || len(sub.Variants) > 0 ||
			len(sub.Extensions) > 0 || len(sub.PrivateUse) > 0
		if structured {
			return &MalformedTagError{Tag: sub.String(), Offending: sub.Grandfathered}
		}
		return nil
	}
	if sub.PrimaryLanguage == "" {
		if sub.isPrivate() {
			return nil
		}
		return &MissingPrimaryLanguageError{}
	}
	if !isLanguageSubtag(sub.PrimaryLanguage) {
		return &MalformedTagError{Tag: sub.String(), Offending: sub.PrimaryLanguage}
	}
	if len(sub.Extlangs) > 3 {
		return &TooManyExtlangError{Extlangs: sub.Extlangs}
	}
	pos := 1
	for _, e := range sub.Extlangs {
		if !isExtlangSubtag(e) {
			return &MalformedTagError{Tag: sub.String(), Offending: e, Position: pos}
		}
		pos++
	}
	if sub.Script != "" && !isScriptSubtag(sub.Script) {
		return &MalformedTagError{Tag: sub.String(), Offending: sub.Script, Position: pos}
	}
	if sub.Region != "" && !isRegionSubtag(sub.Region) {
		return &MalformedTagError{Tag: sub.String(), Offending: sub.Region, Position: pos}
	}
	for _, v := range sub.Variants {
		if !isVariantSubtag(v) {
			return &MalformedTagError{Tag: sub.String(), Offending: v, Position: pos}
		}
		pos++
	}
	for _, e := range sub.Extensions {
		if !isSingleton(string(e.Singleton)) {
			return &MalformedTagError{Tag: sub.String(), Offending: string(e.Singleton), Position: pos}
		}
		if len(e.Values) == 0 {
			return &MalformedTagError{Tag: sub.String(), Offending: string(e.Singleton), Position: pos}
		}
		pos++
		for _, v := range e.Values {
			if !isExtensionValueSubtag(v) {
				return &MalformedTagError{Tag: sub.String(), Offending: v, Position: pos}
			}
			pos++
		}
	}
	for _, v := range sub.PrivateUse {
		if !isPrivateUseSubtag(v) {
			return &MalformedTagError{Tag: sub.String(), Offending: v, Position: pos}
		}
		pos++
	}
	return nil
}
