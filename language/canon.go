package language

import "github.com/ErikFortune/bcp47/registry"

// canonicalSubtags applies canonical casing subtag by subtag: lower
// for language, extlang, variant, extension and private-use subtags,
// title for scripts, upper for regions. Content is never rewritten.
func canonicalSubtags(sub Subtags) Subtags {
	c := sub.clone()
	if c.Grandfathered != "" {
		c.Grandfathered = grandfatheredTags[lower(c.Grandfathered)]
		return c
	}
	c.PrimaryLanguage = lower(c.PrimaryLanguage)
	for i, e := range c.Extlangs {
		c.Extlangs[i] = lower(e)
	}
	c.Script = title(c.Script)
	c.Region = upper(c.Region)
	for i, v := range c.Variants {
		c.Variants[i] = lower(v)
	}
	for i, e := range c.Extensions {
		if 'A' <= e.Singleton && e.Singleton <= 'Z' {
			c.Extensions[i].Singleton = e.Singleton + 'a' - 'A'
		}
		for j, v := range e.Values {
			c.Extensions[i].Values[j] = lower(v)
		}
	}
	for i, v := range c.PrivateUse {
		c.PrivateUse[i] = lower(v)
	}
	return c
}

// preferredSubtags resolves subtags to preferred form. The rewrites
// apply in a fixed order: whole-tag grandfathered or redundant
// replacement, deprecated primary-language replacement, extlang
// collapse, deprecated region replacement, variant replacement, and
// finally suppress-script removal. Validity is re-established here
// rather than trusting the caller; an unregistered subtag anywhere
// fails with an InvalidSubtagError.
func preferredSubtags(reg *registry.Registry, sub Subtags) (Subtags, error) {
	sub = canonicalSubtags(sub)
	if err := validateSubtags(reg, sub); err != nil {
		return Subtags{}, err
	}

	if sub.Grandfathered != "" {
		ent, ok := reg.Grandfathered(sub.Grandfathered)
		if !ok {
			return Subtags{}, &InvalidGrandfatheredError{Tag: sub.Grandfathered}
		}
		if ent.Preferred == "" {
			// e.g. i-default and i-mingo have no modern equivalent.
			return sub, nil
		}
		repl, err := replacementSubtags(reg, ent.Preferred)
		if err != nil {
			return Subtags{}, err
		}
		sub = repl
	} else if ent, ok := reg.Redundant(sub.String()); ok && ent.Preferred != "" {
		repl, err := replacementSubtags(reg, ent.Preferred)
		if err != nil {
			return Subtags{}, err
		}
		sub = repl
	}
	if sub.isPrivate() || sub.Grandfathered != "" {
		return sub, nil
	}

	if sub.PrimaryLanguage != "" {
		ent, ok := reg.PrimaryLanguage(sub.PrimaryLanguage)
		if !ok {
			return Subtags{}, &InvalidSubtagError{Kind: KindPrimaryLanguage, Value: sub.PrimaryLanguage}
		}
		if ent.Deprecated && ent.Preferred != "" {
			sub.PrimaryLanguage = lower(ent.Preferred)
		}
	}

	if len(sub.Extlangs) == 1 {
		ent, ok := reg.Extlang(sub.Extlangs[0])
		if !ok {
			return Subtags{}, &InvalidSubtagError{Kind: KindExtlang, Value: sub.Extlangs[0]}
		}
		if ent.Preferred != "" {
			// The extlang's own code subsumes the macrolanguage prefix:
			// zh-cmn collapses to cmn, with the rest of the tag intact.
			sub.PrimaryLanguage = lower(ent.Preferred)
			sub.Extlangs = nil
		}
	}

	if sub.Region != "" {
		ent, ok := reg.Region(sub.Region)
		if !ok {
			return Subtags{}, &InvalidSubtagError{Kind: KindRegion, Value: sub.Region}
		}
		if ent.Deprecated && ent.Preferred != "" {
			sub.Region = upper(ent.Preferred)
		}
	}

	for i, v := range sub.Variants {
		ent, ok := reg.Variant(v)
		if !ok {
			return Subtags{}, &InvalidSubtagError{Kind: KindVariant, Value: v}
		}
		if ent.Deprecated && ent.Preferred != "" {
			sub.Variants[i] = lower(ent.Preferred)
		}
	}

	if sub.Script != "" {
		if ent, ok := reg.PrimaryLanguage(sub.PrimaryLanguage); ok &&
			ent.SuppressScript != "" && equalFold(ent.SuppressScript, sub.Script) {
			sub.Script = ""
		}
	}
	return sub, nil
}

// replacementSubtags parses a preferred-tag replacement from the
// registry and validates it, so a bad registry mapping surfaces as an
// error instead of an invalid result.
func replacementSubtags(reg *registry.Registry, tag string) (Subtags, error) {
	repl, err := parseSubtags(tag)
	if err != nil {
		return Subtags{}, err
	}
	repl = canonicalSubtags(repl)
	if err := validateSubtags(reg, repl); err != nil {
		return Subtags{}, err
	}
	return repl, nil
}
