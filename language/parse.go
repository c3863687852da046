package language

import "github.com/ErikFortune/bcp47/registry"

// Parse parses the given BCP 47 string against reg and resolves it per
// the supplied options. By default the tag is resolved to the
// WellFormed tier with canonical casing; WithValidity and
// WithNormalization select other tiers and forms. If parsing or
// resolution fails it returns a TagError describing the offending
// subtag.
func Parse(reg *registry.Registry, s string, opts ...Option) (Tag, error) {
	c, err := newConfig(opts)
	if err != nil {
		return Tag{}, err
	}
	sub, err := parseSubtags(s)
	if err != nil {
		return Tag{}, err
	}
	return resolve(reg, sub, s, c)
}

// Compose builds a Tag from individual subtags rather than a string.
// The subtags are grammar-checked and then resolved exactly as a
// parsed string would be.
func Compose(reg *registry.Registry, sub Subtags, opts ...Option) (Tag, error) {
	c, err := newConfig(opts)
	if err != nil {
		return Tag{}, err
	}
	sub = sub.clone()
	if err := checkSubtags(sub); err != nil {
		return Tag{}, err
	}
	return resolve(reg, sub, sub.String(), c)
}

// MustParse is like Parse, but panics if the given BCP 47 tag cannot
// be parsed. It simplifies safe initialization of Tag values.
func MustParse(reg *registry.Registry, s string, opts ...Option) Tag {
	t, err := Parse(reg, s, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// resolve escalates well-formed subtags to the requested tier and
// applies the requested normalization.
func resolve(reg *registry.Registry, sub Subtags, raw string, c config) (Tag, error) {
	if c.validity >= Valid {
		if err := validateSubtags(reg, sub); err != nil {
			return Tag{}, err
		}
	}
	if c.validity >= StrictlyValid {
		if err := strictlyValidateSubtags(reg, sub); err != nil {
			return Tag{}, err
		}
	}
	switch c.normalization {
	case NormPreferred:
		ps, err := preferredSubtags(reg, sub)
		if err != nil {
			return Tag{}, err
		}
		return Tag{reg, ps, c.validity, ps.String()}, nil
	case NormCanonical:
		cs := canonicalSubtags(sub)
		return Tag{reg, cs, c.validity, cs.String()}, nil
	default:
		return Tag{reg, sub, c.validity, raw}, nil
	}
}
