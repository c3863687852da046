package language

import "github.com/ErikFortune/bcp47/registry"

// Tag is a BCP 47 language tag resolved against a registry snapshot.
// A Tag records the subtags it was built from, the validity tier it
// was resolved to, and the exact string form it was built from or
// normalized to. Tags are immutable; the To* methods return new Tag
// values.
type Tag struct {
	reg      *registry.Registry
	subtags  Subtags
	validity Validity
	str      string
}

// String returns the tag's string form.
func (t Tag) String() string { return t.str }

// Subtags returns a copy of the tag's parsed subtags.
func (t Tag) Subtags() Subtags { return t.subtags.clone() }

// Validity returns the tier the tag was resolved to.
func (t Tag) Validity() Validity { return t.validity }

// IsGrandfathered reports whether the tag is a grandfathered whole
// tag, validated as a unit rather than by subtag.
func (t Tag) IsGrandfathered() bool { return t.subtags.Grandfathered != "" }

// IsPrivate reports whether the tag consists solely of private use.
func (t Tag) IsPrivate() bool { return t.subtags.isPrivate() }

// IsUndetermined reports whether the primary language is the wildcard
// "und".
func (t Tag) IsUndetermined() bool {
	return equalFold(t.subtags.PrimaryLanguage, "und")
}

// ToCanonical returns the tag with canonical casing applied subtag by
// subtag. No content is rewritten, so canonicalization succeeds at any
// validity tier.
func (t Tag) ToCanonical() (Tag, error) {
	cs := canonicalSubtags(t.subtags)
	return Tag{t.reg, cs, t.validity, cs.String()}, nil
}

// ToValid revalidates the tag at the Valid tier.
func (t Tag) ToValid() (Tag, error) {
	if t.validity >= Valid {
		return t, nil
	}
	if err := validateSubtags(t.reg, t.subtags); err != nil {
		return Tag{}, err
	}
	return Tag{t.reg, t.subtags, Valid, t.str}, nil
}

// ToStrictlyValid revalidates the tag at the StrictlyValid tier.
func (t Tag) ToStrictlyValid() (Tag, error) {
	if t.validity >= StrictlyValid {
		return t, nil
	}
	if err := validateSubtags(t.reg, t.subtags); err != nil {
		return Tag{}, err
	}
	if err := strictlyValidateSubtags(t.reg, t.subtags); err != nil {
		return Tag{}, err
	}
	return Tag{t.reg, t.subtags, StrictlyValid, t.str}, nil
}

// ToPreferred returns the tag in preferred form: canonical casing plus
// grandfathered and redundant tag replacement, deprecated code
// replacement, extlang collapse, variant replacement, and removal of a
// script equal to the language's suppress-script. The tag must be
// valid; the subtags are revalidated here rather than trusting the
// recorded tier.
func (t Tag) ToPreferred() (Tag, error) {
	sub, err := preferredSubtags(t.reg, t.subtags)
	if err != nil {
		return Tag{}, err
	}
	v := t.validity
	if v < Valid {
		v = Valid
	}
	return Tag{t.reg, sub, v, sub.String()}, nil
}
