package language

import "strings"

// Subtags holds the parsed components of a BCP 47 language tag. A tag
// is either grandfathered, in which case Grandfathered holds the whole
// tag and every other field is empty, or structured, in which case
// Grandfathered is empty. The zero value with a non-empty PrivateUse
// is a purely private tag ("x-...").
type Subtags struct {
	PrimaryLanguage string
	Extlangs        []string
	Script          string
	Region          string
	Variants        []string
	Extensions      []Extension
	PrivateUse      []string
	Grandfathered   string
}

// Extension is one BCP 47 extension: a single-character singleton and
// its value subtags, in order.
type Extension struct {
	Singleton byte
	Values    []string
}

// String assembles the subtags into tag form.
func (s Subtags) String() string {
	if s.Grandfathered != "" {
		return s.Grandfathered
	}
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte('-')
		}
	}
	if s.PrimaryLanguage != "" {
		b.WriteString(s.PrimaryLanguage)
	}
	for _, e := range s.Extlangs {
		sep()
		b.WriteString(e)
	}
	if s.Script != "" {
		sep()
		b.WriteString(s.Script)
	}
	if s.Region != "" {
		sep()
		b.WriteString(s.Region)
	}
	for _, v := range s.Variants {
		sep()
		b.WriteString(v)
	}
	for _, e := range s.Extensions {
		sep()
		b.WriteByte(e.Singleton)
		for _, v := range e.Values {
			b.WriteByte('-')
			b.WriteString(v)
		}
	}
	if len(s.PrivateUse) > 0 {
		sep()
		b.WriteByte('x')
		for _, v := range s.PrivateUse {
			b.WriteByte('-')
			b.WriteString(v)
		}
	}
	return b.String()
}

// clone returns a deep copy, so that Tags handed out by this package
// never share slices with caller-owned Subtags values.
func (s Subtags) clone() Subtags {
	c := s
	if s.Extlangs != nil {
		c.Extlangs = append([]string(nil), s.Extlangs...)
	}
	if s.Variants != nil {
		c.Variants = append([]string(nil), s.Variants...)
	}
	if s.PrivateUse != nil {
		c.PrivateUse = append([]string(nil), s.PrivateUse...)
	}
	if s.Extensions != nil {
		c.Extensions = make([]Extension, len(s.Extensions))
		for i, e := range s.Extensions {
			c.Extensions[i] = Extension{e.Singleton, append([]string(nil), e.Values...)}
		}
	}
	return c
}

// isPrivate reports whether the subtags form a purely private tag.
func (s Subtags) isPrivate() bool {
	return s.PrimaryLanguage == "" && s.Grandfathered == "" &&
		len(s.Extlangs) == 0 && s.Script == "" && s.Region == "" &&
		len(s.Variants) == 0 && len(s.Extensions) == 0 &&
		len(s.PrivateUse) > 0
}

// grandfatheredTags enumerates the grandfathered production of the
// BCP 47 grammar with canonical casing. The set is closed by RFC 5646;
// recognizing it is a matter of grammar, not of registry content.
var grandfatheredTags = map[string]string{
	"art-lojban":  "art-lojban",
	"cel-gaulish": "cel-gaulish",
	"en-gb-oed":   "en-GB-oed",
	"i-ami":       "i-ami",
	"i-bnn":       "i-bnn",
	"i-default":   "i-default",
	"i-enochian":  "i-enochian",
	"i-hak":       "i-hak",
	"i-klingon":   "i-klingon",
	"i-lux":       "i-lux",
	"i-mingo":     "i-mingo",
	"i-navajo":    "i-navajo",
	"i-pwn":       "i-pwn",
	"i-tao":       "i-tao",
	"i-tay":       "i-tay",
	"i-tsu":       "i-tsu",
	"no-bok":      "no-bok",
	"no-nyn":      "no-nyn",
	"sgn-be-fr":   "sgn-BE-FR",
	"sgn-be-nl":   "sgn-BE-NL",
	"sgn-ch-de":   "sgn-CH-DE",
	"zh-guoyu":    "zh-guoyu",
	"zh-hakka":    "zh-hakka",
	"zh-min":      "zh-min",
	"zh-min-nan":  "zh-min-nan",
	"zh-xiang":    "zh-xiang",
}
