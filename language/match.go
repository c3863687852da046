package language

import (
	"fmt"
	"sort"

	"github.com/ErikFortune/bcp47/registry"
)

// Score is the ordinal outcome of comparing two tags. Values are
// ordered from worst to best match, so scores can be compared with the
// usual operators when ranking candidate locales.
type Score int

const (
	// None: the primary language, extlang or effective script differ.
	None Score = iota
	// Variant: only extensions or private use differ.
	Variant
	// Region: only the region/variant axis differs without a direct
	// region comparison, e.g. a variant present on one side only.
	Region
	// NeutralRegion: one side omits the region or uses the global
	// region 001 while the other specifies one.
	NeutralRegion
	// Sibling: the regions differ with no closer relationship.
	Sibling
	// MacroRegion: one region is a UN M49 macro region containing the
	// other's area.
	MacroRegion
	// PreferredRegion: one side's region is the language's registered
	// default region.
	PreferredRegion
	// Affinity: both regions fall in the language's regional-affinity
	// group, neither being the group's own preferred region.
	Affinity
	// PreferredAffinity: both regions fall in the affinity group and
	// one of them is the group's preferred region.
	PreferredAffinity
	// Undetermined: either side's primary language is the wildcard
	// "und".
	Undetermined
	// Exact: the tags are equivalent.
	Exact
)

var scoreName = []string{
	"none",
	"variant",
	"region",
	"neutralRegion",
	"sibling",
	"macroRegion",
	"preferredRegion",
	"affinity",
	"preferredAffinity",
	"undetermined",
	"exact",
}

func (s Score) String() string {
	if 0 <= int(s) && int(s) < len(scoreName) {
		return scoreName[s]
	}
	return fmt.Sprintf("Score(%d)", int(s))
}

// Similarity scores two tags against each other for locale matching.
// Each argument may be a string or a Tag; strings are resolved at the
// Valid tier first. With WithNormalization(NormPreferred), both sides
// are rewritten to preferred form before comparison, so deprecated and
// grandfathered equivalences count as exact; otherwise only spelling
// and case-folding equivalence counts. Similarity is total over
// resolvable tags: every pair yields exactly one Score, and an
// unresolvable argument yields an error, never a silent None.
func Similarity(reg *registry.Registry, a, b any, opts ...Option) (Score, error) {
	c, err := newConfig(opts)
	if err != nil {
		return None, err
	}
	ta, err := similarityOperand(reg, a, c)
	if err != nil {
		return None, err
	}
	tb, err := similarityOperand(reg, b, c)
	if err != nil {
		return None, err
	}
	return similarity(reg, ta.subtags, tb.subtags), nil
}

func similarityOperand(reg *registry.Registry, v any, c config) (Tag, error) {
	switch x := v.(type) {
	case Tag:
		if x.reg == nil {
			return Tag{}, fmt.Errorf("language: cannot compare the zero Tag")
		}
		if c.normalization == NormPreferred {
			return x.ToPreferred()
		}
		t, err := x.ToValid()
		if err != nil {
			return Tag{}, err
		}
		return t.ToCanonical()
	case string:
		n := NormCanonical
		if c.normalization == NormPreferred {
			n = NormPreferred
		}
		return Parse(reg, x, WithValidity(Valid), WithNormalization(n))
	default:
		return Tag{}, fmt.Errorf("language: cannot compare %T, want string or Tag", v)
	}
}

// similarity implements the fixed evaluation order: language, extlang
// and effective script must match exactly or the result is None (with
// "und" on either side short-circuiting to Undetermined); then the
// region axis is settled, and only when the regions agree do variants
// and extensions refine the result further. A variant mismatch never
// overrides a strictly worse region relationship.
func similarity(reg *registry.Registry, a, b Subtags) Score {
	// Grandfathered and purely private tags carry no structure to
	// compare; only whole-tag equivalence counts.
	if a.Grandfathered != "" || b.Grandfathered != "" || a.isPrivate() || b.isPrivate() {
		if equalFold(a.String(), b.String()) {
			return Exact
		}
		return None
	}

	la, lb := lower(a.PrimaryLanguage), lower(b.PrimaryLanguage)
	if la == "und" || lb == "und" {
		return Undetermined
	}
	if la != lb {
		return None
	}
	if !equalSubtagLists(a.Extlangs, b.Extlangs) {
		return None
	}
	if !equalFold(effectiveScript(reg, a), effectiveScript(reg, b)) {
		return None
	}

	ra, rb := upper(a.Region), upper(b.Region)
	switch {
	case ra == rb:
		// Regions agree (or are both absent); fall through to the
		// variant and extension axes.
	case ra == "" || rb == "" || ra == "001" || rb == "001":
		return NeutralRegion
	default:
		return regionRelation(reg, la, ra, rb)
	}

	if !equalVariantSets(a.Variants, b.Variants) {
		return Region
	}
	if !equalExtensions(a, b) {
		return Variant
	}
	return Exact
}

// regionRelation ranks two distinct, concrete regions for a language:
// affinity group membership first, then the language's default region,
// then macro-region containment, and finally plain siblinghood.
func regionRelation(reg *registry.Registry, lang, ra, rb string) Score {
	ent, _ := reg.PrimaryLanguage(lang)
	if ent != nil && ent.Affinity != "" {
		if g, ok := reg.Affinity(ent.Affinity); ok &&
			containsFold(g.Regions, ra) && containsFold(g.Regions, rb) {
			if equalFold(g.Preferred, ra) || equalFold(g.Preferred, rb) {
				return PreferredAffinity
			}
			return Affinity
		}
	}
	if ent != nil && ent.DefaultRegion != "" &&
		(equalFold(ent.DefaultRegion, ra) || equalFold(ent.DefaultRegion, rb)) {
		return PreferredRegion
	}
	if reg.RegionContains(ra, rb) || reg.RegionContains(rb, ra) {
		return MacroRegion
	}
	return Sibling
}

// effectiveScript is the explicit script, or the primary language's
// registered suppress-script when none is given.
func effectiveScript(reg *registry.Registry, sub Subtags) string {
	if sub.Script != "" {
		return title(sub.Script)
	}
	if ent, ok := reg.PrimaryLanguage(sub.PrimaryLanguage); ok {
		return title(ent.SuppressScript)
	}
	return ""
}

func equalSubtagLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalVariantSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := foldedSorted(a)
	bs := foldedSorted(b)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func foldedSorted(list []string) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = lower(v)
	}
	sort.Strings(out)
	return out
}

func equalExtensions(a, b Subtags) bool {
	if len(a.Extensions) != len(b.Extensions) || !equalSubtagLists(a.PrivateUse, b.PrivateUse) {
		return false
	}
	ae := sortedExtensions(a.Extensions)
	be := sortedExtensions(b.Extensions)
	for i := range ae {
		sa, sb := ae[i].Singleton, be[i].Singleton
		if 'A' <= sa && sa <= 'Z' {
			sa += 'a' - 'A'
		}
		if 'A' <= sb && sb <= 'Z' {
			sb += 'a' - 'A'
		}
		if sa != sb || !equalSubtagLists(ae[i].Values, be[i].Values) {
			return false
		}
	}
	return true
}

func sortedExtensions(exts []Extension) []Extension {
	out := append([]Extension(nil), exts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Singleton|0x20 < out[j].Singleton|0x20 })
	return out
}
