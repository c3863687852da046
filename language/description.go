package language

import "strings"

// Description renders a human-readable name for the tag from registry
// descriptions, e.g. "English (Latin, United States of America)".
// Subtags without a registry entry fall back to their raw spelling, so
// the result is always usable even for merely well-formed tags.
func (t Tag) Description() string {
	sub := t.subtags
	if sub.Grandfathered != "" {
		if ent, ok := t.reg.Grandfathered(sub.Grandfathered); ok && len(ent.Descriptions) > 0 {
			return ent.Descriptions[0]
		}
		return sub.Grandfathered
	}
	if sub.isPrivate() {
		return sub.String()
	}

	name := sub.PrimaryLanguage
	if ent, ok := t.reg.PrimaryLanguage(sub.PrimaryLanguage); ok && len(ent.Descriptions) > 0 {
		name = ent.Descriptions[0]
	}

	var quals []string
	for _, e := range sub.Extlangs {
		q := e
		if ent, ok := t.reg.Extlang(e); ok && len(ent.Descriptions) > 0 {
			q = ent.Descriptions[0]
		}
		quals = append(quals, q)
	}
	if sub.Script != "" {
		q := sub.Script
		if ent, ok := t.reg.Script(sub.Script); ok && len(ent.Descriptions) > 0 {
			q = ent.Descriptions[0]
		}
		quals = append(quals, q)
	}
	if sub.Region != "" {
		q := sub.Region
		if ent, ok := t.reg.Region(sub.Region); ok && len(ent.Descriptions) > 0 {
			q = ent.Descriptions[0]
		}
		quals = append(quals, q)
	}
	for _, v := range sub.Variants {
		q := v
		if ent, ok := t.reg.Variant(v); ok && len(ent.Descriptions) > 0 {
			q = ent.Descriptions[0]
		}
		quals = append(quals, q)
	}
	for _, e := range sub.Extensions {
		quals = append(quals, string(e.Singleton)+"-"+strings.Join(e.Values, "-"))
	}
	if len(sub.PrivateUse) > 0 {
		quals = append(quals, "x-"+strings.Join(sub.PrivateUse, "-"))
	}

	if len(quals) == 0 {
		return name
	}
	return name + " (" + strings.Join(quals, ", ") + ")"
}
