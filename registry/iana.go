package registry

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadSubtagRegistry reads records in the record-jar format used by the
// IANA language-subtag-registry file and adds them to the builder.
// Records are separated by lines containing only "%%"; each field is a
// "Name: value" line, with continuation lines indented by whitespace.
// Repeatable fields (Description, Prefix, Comments) accumulate.
// Private-use ranges such as "qaa..qtz" are expanded into individual
// entries. Unknown record types and fields are ignored, so a newer
// registry file than this package knows about still loads.
func (b *Builder) ReadSubtagRegistry(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rec := map[string][]string{}
	line := 0
	var lastField string

	flush := func() error {
		defer func() {
			rec = map[string][]string{}
			lastField = ""
		}()
		if len(rec) == 0 {
			return nil
		}
		return b.addRegistryRecord(rec)
	}

	for sc.Scan() {
		line++
		text := sc.Text()
		switch {
		case strings.TrimSpace(text) == "%%":
			if err := flush(); err != nil {
				return fmt.Errorf("registry: record ending at line %d: %w", line, err)
			}
		case len(text) > 0 && (text[0] == ' ' || text[0] == '\t'):
			if lastField == "" {
				return fmt.Errorf("registry: line %d: continuation without a field", line)
			}
			v := rec[lastField]
			v[len(v)-1] += " " + strings.TrimSpace(text)
		default:
			name, value, ok := strings.Cut(text, ":")
			if !ok {
				return fmt.Errorf("registry: line %d: not a field: %q", line, text)
			}
			name = strings.TrimSpace(name)
			rec[name] = append(rec[name], strings.TrimSpace(value))
			lastField = name
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return fmt.Errorf("registry: final record: %w", err)
	}
	return nil
}

func (b *Builder) addRegistryRecord(rec map[string][]string) error {
	first := func(name string) string {
		if v := rec[name]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	typ := first("Type")
	if typ == "" {
		// The file header record (File-Date) has no Type.
		return nil
	}

	subtag := first("Subtag")
	if subtag == "" {
		subtag = first("Tag")
	}
	if subtag == "" {
		return fmt.Errorf("%s record without Subtag or Tag", typ)
	}

	subtags := []string{subtag}
	if start, end, ok := strings.Cut(subtag, ".."); ok {
		var err error
		if subtags, err = expandRange(start, end); err != nil {
			return fmt.Errorf("bad range %q: %w", subtag, err)
		}
	}

	deprecated := first("Deprecated") != ""
	preferred := first("Preferred-Value")
	private := first("Scope") == "private-use"

	for _, s := range subtags {
		switch typ {
		case "language":
			b.AddLanguage(Language{
				Subtag:         s,
				Descriptions:   rec["Description"],
				Macrolanguage:  first("Macrolanguage"),
				Deprecated:     deprecated,
				Preferred:      preferred,
				SuppressScript: first("Suppress-Script"),
				PrivateUse:     private,
			})
		case "extlang":
			b.AddExtlang(Language{
				Subtag:        s,
				Descriptions:  rec["Description"],
				Macrolanguage: first("Macrolanguage"),
				Deprecated:    deprecated,
				Preferred:     preferred,
				Prefixes:      rec["Prefix"],
			})
		case "script":
			b.AddScript(Script{
				Subtag:       s,
				Descriptions: rec["Description"],
				Deprecated:   deprecated,
				Preferred:    preferred,
				PrivateUse:   private,
			})
		case "region":
			b.AddRegion(Region{
				Subtag:       s,
				Descriptions: rec["Description"],
				Deprecated:   deprecated,
				Preferred:    preferred,
				PrivateUse:   private,
			})
		case "variant":
			b.AddVariant(Variant{
				Subtag:       s,
				Descriptions: rec["Description"],
				Deprecated:   deprecated,
				Preferred:    preferred,
				Prefixes:     rec["Prefix"],
			})
		case "grandfathered":
			b.AddGrandfathered(Tag{
				Tag:          s,
				Descriptions: rec["Description"],
				Deprecated:   deprecated,
				Preferred:    preferred,
			})
		case "redundant":
			b.AddRedundant(Tag{
				Tag:          s,
				Descriptions: rec["Description"],
				Deprecated:   deprecated,
				Preferred:    preferred,
			})
		}
	}
	return nil
}
