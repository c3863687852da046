package registry

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadM49 reads the UN M49 "standard country or area codes" CSV and
// threads its containment hierarchy into the region table: every
// country or area is linked to its intermediate region, sub-region,
// region and finally the world code 001. Region entries already added
// from the subtag registry keep their metadata and only gain the M49
// links; rows for areas the registry does not know introduce new
// entries. Both comma- and semicolon-delimited exports are accepted.
func (b *Builder) ReadM49(r io.Reader) error {
	br := bufio.NewReader(r)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF {
		return err
	}
	delim := byte(',')
	if i := bytes.IndexByte(head, '\n'); i > 0 {
		line := string(head[:i])
		if strings.Count(line, ";") > strings.Count(line, ",") {
			delim = ';'
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = rune(delim)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("registry: M49 header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	for _, required := range []string{"region code", "sub-region code", "iso-alpha2 code"} {
		if _, ok := col[required]; !ok {
			return fmt.Errorf("registry: M49 file is missing the %q column", required)
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("registry: M49 row: %w", err)
		}

		world := get(row, "global code")
		if world == "" {
			world = "001"
		}
		b.linkRegion(world, get(row, "global name"), "", true)

		region := get(row, "region code")
		if region != "" {
			b.linkRegion(region, get(row, "region name"), world, true)
		}
		sub := get(row, "sub-region code")
		if sub != "" {
			b.linkRegion(sub, get(row, "sub-region name"), region, true)
		}
		intermediate := get(row, "intermediate region code")
		if intermediate != "" {
			b.linkRegion(intermediate, get(row, "intermediate region name"), sub, true)
		}

		parent := intermediate
		if parent == "" {
			parent = sub
		}
		if parent == "" {
			parent = region
		}
		area := get(row, "iso-alpha2 code")
		if area == "" {
			area = get(row, "m49 code")
		}
		if area != "" {
			b.linkRegion(area, get(row, "country or area"), parent, false)
		}
	}
	return nil
}

// linkRegion merges M49 containment data into the region table without
// discarding metadata loaded from the subtag registry.
func (b *Builder) linkRegion(code, name, parent string, macro bool) {
	key := strings.ToLower(code)
	e, ok := b.regions[key]
	if !ok {
		e = &Region{Subtag: strings.ToUpper(code)}
		b.regions[key] = e
	}
	if parent != "" && !strings.EqualFold(parent, code) {
		e.M49Parent = strings.ToUpper(parent)
	}
	if macro {
		e.Macro = true
	}
	if name != "" && len(e.Descriptions) == 0 {
		e.Descriptions = []string{name}
	}
}
