package language

import "testing"

func TestSimilarity(t *testing.T) {
	reg := testRegistry()
	tests := []struct {
		a, b string
		want Score
	}{
		// Exact: spelling, case folding and suppress-script equivalence.
		{"en-US", "en-US", Exact},
		{"en-us", "EN-US", Exact},
		{"en", "en-Latn", Exact},
		{"sl-rozaj-biske", "sl-biske-rozaj", Exact},
		{"art-lojban", "ART-LOJBAN", Exact},
		{"x-abc", "X-ABC", Exact},

		// Undetermined: "und" matches anything.
		{"und", "en-US", Undetermined},
		{"und-001", "fr", Undetermined},
		{"und", "und", Undetermined},

		// PreferredAffinity and Affinity: regional affinity groups.
		{"ar-EG", "ar-SA", PreferredAffinity},
		{"ar-IQ", "ar-EG", PreferredAffinity},
		{"ar-SA", "ar-MA", Affinity},

		// PreferredRegion: one side is the language's default region.
		{"de-DE", "de-CH", PreferredRegion},
		{"zh-CN", "zh-TW", PreferredRegion},
		{"es-ES", "es-MX", PreferredRegion},
		// The region axis settles before variants are considered.
		{"de-DE-1901", "de-CH", PreferredRegion},

		// MacroRegion: M49 containment, including transitive containment.
		{"es-419", "es-AR", MacroRegion},
		{"es-019", "es-AR", MacroRegion},
		{"en-150", "en-GB", MacroRegion},

		// Sibling: distinct concrete regions with no closer relationship.
		{"de-AT", "de-CH", Sibling},
		{"es-AR", "es-MX", Sibling},

		// NeutralRegion: region absent or the global region on one side.
		{"en-US", "en", NeutralRegion},
		{"en-US", "en-001", NeutralRegion},

		// Region: variants differ while the regions agree.
		{"en-US", "en-US-scotland", Region},
		{"sl-rozaj", "sl", Region},
		{"sl-rozaj-biske", "sl-rozaj", Region},

		// Variant: only extensions or private use differ.
		{"en-US", "en-US-u-co-phonebk", Variant},
		{"en-US-x-priv", "en-US", Variant},
		{"en-US-u-co-phonebk", "en-US-u-co-trad", Variant},

		// None: language, extlang or effective script differ.
		{"en", "fr", None},
		{"zh", "zh-cmn", None},
		{"en-US", "en-Brai-US", None},
		{"uz", "uz-Cyrl", None},
		{"art-lojban", "jbo", None},
		{"art-lojban", "i-klingon", None},
		{"x-abc", "x-def", None},
		{"x-abc", "en", None},
	}
	for _, tt := range tests {
		got, err := Similarity(reg, tt.a, tt.b)
		if err != nil {
			t.Errorf("Similarity(%q, %q): %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Similarity(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
		// Similarity is symmetric.
		rev, err := Similarity(reg, tt.b, tt.a)
		if err != nil {
			t.Errorf("Similarity(%q, %q): %v", tt.b, tt.a, err)
			continue
		}
		if rev != got {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", tt.a, tt.b, got, rev)
		}
	}
}

func TestSimilarityPreferred(t *testing.T) {
	reg := testRegistry()
	tests := []struct {
		a, b string
		want Score
	}{
		// Preferred-form equivalences count as exact.
		{"zh-cmn", "cmn", Exact},
		{"art-lojban", "jbo", Exact},
		{"iw", "he", Exact},
		{"en-BU", "en-MM", Exact},
		{"en-GB-oed", "en-GB-oxendict", Exact},
		// Rewrites can also change the axis a comparison lands on.
		{"iw-IL", "he", NeutralRegion},
		{"iw-IL", "he-US", PreferredRegion},
	}
	for _, tt := range tests {
		got, err := Similarity(reg, tt.a, tt.b, WithNormalization(NormPreferred))
		if err != nil {
			t.Errorf("Similarity(%q, %q, preferred): %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Similarity(%q, %q, preferred) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarityOperands(t *testing.T) {
	reg := testRegistry()
	a := MustParse(reg, "en-US")
	b := MustParse(reg, "en-GB")

	got, err := Similarity(reg, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got != PreferredRegion {
		t.Errorf("Similarity(Tag, Tag) = %v; want %v", got, PreferredRegion)
	}

	got, err = Similarity(reg, a, "en-us")
	if err != nil {
		t.Fatal(err)
	}
	if got != Exact {
		t.Errorf("Similarity(Tag, string) = %v; want %v", got, Exact)
	}

	if _, err := Similarity(reg, Tag{}, b); err == nil {
		t.Error("zero Tag operand accepted")
	}
	if _, err := Similarity(reg, 42, b); err == nil {
		t.Error("int operand accepted")
	}
	if _, err := Similarity(reg, "xx-bogus", b); err == nil {
		t.Error("invalid string operand accepted")
	}
}

func TestScoreOrderAndNames(t *testing.T) {
	ordered := []Score{
		None, Variant, Region, NeutralRegion, Sibling, MacroRegion,
		PreferredRegion, Affinity, PreferredAffinity, Undetermined, Exact,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v >= %v", ordered[i-1], ordered[i])
		}
	}
	if None.String() != "none" || Exact.String() != "exact" || MacroRegion.String() != "macroRegion" {
		t.Error("unexpected score names")
	}
	if Score(99).String() != "Score(99)" {
		t.Errorf("out of range score = %q", Score(99))
	}
}
