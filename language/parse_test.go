package language

import (
	"errors"
	"strings"
	"testing"

	"github.com/ErikFortune/bcp47/registry"
)

func testRegistry() *registry.Registry {
	return registry.Default()
}

func TestParse(t *testing.T) {
	reg := testRegistry()
	tests := []struct {
		in   string
		opts []Option
		want string
	}{
		{"en-US", nil, "en-US"},
		{"en-us", nil, "en-US"},
		{"EN-US", nil, "en-US"},
		{"sr-latn-rs", nil, "sr-Latn-RS"},
		{"ZH-CMN-HANS-CN", nil, "zh-cmn-Hans-CN"},
		{"de-ch-1901", nil, "de-CH-1901"},
		{"en-us-U-CO-PHONEBK", nil, "en-US-u-co-phonebk"},
		{"X-Some-Private", nil, "x-some-private"},
		{"ART-LOJBAN", nil, "art-lojban"},
		{"en-US", []Option{WithValidity(Valid)}, "en-US"},
		{"en-US", []Option{WithValidity(StrictlyValid)}, "en-US"},
		{"en-US", []Option{WithNormalization(NormNone)}, "en-US"},
		{"en-us", []Option{WithNormalization(NormNone)}, "en-us"},
		{"EN-LATN", []Option{WithNormalization(NormPreferred)}, "en"},
		{"art-lojban", []Option{WithNormalization(NormPreferred)}, "jbo"},
	}
	for _, tt := range tests {
		got, err := Parse(reg, tt.in, tt.opts...)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseValidityRecorded(t *testing.T) {
	reg := testRegistry()
	for _, v := range []Validity{WellFormed, Valid, StrictlyValid} {
		tag, err := Parse(reg, "en-US", WithValidity(v))
		if err != nil {
			t.Fatalf("Parse at %v: %v", v, err)
		}
		if tag.Validity() != v {
			t.Errorf("Validity() = %v; want %v", tag.Validity(), v)
		}
	}
}

// Validity tiers are monotonic: success at a tier implies success at
// every lower tier.
func TestValidityMonotonic(t *testing.T) {
	reg := testRegistry()
	tags := []string{
		"en-US", "zz-Zzzz-AA", "de-1901-1901", "en-US-1994", "qaa-QM",
		"sl-rozaj-biske-1994", "zh-cmn", "zh-cmn-yue", "art-lojban",
		"x-private",
	}
	for _, in := range tags {
		_, errWF := Parse(reg, in, WithValidity(WellFormed))
		_, errV := Parse(reg, in, WithValidity(Valid))
		_, errSV := Parse(reg, in, WithValidity(StrictlyValid))
		if errSV == nil && errV != nil {
			t.Errorf("%q: strictly-valid but not valid", in)
		}
		if errV == nil && errWF != nil {
			t.Errorf("%q: valid but not well-formed", in)
		}
	}
}

// Parsing is case-insensitive: a tag parses exactly when its uppercase
// form parses, and both canonicalize identically.
func TestParseCaseInsensitive(t *testing.T) {
	reg := testRegistry()
	inputs := []string{
		"en-US", "zh-cmn-Hans-CN", "sl-rozaj-biske", "x-a-b-c",
		"art-lojban", "en-u-co-phonebk", "bogus tag", "en--US", "zz-zz-zz",
	}
	for _, in := range inputs {
		a, errA := Parse(reg, in)
		b, errB := Parse(reg, strings.ToUpper(in))
		if (errA == nil) != (errB == nil) {
			t.Errorf("Parse(%q) err=%v but Parse(upper) err=%v", in, errA, errB)
			continue
		}
		if errA == nil && a.String() != b.String() {
			t.Errorf("canonical forms differ: %q vs %q", a, b)
		}
	}
}

// Composing a canonical tag's subtags reproduces the tag.
func TestComposeRoundTrip(t *testing.T) {
	reg := testRegistry()
	inputs := []string{
		"en-US", "zh-cmn-Hans-CN", "sl-rozaj-biske-1994", "de-CH-1901",
		"en-US-u-co-phonebk-x-priv", "x-only-private", "art-lojban",
	}
	for _, in := range inputs {
		tag, err := Parse(reg, in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		again, err := Compose(reg, tag.Subtags())
		if err != nil {
			t.Errorf("Compose(Subtags(%q)): %v", in, err)
			continue
		}
		if again.String() != tag.String() {
			t.Errorf("round trip of %q = %q", tag, again)
		}
	}
}

func TestComposeErrors(t *testing.T) {
	reg := testRegistry()
	var missing *MissingPrimaryLanguageError
	if _, err := Compose(reg, Subtags{Region: "US"}); !errors.As(err, &missing) {
		t.Errorf("Compose without primary language = %v; want MissingPrimaryLanguageError", err)
	}
	if _, err := Compose(reg, Subtags{PrimaryLanguage: "en", Script: "bogus"}); err == nil {
		t.Error("Compose with malformed script succeeded")
	}
}

func TestParseOptionValidation(t *testing.T) {
	reg := testRegistry()
	if _, err := Parse(reg, "en", WithValidity(Validity(42))); err == nil {
		t.Error("unknown validity accepted")
	}
	if _, err := Parse(reg, "en", WithNormalization(Normalization(42))); err == nil {
		t.Error("unknown normalization accepted")
	}
}

func TestMustParse(t *testing.T) {
	reg := testRegistry()
	if got := MustParse(reg, "en-us").String(); got != "en-US" {
		t.Errorf("MustParse = %q; want en-US", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParse of malformed tag did not panic")
		}
	}()
	MustParse(reg, "not a tag")
}
