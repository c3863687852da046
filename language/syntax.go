package language

// Syntactic checks and canonical casing for individual subtags. All
// comparisons are ASCII-only and case-insensitive; canonical casing is
// plain ASCII folding (upper for regions, title for scripts, lower
// elsewhere), never locale-sensitive.

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlphaNum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func allAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

func allDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func allAlphaNum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlphaNum(s[i]) {
			return false
		}
	}
	return true
}

func lower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if 'A' <= b[i] && b[i] <= 'Z' {
					b[i] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

func upper(s string) string {
	for i := 0; i < len(s); i++ {
		if 'a' <= s[i] && s[i] <= 'z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if 'a' <= b[i] && b[i] <= 'z' {
					b[i] -= 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// title folds to titlecase: first byte upper, the rest lower.
func title(s string) string {
	if s == "" {
		return s
	}
	return upper(s[:1]) + lower(s[1:])
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func isLanguageSubtag(s string) bool {
	// 2-3 letters for ISO 639 codes; 4 letters reserved; 5-8 letters
	// for registered languages.
	return 2 <= len(s) && len(s) <= 8 && allAlpha(s)
}

func isExtlangSubtag(s string) bool {
	return len(s) == 3 && allAlpha(s)
}

func isScriptSubtag(s string) bool {
	return len(s) == 4 && allAlpha(s)
}

func isRegionSubtag(s string) bool {
	return len(s) == 2 && allAlpha(s) || len(s) == 3 && allDigit(s)
}

func isVariantSubtag(s string) bool {
	if len(s) == 4 {
		return isDigit(s[0]) && allAlphaNum(s)
	}
	return 5 <= len(s) && len(s) <= 8 && allAlphaNum(s)
}

// isSingleton reports whether s is an extension singleton. "x" is
// excluded; it introduces private use.
func isSingleton(s string) bool {
	return len(s) == 1 && isAlphaNum(s[0]) && s[0] != 'x' && s[0] != 'X'
}

func isExtensionValueSubtag(s string) bool {
	return 2 <= len(s) && len(s) <= 8 && allAlphaNum(s)
}

func isPrivateUsePrefix(s string) bool {
	return s == "x" || s == "X"
}

func isPrivateUseSubtag(s string) bool {
	return 1 <= len(s) && len(s) <= 8 && allAlphaNum(s)
}

// A Converter validates and canonicalizes subtags of a single kind. It
// is the unit of kind-specific syntax used by ParseRange and exposed
// for callers that work with bare subtags rather than whole tags.
type Converter struct {
	kind       Kind
	wellFormed func(string) bool
	canon      func(string) string
}

// Kind returns the subtag kind this converter handles.
func (c Converter) Kind() Kind { return c.kind }

// IsWellFormed reports whether s is syntactically well-formed for this
// kind.
func (c Converter) IsWellFormed(s string) bool { return c.wellFormed(s) }

// IsCanonical reports whether s is well-formed and already in
// canonical casing.
func (c Converter) IsCanonical(s string) bool {
	return c.wellFormed(s) && c.canon(s) == s
}

// Canonical rewrites s to canonical casing. It fails with a
// MalformedTagError if s is not well-formed for this kind.
func (c Converter) Canonical(s string) (string, error) {
	if !c.wellFormed(s) {
		return "", &MalformedTagError{Tag: s, Offending: s}
	}
	return c.canon(s), nil
}

var (
	// LanguageConverter handles primary-language subtags.
	LanguageConverter = Converter{KindPrimaryLanguage, isLanguageSubtag, lower}
	// ExtlangConverter handles extended-language subtags.
	ExtlangConverter = Converter{KindExtlang, isExtlangSubtag, lower}
	// ScriptConverter handles script subtags (titlecase canonical).
	ScriptConverter = Converter{KindScript, isScriptSubtag, title}
	// RegionConverter handles region subtags (uppercase canonical).
	RegionConverter = Converter{KindRegion, isRegionSubtag, upper}
	// VariantConverter handles variant subtags.
	VariantConverter = Converter{KindVariant, isVariantSubtag, lower}
	// PrivateUseConverter handles private-use subtags.
	PrivateUseConverter = Converter{KindPrivateUse, isPrivateUseSubtag, lower}
)
