package language

import "fmt"

// TagError is implemented by all errors reported by this package. It
// exposes the subtag (or whole tag) for which the error occurred, so
// callers can recover locally, e.g. by falling back to a well-formed
// but unvalidated tag.
type TagError interface {
	error

	// Subtag returns the offending subtag text.
	Subtag() string
}

// Kind identifies one kind of subtag.
type Kind int

const (
	KindPrimaryLanguage Kind = iota
	KindExtlang
	KindScript
	KindRegion
	KindVariant
	KindSingleton
	KindExtensionValue
	KindPrivateUse
	KindGrandfathered
)

var kindName = []string{
	"primary language",
	"extlang",
	"script",
	"region",
	"variant",
	"extension singleton",
	"extension value",
	"private use",
	"grandfathered tag",
}

func (k Kind) String() string {
	if int(k) < len(kindName) {
		return kindName[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MalformedTagError reports a grammar violation: a subtag of
// unrecognized shape, a subtag kind out of order, or an empty subtag
// from a doubled, leading or trailing hyphen. Position is the
// zero-based index of the offending subtag.
type MalformedTagError struct {
	Tag       string
	Offending string
	Position  int
}

func (e *MalformedTagError) Error() string {
	if e.Offending == "" {
		return fmt.Sprintf("language: malformed tag %q: empty subtag at position %d", e.Tag, e.Position)
	}
	return fmt.Sprintf("language: malformed tag %q: unexpected subtag %q at position %d", e.Tag, e.Offending, e.Position)
}

func (e *MalformedTagError) Subtag() string { return e.Offending }

// MalformedTagRangeError reports a tag-range string that does not
// consist of exactly two subtags of the expected kind separated by
// "..", or a single such subtag.
type MalformedTagRangeError struct {
	Range  string
	Reason string
}

func (e *MalformedTagRangeError) Error() string {
	return fmt.Sprintf("language: malformed tag range %q: %s", e.Range, e.Reason)
}

func (e *MalformedTagRangeError) Subtag() string { return e.Range }

// InvalidSubtagError reports a well-formed subtag that is not present
// in the registry.
type InvalidSubtagError struct {
	Kind  Kind
	Value string
}

func (e *InvalidSubtagError) Error() string {
	return fmt.Sprintf("language: unknown %v %q", e.Kind, e.Value)
}

func (e *InvalidSubtagError) Subtag() string { return e.Value }

// TooManyExtlangError reports more than three extended-language
// subtags, which the grammar does not permit.
type TooManyExtlangError struct {
	Extlangs []string
}

func (e *TooManyExtlangError) Error() string {
	return fmt.Sprintf("language: more than three extlang subtags: %v", e.Extlangs)
}

func (e *TooManyExtlangError) Subtag() string { return e.Extlangs[3] }

// MultipleExtlangError reports two or three extended-language subtags.
// Such tags are well-formed but reserved, and never valid.
type MultipleExtlangError struct {
	Extlangs []string
}

func (e *MultipleExtlangError) Error() string {
	return fmt.Sprintf("language: multiple extlang subtags are reserved: %v", e.Extlangs)
}

func (e *MultipleExtlangError) Subtag() string { return e.Extlangs[1] }

// DuplicateVariantError reports a variant that appears more than once,
// compared case-insensitively.
type DuplicateVariantError struct {
	Variant string
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("language: duplicate variant %q", e.Variant)
}

func (e *DuplicateVariantError) Subtag() string { return e.Variant }

// DuplicateExtensionError reports an extension singleton that appears
// more than once.
type DuplicateExtensionError struct {
	Singleton byte
}

func (e *DuplicateExtensionError) Error() string {
	return fmt.Sprintf("language: duplicate extension singleton %q", string(e.Singleton))
}

func (e *DuplicateExtensionError) Subtag() string { return string(e.Singleton) }

// InvalidPrefixError reports a strictly-valid prefix constraint
// failure: the tag does not satisfy any of the prefixes registered for
// one of its variant or extlang subtags.
type InvalidPrefixError struct {
	Kind     Kind
	Value    string
	Prefixes []string
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("language: %v %q not valid with this prefix (registered: %v)", e.Kind, e.Value, e.Prefixes)
}

func (e *InvalidPrefixError) Subtag() string { return e.Value }

// InvalidGrandfatheredError reports a grandfathered tag that is not
// present in the registry.
type InvalidGrandfatheredError struct {
	Tag string
}

func (e *InvalidGrandfatheredError) Error() string {
	return fmt.Sprintf("language: unknown grandfathered tag %q", e.Tag)
}

func (e *InvalidGrandfatheredError) Subtag() string { return e.Tag }

// MissingPrimaryLanguageError reports subtags with neither a primary
// language, a grandfathered tag, nor a purely private-use form.
type MissingPrimaryLanguageError struct{}

func (e *MissingPrimaryLanguageError) Error() string {
	return "language: missing primary language subtag"
}

func (e *MissingPrimaryLanguageError) Subtag() string { return "" }
