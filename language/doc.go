// Package language implements parsing, validation, normalization and
// comparison of IETF BCP 47 language tags.
//
// A Tag is produced by Parse or Compose against a registry snapshot
// and records the validity tier it was resolved to:
//
//	wellFormed -> valid -> strictlyValid
//
// Well-formedness is a pure grammar check. Validity additionally
// requires every subtag to be registered (or reserved for private
// use), and strict validity enforces the prefix constraints registered
// for variants and extended-language subtags.
//
// Tags are immutable. The normalization and revalidation methods
// (ToCanonical, ToValid, ToStrictlyValid, ToPreferred) return new Tag
// values. Canonicalization adjusts casing only; preferred form also
// resolves grandfathered and redundant tags, replaces deprecated
// codes, collapses extended-language subtags and drops a script that
// matches the language's suppress-script, so that for example
// "zh-cmn-Hans" becomes "cmn-Hans" and "en-Latn" becomes "en".
//
// Similarity scores two tags for locale matching and fallback,
// producing one of the ordered Score values described in that type's
// documentation.
//
// All operations are pure functions of their inputs and the supplied
// read-only registry, and are safe for concurrent use.
//
// See https://tools.ietf.org/html/bcp47 for the underlying standard.
package language
