package language

import "fmt"

// Validity is the tier of semantic correctness a tag has been resolved
// to. The tiers form a total order: a strictly-valid tag is valid, and
// a valid tag is well-formed.
type Validity int

const (
	// WellFormed tags match the grammar. No registry lookups are
	// performed to establish this tier.
	WellFormed Validity = iota
	// Valid tags additionally have every subtag registered or reserved
	// for private use, no duplicate variants or extension singletons,
	// and at most one extlang.
	Valid
	// StrictlyValid tags additionally satisfy the prefix constraints
	// registered for their variant and extlang subtags.
	StrictlyValid
)

var validityName = []string{"well-formed", "valid", "strictly-valid"}

func (v Validity) String() string {
	if 0 <= int(v) && int(v) < len(validityName) {
		return validityName[v]
	}
	return fmt.Sprintf("Validity(%d)", int(v))
}

// Normalization selects the string form a tag is resolved to.
type Normalization int

const (
	// NormNone preserves the input spelling.
	NormNone Normalization = iota
	// NormCanonical applies canonical casing subtag by subtag without
	// rewriting content.
	NormCanonical
	// NormPreferred applies canonical casing and the registry's
	// preferred-value rewrites: grandfathered and redundant tag
	// replacement, deprecated code replacement, extlang collapse and
	// suppress-script removal. Requires at least the Valid tier.
	NormPreferred
)

var normalizationName = []string{"none", "canonical", "preferred"}

func (n Normalization) String() string {
	if 0 <= int(n) && int(n) < len(normalizationName) {
		return normalizationName[n]
	}
	return fmt.Sprintf("Normalization(%d)", int(n))
}

// An Option configures Parse, Compose and Similarity.
type Option func(*config) error

type config struct {
	validity      Validity
	normalization Normalization
}

// WithValidity requests resolution to the given validity tier.
// The default is WellFormed.
func WithValidity(v Validity) Option {
	return func(c *config) error {
		if v < WellFormed || v > StrictlyValid {
			return fmt.Errorf("language: unknown validity tier %d", int(v))
		}
		c.validity = v
		return nil
	}
}

// WithNormalization requests the given normalization form. The default
// is NormCanonical. NormPreferred implies resolution to at least the
// Valid tier.
func WithNormalization(n Normalization) Option {
	return func(c *config) error {
		if n < NormNone || n > NormPreferred {
			return fmt.Errorf("language: unknown normalization form %d", int(n))
		}
		c.normalization = n
		return nil
	}
}

// newConfig validates the options once at the API boundary.
func newConfig(opts []Option) (config, error) {
	c := config{validity: WellFormed, normalization: NormCanonical}
	for _, o := range opts {
		if err := o(&c); err != nil {
			return config{}, err
		}
	}
	if c.normalization == NormPreferred && c.validity < Valid {
		c.validity = Valid
	}
	return c, nil
}
