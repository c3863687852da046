// Command bcp47 validates, normalizes, compares and describes BCP 47
// language tags from the command line.
//
// Usage:
//
//	bcp47 check en-US zh-cmn-Hans --validity strict
//	bcp47 canon EN-latn-us --preferred
//	bcp47 compare es-419 es-AR
//	bcp47 describe art-lojban
//
// By default the embedded registry snapshot is used; --registry and
// --m49 load the full IANA language-subtag-registry file and UN M49
// CSV instead.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/ErikFortune/bcp47/language"
	"github.com/ErikFortune/bcp47/registry"
)

var cli struct {
	Registry string `name:"registry" help:"Path to an IANA language-subtag-registry file." type:"existingfile"`
	M49      string `name:"m49" help:"Path to a UN M49 CSV file." type:"existingfile"`
	Verbose  bool   `short:"v" help:"Enable debug logging."`

	Check    CheckCmd    `cmd:"" help:"Validate language tags."`
	Canon    CanonCmd    `cmd:"" help:"Print canonical or preferred form."`
	Compare  CompareCmd  `cmd:"" help:"Score the similarity of two tags."`
	Describe DescribeCmd `cmd:"" help:"Print registry-driven descriptions."`
}

type context struct {
	reg *registry.Registry
	log zerolog.Logger
}

func main() {
	k := kong.Parse(&cli,
		kong.Name("bcp47"),
		kong.Description("BCP 47 language tag toolbox."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	reg, err := loadRegistry(log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading registry")
	}

	if err := k.Run(&context{reg: reg, log: log}); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func loadRegistry(log zerolog.Logger) (*registry.Registry, error) {
	if cli.Registry == "" && cli.M49 == "" {
		log.Debug().Msg("using embedded registry snapshot")
		return registry.Default(), nil
	}
	b := registry.NewBuilder()
	if cli.Registry != "" {
		f, err := os.Open(cli.Registry)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := b.ReadSubtagRegistry(f); err != nil {
			return nil, err
		}
		log.Debug().Str("path", cli.Registry).Msg("loaded subtag registry")
	}
	if cli.M49 != "" {
		f, err := os.Open(cli.M49)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := b.ReadM49(f); err != nil {
			return nil, err
		}
		log.Debug().Str("path", cli.M49).Msg("loaded M49 containment data")
	}
	return b.Build()
}

// CheckCmd validates each tag at the requested tier.
type CheckCmd struct {
	Validity string   `help:"Tier to check: well-formed, valid or strict." enum:"well-formed,valid,strict" default:"valid"`
	Tags     []string `arg:"" help:"Tags to check."`
}

func (c *CheckCmd) Run(ctx *context) error {
	var opts []language.Option
	switch c.Validity {
	case "well-formed":
		opts = append(opts, language.WithValidity(language.WellFormed))
	case "valid":
		opts = append(opts, language.WithValidity(language.Valid))
	case "strict":
		opts = append(opts, language.WithValidity(language.StrictlyValid))
	}
	failed := 0
	for _, raw := range c.Tags {
		t, err := language.Parse(ctx.reg, raw, opts...)
		if err != nil {
			failed++
			fmt.Printf("%-20s FAIL %v\n", raw, err)
			continue
		}
		fmt.Printf("%-20s OK   %s (%v)\n", raw, t, t.Validity())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tags failed", failed, len(c.Tags))
	}
	return nil
}

// CanonCmd prints the canonical or preferred form of each tag.
type CanonCmd struct {
	Preferred bool     `help:"Resolve to preferred form instead of canonical casing."`
	Tags      []string `arg:"" help:"Tags to normalize."`
}

func (c *CanonCmd) Run(ctx *context) error {
	norm := language.NormCanonical
	if c.Preferred {
		norm = language.NormPreferred
	}
	for _, raw := range c.Tags {
		t, err := language.Parse(ctx.reg, raw, language.WithNormalization(norm))
		if err != nil {
			return err
		}
		fmt.Println(t)
	}
	return nil
}

// CompareCmd scores the similarity of two tags.
type CompareCmd struct {
	Preferred bool   `help:"Apply preferred-form equivalences before comparing."`
	A         string `arg:"" help:"First tag."`
	B         string `arg:"" help:"Second tag."`
}

func (c *CompareCmd) Run(ctx *context) error {
	var opts []language.Option
	if c.Preferred {
		opts = append(opts, language.WithNormalization(language.NormPreferred))
	}
	score, err := language.Similarity(ctx.reg, c.A, c.B, opts...)
	if err != nil {
		return err
	}
	fmt.Println(score)
	return nil
}

// DescribeCmd prints a human-readable rendering of each tag.
type DescribeCmd struct {
	Tags []string `arg:"" help:"Tags to describe."`
}

func (c *DescribeCmd) Run(ctx *context) error {
	for _, raw := range c.Tags {
		t, err := language.Parse(ctx.reg, raw)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %s\n", t, t.Description())
	}
	return nil
}
