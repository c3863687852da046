package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `File-Date: 2024-05-16
%%
Type: language
Subtag: en
Description: English
Suppress-Script: Latn
Added: 2005-10-16
%%
Type: language
Subtag: iw
Description: Hebrew
Added: 2005-10-16
Deprecated: 1989-01-01
Preferred-Value: he
%%
Type: language
Subtag: qaa..qad
Description: Private use
Added: 2005-10-16
Scope: private-use
%%
Type: extlang
Subtag: cmn
Description: Mandarin Chinese
Added: 2009-07-29
Preferred-Value: cmn
Prefix: zh
Macrolanguage: zh
%%
Type: script
Subtag: Latn
Description: Latin
Added: 2005-10-16
%%
Type: region
Subtag: DE
Description: Germany
Added: 2005-10-16
%%
Type: variant
Subtag: biske
Description: The San Giorgio dialect of Resian
Description: The Bila dialect of Resian
Added: 2007-07-05
Prefix: sl-rozaj
%%
Type: variant
Subtag: heploc
Description: Hepburn romanization, Library of Congress
 method
Added: 2009-10-01
Deprecated: 2010-02-07
Preferred-Value: alalc97
Prefix: ja-Latn-hepburn
%%
Type: grandfathered
Tag: art-lojban
Description: Lojban
Added: 2001-11-11
Deprecated: 2003-09-02
Preferred-Value: jbo
%%
Type: redundant
Tag: zh-cmn
Description: Mandarin Chinese
Added: 2005-07-15
Deprecated: 2009-07-29
Preferred-Value: cmn
%%
Type: newfangled
Subtag: zzzz
Description: Ignored
`

func TestReadSubtagRegistry(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.ReadSubtagRegistry(strings.NewReader(sampleRegistry)))
	reg, err := b.Build()
	require.NoError(t, err)

	en, ok := reg.PrimaryLanguage("en")
	require.True(t, ok)
	assert.Equal(t, []string{"English"}, en.Descriptions)
	assert.Equal(t, "Latn", en.SuppressScript)
	assert.False(t, en.Deprecated)

	iw, ok := reg.PrimaryLanguage("iw")
	require.True(t, ok)
	assert.True(t, iw.Deprecated)
	assert.Equal(t, "he", iw.Preferred)

	// The private-use range is expanded entry by entry.
	for _, s := range []string{"qaa", "qab", "qac", "qad"} {
		lang, ok := reg.PrimaryLanguage(s)
		require.True(t, ok, s)
		assert.True(t, lang.PrivateUse, s)
	}
	_, ok = reg.PrimaryLanguage("qae")
	assert.False(t, ok)

	cmn, ok := reg.Extlang("cmn")
	require.True(t, ok)
	assert.Equal(t, "cmn", cmn.Preferred)
	assert.Equal(t, []string{"zh"}, cmn.Prefixes)
	assert.Equal(t, "zh", cmn.Macrolanguage)

	_, ok = reg.Script("Latn")
	assert.True(t, ok)
	_, ok = reg.Region("DE")
	assert.True(t, ok)

	biske, ok := reg.Variant("biske")
	require.True(t, ok)
	assert.Len(t, biske.Descriptions, 2, "repeated Description fields accumulate")
	assert.Equal(t, []string{"sl-rozaj"}, biske.Prefixes)

	// The continuation line is folded into the preceding field.
	heploc, ok := reg.Variant("heploc")
	require.True(t, ok)
	assert.Equal(t, "Hepburn romanization, Library of Congress method", heploc.Descriptions[0])
	assert.True(t, heploc.Deprecated)
	assert.Equal(t, "alalc97", heploc.Preferred)

	gf, ok := reg.Grandfathered("art-lojban")
	require.True(t, ok)
	assert.Equal(t, "jbo", gf.Preferred)

	red, ok := reg.Redundant("zh-cmn")
	require.True(t, ok)
	assert.Equal(t, "cmn", red.Preferred)
}

func TestReadSubtagRegistryErrors(t *testing.T) {
	err := NewBuilder().ReadSubtagRegistry(strings.NewReader("not a field\n"))
	assert.Error(t, err)

	err = NewBuilder().ReadSubtagRegistry(strings.NewReader(" continuation first\n"))
	assert.Error(t, err)

	err = NewBuilder().ReadSubtagRegistry(strings.NewReader("Type: language\n"))
	assert.Error(t, err, "record without Subtag or Tag")

	err = NewBuilder().ReadSubtagRegistry(strings.NewReader("Type: language\nSubtag: aa..a\n"))
	assert.Error(t, err, "malformed range")
}
