package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderLookupsFoldCase(t *testing.T) {
	reg, err := NewBuilder().
		AddLanguage(Language{Subtag: "EN", Descriptions: []string{"English"}, SuppressScript: "Latn"}).
		AddExtlang(Language{Subtag: "CMN", Prefixes: []string{"zh"}}).
		AddScript(Script{Subtag: "latn"}).
		AddRegion(Region{Subtag: "us"}).
		AddVariant(Variant{Subtag: "ROZAJ", Prefixes: []string{"sl"}}).
		AddGrandfathered(Tag{Tag: "Art-Lojban", Preferred: "jbo"}).
		AddRedundant(Tag{Tag: "ZH-CMN", Preferred: "cmn"}).
		Build()
	require.NoError(t, err)

	lang, ok := reg.PrimaryLanguage("eN")
	require.True(t, ok)
	assert.Equal(t, "en", lang.Subtag)
	assert.Equal(t, "Latn", lang.SuppressScript)

	ext, ok := reg.Extlang("cmn")
	require.True(t, ok)
	assert.Equal(t, "cmn", ext.Subtag)

	script, ok := reg.Script("LATN")
	require.True(t, ok)
	assert.Equal(t, "Latn", script.Subtag, "scripts are stored in titlecase")

	region, ok := reg.Region("Us")
	require.True(t, ok)
	assert.Equal(t, "US", region.Subtag, "regions are stored in uppercase")

	variant, ok := reg.Variant("rozaj")
	require.True(t, ok)
	assert.Equal(t, "rozaj", variant.Subtag)

	gf, ok := reg.Grandfathered("ART-LOJBAN")
	require.True(t, ok)
	assert.Equal(t, "jbo", gf.Preferred)

	red, ok := reg.Redundant("zh-cmn")
	require.True(t, ok)
	assert.Equal(t, "cmn", red.Preferred)

	_, ok = reg.PrimaryLanguage("xx")
	assert.False(t, ok)
}

func TestBuilderReplacesEarlierRecords(t *testing.T) {
	reg, err := NewBuilder().
		AddLanguage(Language{Subtag: "en", Descriptions: []string{"old"}}).
		AddLanguage(Language{Subtag: "en", Descriptions: []string{"new"}}).
		Build()
	require.NoError(t, err)
	lang, ok := reg.PrimaryLanguage("en")
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, lang.Descriptions)
}

func TestBuildValidatesAffinities(t *testing.T) {
	_, err := NewBuilder().
		AddLanguage(Language{Subtag: "ar", Affinity: "arabic"}).
		Build()
	require.Error(t, err, "language naming an unknown affinity group")

	_, err = NewBuilder().
		AddLanguage(Language{Subtag: "ar", Affinity: "arabic"}).
		AddAffinity(AffinityGroup{Name: "arabic", Preferred: "EG", Regions: []string{"SA", "MA"}}).
		Build()
	require.Error(t, err, "preferred region outside the group")

	_, err = NewBuilder().
		AddLanguage(Language{Subtag: "ar", Affinity: "arabic"}).
		AddAffinity(AffinityGroup{Name: "arabic", Preferred: "EG", Regions: []string{"EG", "SA"}}).
		Build()
	require.NoError(t, err)
}

func TestRegionContains(t *testing.T) {
	reg, err := NewBuilder().
		AddRegion(Region{Subtag: "001", Macro: true}).
		AddRegion(Region{Subtag: "019", M49Parent: "001", Macro: true}).
		AddRegion(Region{Subtag: "419", M49Parent: "019", Macro: true}).
		AddRegion(Region{Subtag: "005", M49Parent: "419", Macro: true}).
		AddRegion(Region{Subtag: "AR", M49Parent: "005"}).
		AddRegion(Region{Subtag: "US", M49Parent: "021"}).
		Build()
	require.NoError(t, err)

	assert.True(t, reg.RegionContains("005", "AR"))
	assert.True(t, reg.RegionContains("419", "AR"), "containment is transitive")
	assert.True(t, reg.RegionContains("001", "AR"))
	assert.True(t, reg.RegionContains("419", "ar"), "lookups fold case")

	assert.False(t, reg.RegionContains("AR", "419"), "containment is directional")
	assert.False(t, reg.RegionContains("AR", "AR"), "a region does not contain itself")
	assert.False(t, reg.RegionContains("005", "US"), "US chain dead-ends at the unknown 021")
	assert.False(t, reg.RegionContains("005", "XX"))
}

func TestRegionContainsCycle(t *testing.T) {
	reg, err := NewBuilder().
		AddRegion(Region{Subtag: "AA", M49Parent: "AB"}).
		AddRegion(Region{Subtag: "AB", M49Parent: "AA"}).
		Build()
	require.NoError(t, err)
	assert.False(t, reg.RegionContains("001", "AA"))
}

func TestExpandRange(t *testing.T) {
	got, err := expandRange("qaa", "qad")
	require.NoError(t, err)
	assert.Equal(t, []string{"qaa", "qab", "qac", "qad"}, got)

	got, err = expandRange("QM", "QP")
	require.NoError(t, err)
	assert.Equal(t, []string{"qm", "qn", "qo", "qp"}, got)

	got, err = expandRange("aay", "abb")
	require.NoError(t, err)
	assert.Equal(t, []string{"aay", "aaz", "aba", "abb"}, got, "increments carry leftward")

	got, err = expandRange("001", "003")
	require.NoError(t, err)
	assert.Equal(t, []string{"001", "002", "003"}, got)

	all, err := expandRange("qaa", "qtz")
	require.NoError(t, err)
	assert.Len(t, all, 20*26)

	for _, bad := range [][2]string{
		{"", ""}, {"qaa", "qz"}, {"qz", "qa"}, {"a-", "b-"},
	} {
		_, err := expandRange(bad[0], bad[1])
		assert.Error(t, err, "expandRange(%q, %q)", bad[0], bad[1])
	}
}
