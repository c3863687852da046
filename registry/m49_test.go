package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleM49Comma = `Global Code,Global Name,Region Code,Region Name,Sub-region Code,Sub-region Name,Intermediate Region Code,Intermediate Region Name,Country or Area,M49 Code,ISO-alpha2 Code
001,World,019,Americas,419,Latin America and the Caribbean,005,South America,Argentina,032,AR
001,World,019,Americas,021,Northern America,,,United States of America,840,US
001,World,150,Europe,155,Western Europe,,,Germany,276,DE
`

const sampleM49Semicolon = `Global Code;Global Name;Region Code;Region Name;Sub-region Code;Sub-region Name;Intermediate Region Code;Intermediate Region Name;Country or Area;M49 Code;ISO-alpha2 Code
001;World;019;Americas;419;Latin America and the Caribbean;005;South America;Argentina;032;AR
`

func TestReadM49(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.ReadM49(strings.NewReader(sampleM49Comma)))
	reg, err := b.Build()
	require.NoError(t, err)

	ar, ok := reg.Region("AR")
	require.True(t, ok)
	assert.Equal(t, "005", ar.M49Parent, "intermediate region wins over sub-region")
	assert.False(t, ar.Macro)
	assert.Equal(t, []string{"Argentina"}, ar.Descriptions)

	us, ok := reg.Region("US")
	require.True(t, ok)
	assert.Equal(t, "021", us.M49Parent, "sub-region used when no intermediate region")

	five, ok := reg.Region("005")
	require.True(t, ok)
	assert.True(t, five.Macro)
	assert.Equal(t, "419", five.M49Parent)

	world, ok := reg.Region("001")
	require.True(t, ok)
	assert.True(t, world.Macro)
	assert.Empty(t, world.M49Parent)

	assert.True(t, reg.RegionContains("019", "AR"))
	assert.True(t, reg.RegionContains("001", "DE"))
	assert.False(t, reg.RegionContains("150", "US"))
}

func TestReadM49SemicolonDelimited(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.ReadM49(strings.NewReader(sampleM49Semicolon)))
	reg, err := b.Build()
	require.NoError(t, err)

	ar, ok := reg.Region("AR")
	require.True(t, ok)
	assert.Equal(t, "005", ar.M49Parent)
}

func TestReadM49PreservesRegistryMetadata(t *testing.T) {
	b := NewBuilder()
	b.AddRegion(Region{Subtag: "AR", Descriptions: []string{"Argentina"}, M49Parent: ""})
	b.AddRegion(Region{Subtag: "DE", Descriptions: []string{"Germany"}})
	require.NoError(t, b.ReadM49(strings.NewReader(sampleM49Comma)))
	reg, err := b.Build()
	require.NoError(t, err)

	de, ok := reg.Region("DE")
	require.True(t, ok)
	assert.Equal(t, []string{"Germany"}, de.Descriptions, "registry description is kept")
	assert.Equal(t, "155", de.M49Parent, "containment link is added")
}

func TestReadM49Errors(t *testing.T) {
	err := NewBuilder().ReadM49(strings.NewReader("Region Code,Region Name\n019,Americas\n"))
	assert.Error(t, err, "required columns missing")

	err = NewBuilder().ReadM49(strings.NewReader(""))
	assert.Error(t, err, "empty file has no header")
}
