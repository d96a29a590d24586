package annotation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWithHeader(t *testing.T) {
	csv := ";Lipid_K_ox;Lipid_Na\n" +
		"838.5;PC.34.1_K_ox;PC.34.1_Na\n" +
		"840.2;;\n"

	species, columns, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"Lipid.ox (K)", "Lipid (Na)"}, columns)
	require.Len(t, species, 2)

	assert.Equal(t, 838.5, species[0].Mz)
	assert.Equal(t, []string{"PC.34.1_K_ox", "PC.34.1_Na"}, species[0].Names)
	assert.True(t, species[0].Annotated())

	assert.Equal(t, 840.2, species[1].Mz)
	assert.False(t, species[1].Annotated())
}

func TestReadWithoutHeader(t *testing.T) {
	csv := "838.5;PC_K\n840.2;PE_Na\n"

	species, columns, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ion (#1)"}, columns)
	require.Len(t, species, 2)
	assert.Equal(t, 840.2, species[1].Mz)
}

func TestReadBadMz(t *testing.T) {
	_, _, err := Read(strings.NewReader("abc;X\n"))
	assert.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	_, _, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "PC.34.1 (K)", DisplayName("PC.34.1_K"))
	assert.Equal(t, "PC.ox (Na)", DisplayName("PC_Na_ox"))
	assert.Equal(t, "PC.ox.2x (Na)", DisplayName("PC_Na_ox_2x"))
	assert.Equal(t, "Cholesterol", DisplayName("Cholesterol"))
}
