package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFromString(t *testing.T) {
	alph := EnglishAlphabet()
	rack, err := RackFromString("AENPPSW", alph)
	assert.NoError(t, err)

	expected := make([]int, 27)
	expected[1] = 1
	expected[5] = 1
	expected[14] = 1
	expected[16] = 2
	expected[19] = 1
	expected[23] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, 7, rack.NumTiles())
}

func TestRackTakeAdd(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	rack, err := RackFromString("AENPPSW", alph)
	is.NoErr(err)
	rack.Take(16)
	is.Equal(rack.CountOf(16), 1)
	is.Equal(rack.NumTiles(), 6)
	rack.Take(16)
	is.True(!rack.Has(16))
	rack.Add(16)
	is.True(rack.Has(16))
	is.Equal(rack.String(), "AENPSW")
}

func TestRackBlanks(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	rack, err := RackFromString("??AB", alph)
	is.NoErr(err)
	is.Equal(rack.TilesOn(), MachineWord{0, 0, 1, 2})
	is.Equal(rack.CountOf(0), 2)

	_, err = RackFromString("Ab", alph)
	is.True(err != nil)
}

func TestRackCopy(t *testing.T) {
	is := is.New(t)
	rack, err := RackFromString("CAT", EnglishAlphabet())
	is.NoErr(err)
	c := rack.Copy()
	c.Take(1)
	is.Equal(rack.NumTiles(), 3)
	is.Equal(c.NumTiles(), 2)
	is.True(rack.Has(1))
}
