package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatComparisons(t *testing.T) {
	assert.True(t, F(30).LTE(30))
	assert.False(t, F(30.01).LTE(30))
	assert.True(t, F(70).GTE(70))
	assert.True(t, F(40).Between(40, 65))
	assert.True(t, F(65).Between(40, 65))
	assert.False(t, F(65.1).Between(40, 65))

	// Undefined values fail every comparison.
	u := Undefined()
	assert.False(t, u.LTE(1e18))
	assert.False(t, u.GTE(-1e18))
	assert.False(t, u.Between(-1e18, 1e18))
	assert.Equal(t, 7.0, u.Or(7))
	assert.Equal(t, 3.0, F(3).Or(7))
}

func TestFloatJSON(t *testing.T) {
	data, err := json.Marshal(F(1.25))
	require.NoError(t, err)
	assert.Equal(t, "1.25", string(data))

	data, err = json.Marshal(Undefined())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var f Float
	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.False(t, f.Valid)
	require.NoError(t, json.Unmarshal([]byte("42.5"), &f))
	assert.True(t, f.Valid)
	assert.Equal(t, 42.5, f.Value)
}

func TestBool(t *testing.T) {
	assert.True(t, B(true).True())
	assert.False(t, B(false).True())
	assert.False(t, Bool{}.True())

	data, err := json.Marshal(Bool{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestSideOf(t *testing.T) {
	assert.Equal(t, SideLong, SideOf(SetupReversalLong))
	assert.Equal(t, SideLong, SideOf(SetupContLong))
	assert.Equal(t, SideShort, SideOf(SetupReversalShort))
	assert.Equal(t, SideShort, SideOf(SetupContShort))
	assert.Equal(t, SideNone, SideOf(SetupNone))
}
