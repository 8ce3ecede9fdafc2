package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		length  int
		onCount int
		on      LampState
		want    string
	}{
		{0, 0, Red, ""},
		{4, 0, Red, "OOOO"},
		{4, 2, Red, "RROO"},
		{4, 4, Yellow, "YYYY"},
		{11, 3, Yellow, "YYYOOOOOOOO"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			row := Encode(tc.length, tc.onCount, tc.on)
			assert.Len(t, row, tc.length)
			assert.Equal(t, tc.want, row.String())
			assert.Equal(t, tc.onCount, row.OnCount())
		})
	}
}

func TestEncodePanicsOutsideRow(t *testing.T) {
	assert.Panics(t, func() { Encode(4, 5, Red) })
	assert.Panics(t, func() { Encode(4, -1, Red) })
}

func TestLampStateSymbols(t *testing.T) {
	for _, s := range []LampState{Off, Yellow, Red} {
		got, err := ParseLampState(s.Symbol())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.False(t, Off.IsOn())
	assert.True(t, Yellow.IsOn())
	assert.True(t, Red.IsOn())

	_, err := ParseLampState('G')
	assert.Error(t, err)
}
