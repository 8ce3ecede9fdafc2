package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRgbToHsb(t *testing.T) {
	testCases := []struct {
		name    string
		r, g, b uint8
		h, s, v uint16
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 0xFFFF},
		{"red", 255, 0, 0, 0, 0xFFFF, 0xFFFF},
		{"green", 0, 255, 0, 21845, 0xFFFF, 0xFFFF},
		{"blue", 0, 0, 255, 43690, 0xFFFF, 0xFFFF},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, s, v := RgbToHsb(tc.r, tc.g, tc.b)
			assert.Equal(t, tc.h, h)
			assert.Equal(t, tc.s, s)
			assert.Equal(t, tc.v, v)
		})
	}
}

func TestRgbToHsbYellowHue(t *testing.T) {
	// pure yellow sits a sixth of the way round the wheel
	h, s, v := RgbToHsb(255, 255, 0)
	assert.InDelta(t, 0xFFFF/6, int(h), 1)
	assert.Equal(t, uint16(0xFFFF), s)
	assert.Equal(t, uint16(0xFFFF), v)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#FFC800", HexColor(255, 200, 0))
	assert.Equal(t, "#000000", HexColor(0, 0, 0))
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, ClampUnit(-0.5))
	assert.Equal(t, 0.4, ClampUnit(0.4))
	assert.Equal(t, 1.0, ClampUnit(3))
}
