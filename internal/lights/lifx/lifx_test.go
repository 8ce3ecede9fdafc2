package lifx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pdf/golifx/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/berlin-uhr/clock"
	"github.com/scheerer/berlin-uhr/internal/lights"
)

type fakeBulb struct {
	label    string
	labelErr error
	setErr   error

	mu       sync.Mutex
	color    *common.Color
	duration time.Duration
}

func (b *fakeBulb) GetLabel() (string, error) {
	return b.label, b.labelErr
}

func (b *fakeBulb) SetColor(color common.Color, duration time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.color = &color
	b.duration = duration
	return b.setErr
}

var testConfig = Config{GroupName: "BERLIN_UHR", MinBrightness: 0.2, MaxBrightness: 0.65}

func brightness(f float64) uint16 {
	return uint16(f * 0xFFFF)
}

func frameFor(t *testing.T, text string) lights.Frame {
	t.Helper()
	d, err := clock.Berlin{}.Convert(text)
	require.NoError(t, err)
	return lights.NewFrame(d, lights.DefaultPalette(), "")
}

func TestShowSetsMatchingBulbs(t *testing.T) {
	seconds := &fakeBulb{label: "seconds-1"}
	quarter := &fakeBulb{label: "minutes-top-3"}
	unlit := &fakeBulb{label: "minutes-top-4"}
	stranger := &fakeBulb{label: "kitchen"}
	broken := &fakeBulb{label: "", labelErr: errors.New("timeout")}

	bulbs := []bulb{seconds, quarter, unlit, stranger, broken}
	err := show(context.Background(), bulbs, frameFor(t, "13:17:00"), testConfig, 250*time.Millisecond)
	require.NoError(t, err)

	require.NotNil(t, seconds.color)
	assert.Greater(t, seconds.color.Brightness, uint16(0))
	assert.Equal(t, 250*time.Millisecond, seconds.duration)

	require.NotNil(t, quarter.color)
	assert.Equal(t, uint16(0), quarter.color.Hue)
	assert.Equal(t, brightness(0.65), quarter.color.Brightness)

	require.NotNil(t, unlit.color)
	assert.Equal(t, uint16(0), unlit.color.Brightness)

	assert.Nil(t, stranger.color)
	assert.Nil(t, broken.color)
}

func TestShowReturnsSetColorFailure(t *testing.T) {
	failing := &fakeBulb{label: "hours-top-1", setErr: errors.New("no ack")}
	ok := &fakeBulb{label: "hours-top-2"}

	err := show(context.Background(), []bulb{failing, ok}, frameFor(t, "10:00:00"), testConfig, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hours-top-1")
	assert.NotNil(t, ok.color)
}

func TestShowStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &fakeBulb{label: "seconds-1"}
	err := show(ctx, []bulb{b}, frameFor(t, "00:00:00"), testConfig, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, b.color)
}

func TestAdjustColor(t *testing.T) {
	black := adjustColor(newLifxColor(lights.Color{}), testConfig)
	assert.Equal(t, common.Color{Kelvin: kelvin}, black)

	red := adjustColor(newLifxColor(lights.Color{Red: 255}), testConfig)
	assert.Equal(t, uint16(0xFFFF), red.Saturation)
	assert.Equal(t, brightness(0.65), red.Brightness)

	dim := adjustColor(newLifxColor(lights.Color{Red: 20}), testConfig)
	assert.Equal(t, brightness(0.2), dim.Brightness)
}
