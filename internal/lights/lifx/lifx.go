package lifx

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/pdf/golifx"
	"github.com/pdf/golifx/common"
	"github.com/pdf/golifx/protocol"
	"go.uber.org/zap"

	"github.com/scheerer/berlin-uhr/internal/lights"
	"github.com/scheerer/berlin-uhr/internal/logging"
	"github.com/scheerer/berlin-uhr/internal/util"
)

var logger = logging.New("lifx")

const kelvin = 3500

var ErrGroupNotFound = errors.New("lifx group not found")

// LifxLights drives a LIFX group in which every bulb is labelled after
// the clock lamp it shows.
type LifxLights struct {
	config Config
	client *golifx.Client

	lightsMu sync.RWMutex
	group    common.Group
}

var _ lights.LightService = (*LifxLights)(nil)

type Config struct {
	GroupName        string
	MaxBrightness    float64
	MinBrightness    float64
	DiscoveryTimeout time.Duration
}

// bulb is the part of common.Light used to show a lamp.
type bulb interface {
	GetLabel() (string, error)
	SetColor(color common.Color, duration time.Duration) error
}

func NewLifx(config Config) (*LifxLights, error) {
	client, err := golifx.NewClient(&protocol.V2{})
	if err != nil {
		return nil, fmt.Errorf("create lifx client: %w", err)
	}

	return &LifxLights{
		config: config,
		client: client,
	}, nil
}

// Start looks up the configured group. It returns ErrGroupNotFound if the
// group does not answer within the discovery timeout.
func (l *LifxLights) Start(ctx context.Context) error {
	timeout := l.config.DiscoveryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	l.client.SetTimeout(timeout)
	if err := l.client.SetDiscoveryInterval(timeout / 2); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to set LIFX discovery interval")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return l.discover(ctxWithTimeout)
}

func (l *LifxLights) discover(ctx context.Context) error {
	logger.With(zap.String("group", l.config.GroupName)).Info("LIFX discovery starting...")

	type result struct {
		group common.Group
		err   error
	}
	completed := make(chan result, 1)
	go func() {
		g, err := l.client.GetGroupByLabel(l.config.GroupName)
		completed <- result{group: g, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.With(zap.Error(ctx.Err())).Warn("LIFX discovery timed out.")
		return fmt.Errorf("%w: %s: %w", ErrGroupNotFound, l.config.GroupName, ctx.Err())
	case r := <-completed:
		if r.err != nil || r.group == nil {
			logger.With(zap.Error(r.err)).Warn("Couldn't discover group.")
			return fmt.Errorf("%w: %s", ErrGroupNotFound, l.config.GroupName)
		}
		logger.With(zap.String("group", r.group.GetLabel()), zap.Int("lights", len(r.group.Lights()))).Info("LIFX group found")
		l.lightsMu.Lock()
		l.group = r.group
		l.lightsMu.Unlock()
	}

	return nil
}

func (l *LifxLights) Stop() {
	if err := l.client.Close(); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to close LIFX client")
	}
}

func (l *LifxLights) LightCount() int {
	l.lightsMu.RLock()
	defer l.lightsMu.RUnlock()

	if l.group == nil {
		return 0
	}
	return len(l.group.Lights())
}

func (l *LifxLights) ShowWithDuration(ctx context.Context, frame lights.Frame, duration time.Duration) error {
	l.lightsMu.RLock()
	group := l.group
	l.lightsMu.RUnlock()
	if group == nil {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, l.config.GroupName)
	}

	groupLights := group.Lights()
	bulbs := make([]bulb, 0, len(groupLights))
	for _, light := range groupLights {
		bulbs = append(bulbs, light)
	}
	return show(ctx, bulbs, frame, l.config, duration)
}

// show sets every bulb whose label matches a lamp. Bulbs with other labels
// are left alone. The first failure is returned after all bulbs were tried.
func show(ctx context.Context, bulbs []bulb, frame lights.Frame, config Config, duration time.Duration) error {
	lamps := frame.ByLabel()

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
		matched  int
	)
	for _, b := range bulbs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return err
		}

		label, err := b.GetLabel()
		if err != nil {
			logger.With(zap.Error(err)).Warn("Failed to read LIFX light label")
			continue
		}
		lamp, ok := lamps[label]
		if !ok {
			logger.With(zap.String("deviceName", label)).Debug("LIFX light is not a clock lamp")
			continue
		}
		matched++

		wg.Add(1)
		go func(b bulb, lamp lights.Lamp) {
			defer wg.Done()
			lifxColor := adjustColor(newLifxColor(lamp.Color), config)

			logger.With(zap.String("deviceName", lamp.Label),
				zap.Stringer("state", lamp.State),
				zap.Any("lifxColor", lifxColor)).
				Debug("Setting LIFX lamp color")

			if err := b.SetColor(lifxColor, duration); err != nil {
				logger.With(zap.String("deviceName", lamp.Label), zap.Error(err)).Error("Failed to set color for LIFX lamp")
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("set %s: %w", lamp.Label, err)
				}
				errMu.Unlock()
			}
		}(b, lamp)
	}
	wg.Wait()

	if matched < len(lamps) {
		logger.With(zap.Int("matched", matched), zap.Int("lamps", len(lamps))).
			Warn("Some clock lamps have no LIFX light")
	}
	return firstErr
}

func newLifxColor(color lights.Color) common.Color {
	hue, saturation, brightness := util.RgbToHsb(color.Red, color.Green, color.Blue)

	return common.Color{
		Hue:        hue,
		Saturation: saturation,
		Brightness: brightness,
		Kelvin:     kelvin,
	}
}

func adjustColor(color common.Color, config Config) common.Color {
	blackThreshold := 0.015 * 0xFFFF
	if color.Brightness <= uint16(blackThreshold) && color.Saturation <= uint16(blackThreshold) {
		// unlit lamp - turn the light down to nothing
		return common.Color{
			Hue:        0,
			Saturation: 0,
			Brightness: 0,
			Kelvin:     kelvin,
		}
	}

	lo := util.ClampUnit(config.MinBrightness) * 0xFFFF
	hi := util.ClampUnit(config.MaxBrightness) * 0xFFFF
	color.Brightness = uint16(math.Min(hi, math.Max(lo, float64(color.Brightness))))

	return color
}
