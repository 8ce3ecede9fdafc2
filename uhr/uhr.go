package uhr

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/berlin-uhr/clock"
	"github.com/scheerer/berlin-uhr/internal/lights"
	"github.com/scheerer/berlin-uhr/internal/logging"
)

var logger = logging.New("uhr")

const (
	LightTypeTerminal = "TERMINAL"
	LightTypeLifx     = "LIFX"
)

type Config struct {
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LightType        string        `env:"LIGHT_TYPE" envDefault:"TERMINAL"`
	LightGroupName   string        `env:"LIGHT_GROUP_NAME" envDefault:"BERLIN_UHR"`
	LightLabelPrefix string        `env:"LIGHT_LABEL_PREFIX" envDefault:""`
	MaxBrightness    float64       `env:"MAX_BRIGHTNESS" envDefault:"0.65"`
	MinBrightness    float64       `env:"MIN_BRIGHTNESS" envDefault:"0.2"`
	Transition       time.Duration `env:"TRANSITION" envDefault:"250ms"`
	DiscoveryTimeout time.Duration `env:"DISCOVERY_TIMEOUT" envDefault:"5s"`
}

// Result is the outcome of converting one line of batch input.
type Result struct {
	Input   string
	Display clock.Display
	Err     error
}

// Convert converts each time in order. Failures are reported per input and
// do not stop the batch.
func Convert(converter clock.Converter, inputs []string) []Result {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		d, err := converter.Convert(in)
		results = append(results, Result{Input: in, Display: d, Err: err})
	}
	return results
}

// ReadTimes returns the non-blank lines of r with surrounding whitespace
// removed. Whitespace inside a line is left for the parser to reject.
func ReadTimes(r io.Reader) ([]string, error) {
	var times []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		times = append(times, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read times: %w", err)
	}
	return times, nil
}

// WriteResults prints each display followed by a blank line and returns
// the number of failed conversions. Failures are logged, not printed.
func WriteResults(w io.Writer, results []Result) (int, error) {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.With(zap.String("input", r.Input), zap.Error(r.Err)).Error("Failed to convert time")
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", r.Display); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// Check compares the display for text with an expected display in the
// canonical text form.
func Check(converter clock.Converter, text, expected string) error {
	want, err := clock.ParseDisplay(expected)
	if err != nil {
		return fmt.Errorf("expected display: %w", err)
	}
	got, err := converter.Convert(text)
	if err != nil {
		return err
	}
	if got.String() != want.String() {
		return fmt.Errorf("time %s: display mismatch\nwant:\n%s\ngot:\n%s", text, want, got)
	}
	return nil
}

// Show pushes a display to the light service. It never reads the wall
// clock.
func Show(ctx context.Context, config Config, lightService lights.LightService, d clock.Display) error {
	if lightService.LightCount() == 0 {
		logger.With(zap.String("lightType", config.LightType)).Warn("No lights available")
	}

	frame := lights.NewFrame(d, lights.DefaultPalette(), config.LightLabelPrefix)
	start := time.Now()
	if err := lightService.ShowWithDuration(ctx, frame, config.Transition); err != nil {
		return fmt.Errorf("show display: %w", err)
	}
	logger.With(zap.Stringer("display", d), zap.Stringer("duration", time.Since(start))).Debug("Shown")
	return nil
}
