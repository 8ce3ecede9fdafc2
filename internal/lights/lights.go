package lights

import (
	"context"
	"fmt"
	"time"

	"github.com/scheerer/berlin-uhr/clock"
	"github.com/scheerer/berlin-uhr/internal/logging"
)

var logger = logging.New("lights")

type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// IsBlack reports whether the color means the lamp is dark.
func (c Color) IsBlack() bool {
	return c.Red == 0 && c.Green == 0 && c.Blue == 0
}

// Palette maps each lamp state to the color a light should show.
type Palette map[clock.LampState]Color

func DefaultPalette() Palette {
	return Palette{
		clock.Off:    {},
		clock.Yellow: {Red: 255, Green: 200, Blue: 0},
		clock.Red:    {Red: 255, Green: 0, Blue: 0},
	}
}

// Lamp is one addressable lamp of the clock.
type Lamp struct {
	Label string
	Row   clock.RowKind
	// Index is 0-based within the row.
	Index int
	State clock.LampState
	Color Color
}

// Frame is every lamp of a display, top row first.
type Frame []Lamp

// LampLabel names a lamp the way lights are expected to be labelled,
// e.g. "minutes-top-3" for the first quarter marker.
func LampLabel(prefix string, row clock.RowKind, index int) string {
	return fmt.Sprintf("%s%s-%d", prefix, row, index+1)
}

// NewFrame lays out a display as labelled lamps.
func NewFrame(d clock.Display, palette Palette, labelPrefix string) Frame {
	frame := make(Frame, 0, 24)
	for _, kind := range clock.RowKinds {
		for i, state := range d.Row(kind) {
			frame = append(frame, Lamp{
				Label: LampLabel(labelPrefix, kind, i),
				Row:   kind,
				Index: i,
				State: state,
				Color: palette[state],
			})
		}
	}
	return frame
}

// ByLabel indexes the frame by lamp label.
func (f Frame) ByLabel() map[string]Lamp {
	m := make(map[string]Lamp, len(f))
	for _, l := range f {
		m[l.Label] = l
	}
	return m
}

// Display rebuilds the clock display shown by the frame. Lamps outside
// the clock layout are ignored.
func (f Frame) Display() clock.Display {
	rows := make(map[clock.RowKind]clock.LampRow, len(clock.RowKinds))
	for _, kind := range clock.RowKinds {
		rows[kind] = make(clock.LampRow, kind.Len())
	}
	for _, l := range f {
		if row, ok := rows[l.Row]; ok && l.Index >= 0 && l.Index < len(row) {
			row[l.Index] = l.State
		}
	}
	return clock.Display{
		Seconds:       rows[clock.SecondsRow],
		HoursTop:      rows[clock.HoursTopRow],
		HoursBottom:   rows[clock.HoursBottomRow],
		MinutesTop:    rows[clock.MinutesTopRow],
		MinutesBottom: rows[clock.MinutesBottomRow],
	}
}

type LightService interface {
	Start(ctx context.Context) error
	Stop()
	LightCount() int
	ShowWithDuration(ctx context.Context, frame Frame, duration time.Duration) error
}
