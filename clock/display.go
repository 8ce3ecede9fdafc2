package clock

import (
	"fmt"
	"strings"
)

const lineBreak = "\n"

// Display holds the five rows of a Berlin Uhr in display order.
type Display struct {
	Seconds       LampRow
	HoursTop      LampRow
	HoursBottom   LampRow
	MinutesTop    LampRow
	MinutesBottom LampRow
}

// FromTimeOfDay applies the row rules to an already validated time.
func FromTimeOfDay(t TimeOfDay) Display {
	return Display{
		Seconds:       Seconds(t.second),
		HoursTop:      HoursTop(t.hour),
		HoursBottom:   HoursBottom(t.hour),
		MinutesTop:    MinutesTop(t.minute),
		MinutesBottom: MinutesBottom(t.minute),
	}
}

// Row returns the row of the given kind.
func (d Display) Row(kind RowKind) LampRow {
	switch kind {
	case SecondsRow:
		return d.Seconds
	case HoursTopRow:
		return d.HoursTop
	case HoursBottomRow:
		return d.HoursBottom
	case MinutesTopRow:
		return d.MinutesTop
	case MinutesBottomRow:
		return d.MinutesBottom
	default:
		return nil
	}
}

// Rows returns the rows top to bottom.
func (d Display) Rows() []LampRow {
	rows := make([]LampRow, 0, len(RowKinds))
	for _, kind := range RowKinds {
		rows = append(rows, d.Row(kind))
	}
	return rows
}

// TimeOfDay recovers the time shown by the display. The seconds lamp only
// shows parity, so the second is 0 when lit and 1 otherwise. Displays that
// no valid time produces are rejected with a *ParseError.
func (d Display) TimeOfDay() (TimeOfDay, error) {
	second := 1
	if d.Seconds.OnCount() == 1 {
		second = 0
	}
	return NewTimeOfDay(
		d.HoursTop.OnCount()*unitsPerTopLamp+d.HoursBottom.OnCount(),
		d.MinutesTop.OnCount()*unitsPerTopLamp+d.MinutesBottom.OnCount(),
		second,
	)
}

func (d Display) String() string {
	return Format(d)
}

// Format renders one character per lamp, one line per row, with no
// trailing line break.
func Format(d Display) string {
	lines := make([]string, 0, len(RowKinds))
	for _, row := range d.Rows() {
		lines = append(lines, row.String())
	}
	return strings.Join(lines, lineBreak)
}

// ParseDisplay reads text produced by Format. Every row must be one its
// row rule can produce, and the rows together must show a valid time.
func ParseDisplay(text string) (Display, error) {
	lines := strings.Split(text, lineBreak)
	if len(lines) != len(RowKinds) {
		return Display{}, fmt.Errorf("parse display: want %d rows, got %d", len(RowKinds), len(lines))
	}

	var rows [len(RowKinds)]LampRow
	for i, kind := range RowKinds {
		line := lines[i]
		if len(line) != kind.Len() {
			return Display{}, fmt.Errorf("parse display: %s row %q has %d lamps, want %d", kind, line, len(line), kind.Len())
		}
		row := make(LampRow, len(line))
		for j := 0; j < len(line); j++ {
			s, err := ParseLampState(line[j])
			if err != nil {
				return Display{}, fmt.Errorf("parse display: %s row: %w", kind, err)
			}
			row[j] = s
		}
		if want := ruleRow(kind, leadingOn(row)); row.String() != want.String() {
			return Display{}, fmt.Errorf("parse display: %s row %q is not a lamp pattern of the row, nearest is %q", kind, line, want)
		}
		rows[i] = row
	}

	d := Display{
		Seconds:       rows[SecondsRow],
		HoursTop:      rows[HoursTopRow],
		HoursBottom:   rows[HoursBottomRow],
		MinutesTop:    rows[MinutesTopRow],
		MinutesBottom: rows[MinutesBottomRow],
	}
	if _, err := d.TimeOfDay(); err != nil {
		return Display{}, fmt.Errorf("parse display: %w", err)
	}
	return d, nil
}

// ruleRow is the row the row rule draws with onCount lamps lit.
func ruleRow(kind RowKind, onCount int) LampRow {
	switch kind {
	case SecondsRow:
		return Seconds(1 - onCount)
	case HoursTopRow:
		return HoursTop(onCount * unitsPerTopLamp)
	case HoursBottomRow:
		return HoursBottom(onCount)
	case MinutesTopRow:
		return MinutesTop(onCount * unitsPerTopLamp)
	case MinutesBottomRow:
		return MinutesBottom(onCount)
	default:
		return nil
	}
}

// leadingOn counts the lit lamps before the first unlit one.
func leadingOn(row LampRow) int {
	n := 0
	for _, s := range row {
		if !s.IsOn() {
			break
		}
		n++
	}
	return n
}
