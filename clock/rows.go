package clock

import "fmt"

// RowKind names the five rows of the clock, top to bottom.
type RowKind int

const (
	SecondsRow RowKind = iota
	HoursTopRow
	HoursBottomRow
	MinutesTopRow
	MinutesBottomRow
)

// RowKinds lists every row in display order.
var RowKinds = [...]RowKind{SecondsRow, HoursTopRow, HoursBottomRow, MinutesTopRow, MinutesBottomRow}

const (
	// each lamp in a top row is worth this many units
	unitsPerTopLamp = 5
	// every third lamp of the minutes-top row marks a quarter hour
	quarterLampInterval = 3
)

func (k RowKind) String() string {
	switch k {
	case SecondsRow:
		return "seconds"
	case HoursTopRow:
		return "hours-top"
	case HoursBottomRow:
		return "hours-bottom"
	case MinutesTopRow:
		return "minutes-top"
	case MinutesBottomRow:
		return "minutes-bottom"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

// Len returns the fixed lamp count of the row.
func (k RowKind) Len() int {
	switch k {
	case SecondsRow:
		return 1
	case MinutesTopRow:
		return 11
	case HoursTopRow, HoursBottomRow, MinutesBottomRow:
		return 4
	default:
		return 0
	}
}

// Seconds lights the single lamp yellow on even seconds.
func Seconds(second int) LampRow {
	if second%2 == 0 {
		return LampRow{Yellow}
	}
	return LampRow{Off}
}

// HoursTop lights one red lamp per five full hours.
func HoursTop(hour int) LampRow {
	return Encode(HoursTopRow.Len(), hour/unitsPerTopLamp, Red)
}

// HoursBottom lights one red lamp per hour past the last multiple of five.
func HoursBottom(hour int) LampRow {
	return Encode(HoursBottomRow.Len(), hour%unitsPerTopLamp, Red)
}

// MinutesTop lights one lamp per five full minutes. Lamps 3, 6 and 9 are
// red quarter markers, the rest yellow.
func MinutesTop(minute int) LampRow {
	onCount := minute / unitsPerTopLamp
	row := Encode(MinutesTopRow.Len(), onCount, Yellow)
	for i := 0; i < onCount; i++ {
		if (i+1)%quarterLampInterval == 0 {
			row[i] = Red
		}
	}
	return row
}

// MinutesBottom lights one yellow lamp per minute past the last multiple
// of five.
func MinutesBottom(minute int) LampRow {
	return Encode(MinutesBottomRow.Len(), minute%unitsPerTopLamp, Yellow)
}
