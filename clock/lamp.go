package clock

import "fmt"

// LampState is the rendered color of one lamp.
type LampState int

const (
	Off LampState = iota
	Yellow
	Red
)

func (s LampState) String() string {
	switch s {
	case Off:
		return "off"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return fmt.Sprintf("LampState(%d)", int(s))
	}
}

// Symbol returns the single character used in the text display.
func (s LampState) Symbol() byte {
	switch s {
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	default:
		return 'O'
	}
}

// IsOn reports whether the lamp is lit.
func (s LampState) IsOn() bool {
	return s == Yellow || s == Red
}

// ParseLampState is the inverse of Symbol.
func ParseLampState(symbol byte) (LampState, error) {
	switch symbol {
	case 'O':
		return Off, nil
	case 'Y':
		return Yellow, nil
	case 'R':
		return Red, nil
	default:
		return Off, fmt.Errorf("unknown lamp symbol %q", symbol)
	}
}

// LampRow is an ordered run of lit lamps followed only by unlit ones.
type LampRow []LampState

// OnCount returns the number of lit lamps.
func (r LampRow) OnCount() int {
	n := 0
	for _, s := range r {
		if s.IsOn() {
			n++
		}
	}
	return n
}

func (r LampRow) String() string {
	b := make([]byte, len(r))
	for i, s := range r {
		b[i] = s.Symbol()
	}
	return string(b)
}

// Encode builds a row of length lamps whose first onCount lamps show on.
// It panics if onCount is outside [0, length]; callers derive onCount from
// bounded arithmetic so that is a bug, not bad input.
func Encode(length, onCount int, on LampState) LampRow {
	if onCount < 0 || onCount > length {
		panic(fmt.Sprintf("clock: on count %d outside row of %d lamps", onCount, length))
	}
	row := make(LampRow, length)
	for i := 0; i < onCount; i++ {
		row[i] = on
	}
	return row
}
