package clock

// Converter turns a textual time into a lamp display.
type Converter interface {
	Convert(text string) (Display, error)
}

// Berlin is the five-row Berlin Uhr encoding. It holds no state and is
// safe for concurrent use.
type Berlin struct{}

var _ Converter = Berlin{}

// Convert parses text and encodes it. Any error is a *ParseError.
func (Berlin) Convert(text string) (Display, error) {
	t, err := ParseTime(text)
	if err != nil {
		return Display{}, err
	}
	return FromTimeOfDay(t), nil
}

// ConvertTime returns the formatted display for text.
func ConvertTime(text string) (string, error) {
	d, err := Berlin{}.Convert(text)
	if err != nil {
		return "", err
	}
	return Format(d), nil
}
