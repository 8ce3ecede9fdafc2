package lights

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/scheerer/berlin-uhr/clock"
	"github.com/scheerer/berlin-uhr/internal/util"
)

// TerminalLights paints the clock as colored blocks on a terminal.
type TerminalLights struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

var _ LightService = (*TerminalLights)(nil)

func NewTerminal(out io.Writer) *TerminalLights {
	return &TerminalLights{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
}

func (t *TerminalLights) Start(ctx context.Context) error { return nil }

func (t *TerminalLights) Stop() {}

func (t *TerminalLights) LightCount() int {
	n := 0
	for _, kind := range clock.RowKinds {
		n += kind.Len()
	}
	return n
}

// ShowWithDuration ignores duration; a terminal has no fade.
func (t *TerminalLights) ShowWithDuration(ctx context.Context, frame Frame, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.With(zap.Int("lamps", len(frame))).Debug("Rendering frame to terminal")

	_, err := io.WriteString(t.out, t.Render(frame)+"\n")
	return err
}

// Render lays the lamps out row by row, centered like the physical clock.
// Lamps of the 11-lamp row are narrower so every row has the same width.
func (t *TerminalLights) Render(frame Frame) string {
	lamps := make(map[clock.RowKind][]string, len(clock.RowKinds))
	for _, l := range frame {
		lamps[l.Row] = append(lamps[l.Row], t.lamp(l))
	}

	rows := make([]string, 0, len(clock.RowKinds))
	for _, kind := range clock.RowKinds {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, lamps[kind]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (t *TerminalLights) lamp(l Lamp) string {
	width := 10
	switch l.Row {
	case clock.SecondsRow:
		width = 6
	case clock.MinutesTopRow:
		width = 4
	}

	style := t.renderer.NewStyle().
		Width(width - 1).
		MarginRight(1).
		Align(lipgloss.Center)
	if l.State.IsOn() {
		style = style.
			Background(lipgloss.Color(util.HexColor(l.Color.Red, l.Color.Green, l.Color.Blue))).
			Foreground(lipgloss.Color("#000000"))
	} else {
		style = style.Foreground(lipgloss.Color("#444444"))
	}
	return style.Render(string(l.State.Symbol()))
}
