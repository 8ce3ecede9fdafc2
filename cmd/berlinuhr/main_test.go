package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/berlin-uhr/clock"
	"github.com/scheerer/berlin-uhr/uhr"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	config = uhr.Config{}

	var out bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConvertArgs(t *testing.T) {
	out, err := run(t, "", "convert", "00:00:00", "23:59:59")
	require.NoError(t, err)
	assert.Equal(t,
		"Y\nOOOO\nOOOO\nOOOOOOOOOOO\nOOOO\n\nO\nRRRR\nRRRO\nYYRYYRYYRYY\nYYYY\n\n",
		out)
}

func TestConvertStdin(t *testing.T) {
	out, err := run(t, "13:17:01\n", "convert")
	require.NoError(t, err)
	assert.Equal(t, "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO\n\n", out)
}

func TestConvertReportsFailures(t *testing.T) {
	out, err := run(t, "", "convert", "00:00:00", "12:60:00")
	assert.ErrorIs(t, err, errConversionFailed)
	assert.Equal(t, "Y\nOOOO\nOOOO\nOOOOOOOOOOO\nOOOO\n\n", out)
}

func TestConvertExpect(t *testing.T) {
	out, err := run(t, "", "convert", "--expect", "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO", "13:17:01")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = run(t, "", "convert", "--expect", "Y\nRROO\nRRRO\nYYROOOOOOOO\nYYOO", "13:17:01")
	assert.ErrorContains(t, err, "display mismatch")

	_, err = run(t, "", "convert", "--expect", "Y", "13:17:01", "00:00:00")
	assert.ErrorContains(t, err, "exactly one time")
}

func TestShowTerminal(t *testing.T) {
	t.Setenv("LIGHT_TYPE", "TERMINAL")

	out, err := run(t, "", "show", "13:17:01")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "YYROOOOOOOO", strings.Join(strings.Fields(lines[3]), ""))
}

func TestShowRejectsBadInput(t *testing.T) {
	t.Setenv("LIGHT_TYPE", "TERMINAL")

	out, err := run(t, "", "show", "25:00:00")
	assert.ErrorIs(t, err, clock.ErrOutOfRange)
	assert.Empty(t, out)
}

func TestShowRejectsBadInputBeforeDiscovery(t *testing.T) {
	t.Setenv("LIGHT_TYPE", "LIFX")
	t.Setenv("DISCOVERY_TIMEOUT", "30s")

	start := time.Now()
	_, err := run(t, "", "show", "12:00")
	assert.ErrorIs(t, err, clock.ErrWrongSegmentCount)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestUnknownLightType(t *testing.T) {
	t.Setenv("LIGHT_TYPE", "NEON")

	_, err := run(t, "", "show", "13:17:01")
	assert.ErrorContains(t, err, "unknown light type")
}

func TestBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := run(t, "", "convert", "00:00:00")
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestConvertExpectEscapedLineBreaks(t *testing.T) {
	out, err := run(t, "", "convert", "--expect", `Y\nOOOO\nOOOO\nOOOOOOOOOOO\nOOOO`, "0:0:0")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}
