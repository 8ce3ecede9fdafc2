package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scheerer/berlin-uhr/clock"
	"github.com/scheerer/berlin-uhr/internal/lights"
	"github.com/scheerer/berlin-uhr/internal/lights/lifx"
	"github.com/scheerer/berlin-uhr/internal/logging"
	"github.com/scheerer/berlin-uhr/uhr"
)

var (
	logger = logging.New("main")
	config = uhr.Config{}
)

var errConversionFailed = errors.New("one or more times could not be converted")

func main() {
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		logger.With(zap.Error(err)).Error("berlinuhr failed")
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "berlinuhr",
		Short: "Show times as a Berlin Uhr lamp display",
		Long: `Converts H:M:S times into the five lamp rows of a Berlin Uhr.

Environment:
  LOG_LEVEL           debug, info, warn or error
  LIGHT_TYPE          TERMINAL or LIFX (used by show)
  LIGHT_GROUP_NAME    LIFX group holding the lamp bulbs
  LIGHT_LABEL_PREFIX  prefix of LIFX bulb labels, e.g. "uhr-" for uhr-seconds-1
  MIN_BRIGHTNESS      floor for lit lamps, 0 to 1
  MAX_BRIGHTNESS      ceiling for lit lamps, 0 to 1
  TRANSITION          LIFX fade duration
  DISCOVERY_TIMEOUT   how long to wait for the LIFX group`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.AddCommand(newConvertCmd(), newShowCmd())
	return root
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := env.Parse(&config); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	logging.GetLeveler().SetAllLevels(level)

	logger.With(zap.Any("config", config)).Debug("Loaded config")
	return nil
}

func newConvertCmd() *cobra.Command {
	var expected string
	cmd := &cobra.Command{
		Use:   "convert [H:M:S ...]",
		Short: "Print the lamp display for each time",
		Long: `Prints the canonical display (O off, Y yellow, R red) for each time.
With no arguments, times are read one per line from stdin.
With --expect, a single time is checked against an expected display instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("expect") {
				if len(args) != 1 {
					return fmt.Errorf("--expect needs exactly one time, got %d", len(args))
				}
				if err := uhr.Check(clock.Berlin{}, args[0], strings.ReplaceAll(expected, `\n`, "\n")); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			times := args
			if len(times) == 0 {
				var err error
				if times, err = uhr.ReadTimes(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			failed, err := uhr.WriteResults(cmd.OutOrStdout(), uhr.Convert(clock.Berlin{}, times))
			if err != nil {
				return fmt.Errorf("write displays: %w", err)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errConversionFailed, failed, len(times))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&expected, "expect", "", `expected display, rows separated by "\n"`)
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show H:M:S",
		Short: "Render a time on the configured lights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// reject bad input before waiting on light discovery
			d, err := clock.Berlin{}.Convert(args[0])
			if err != nil {
				return err
			}

			lightService, err := newLightService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer lightService.Stop()

			return uhr.Show(ctx, config, lightService, d)
		},
	}
}

func newLightService(ctx context.Context, out io.Writer) (lights.LightService, error) {
	var lightService lights.LightService
	switch config.LightType {
	case uhr.LightTypeTerminal:
		lightService = lights.NewTerminal(out)
	case uhr.LightTypeLifx:
		l, err := lifx.NewLifx(lifx.Config{
			GroupName:        config.LightGroupName,
			MinBrightness:    config.MinBrightness,
			MaxBrightness:    config.MaxBrightness,
			DiscoveryTimeout: config.DiscoveryTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create LIFX light service: %w", err)
		}
		lightService = l
	default:
		return nil, fmt.Errorf("unknown light type: %v", config.LightType)
	}

	if err := lightService.Start(ctx); err != nil {
		lightService.Stop()
		return nil, err
	}
	return lightService, nil
}
