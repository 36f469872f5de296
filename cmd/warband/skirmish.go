package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/errors"
	"github.com/KirkDiggler/rpg-warband/internal/factory"
	"github.com/KirkDiggler/rpg-warband/internal/orchestrators/skirmish"
	"github.com/KirkDiggler/rpg-warband/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-warband/internal/pkg/idgen"
)

func newSkirmishCmd(defaults *Config) *cobra.Command {
	cfg := *defaults

	cmd := &cobra.Command{
		Use:   "skirmish",
		Short: "Run a timed skirmish",
		Long: `Muster every warrior kind for the given number of rounds, shuffle them once,
then on every tick let a randomly drawn warrior attack another until the
duration elapses. One combat line is printed per attack.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSkirmish(cmd, &cfg)
		},
	}

	cmd.Flags().DurationVar(&cfg.Tick, "tick", cfg.Tick, "time between attacks (WARBAND_TICK)")
	cmd.Flags().DurationVar(&cfg.Duration, "duration", cfg.Duration, "skirmish length (WARBAND_DURATION)")
	cmd.Flags().IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "warriors of each kind (WARBAND_ROUNDS)")
	cmd.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json (WARBAND_LOG_FORMAT)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (WARBAND_LOG_LEVEL)")

	return cmd
}

func runSkirmish(cmd *cobra.Command, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	previous := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(previous)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus()
	combatlog.SubscribeWriter(bus, cmd.OutOrStdout())
	combatlog.SubscribeSlog(bus, logger)

	recorder, err := combatlog.NewBusRecorder(&combatlog.BusRecorderConfig{Bus: bus})
	if err != nil {
		return errors.Wrap(err, "failed to create recorder")
	}

	warriorFactory, err := factory.New(&factory.Config{
		Recorder:    recorder,
		IDGenerator: idgen.NewUUID("warrior"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create factory")
	}

	army, err := warriorFactory.Muster(ctx, cfg.Rounds)
	if err != nil {
		return errors.Wrap(err, "failed to muster warband")
	}

	sk, err := skirmish.New(&skirmish.Config{
		Warriors:     army,
		Clock:        clock.New(),
		Roller:       dice.DefaultRoller,
		TickInterval: cfg.Tick,
		Duration:     cfg.Duration,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create skirmish")
	}

	out, err := sk.Run(ctx)
	if errors.IsCanceled(err) {
		logger.Info("Skirmish interrupted")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Skirmish summary",
		"ticks", out.Ticks,
		"hits", out.Hits,
		"out_of_ammo", out.OutOfAmmo,
		"elapsed", out.FinishedAt.Sub(out.StartedAt),
	)
	return nil
}
