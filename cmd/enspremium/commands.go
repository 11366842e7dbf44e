package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namehash/price"
	"github.com/namehash/price/chrono"
	"github.com/namehash/price/internal/config"
	"github.com/namehash/price/internal/logger"
)

type app struct {
	rates      price.ExchangeRates
	schedule   price.PremiumSchedule
	withPrefix bool
	withSuffix bool
	now        func() chrono.Timestamp
	stdout     io.Writer
}

func (a *app) configure(cfg *config.Config) error {
	rates, err := cfg.ExchangeRates()
	if err != nil {
		return err
	}
	schedule, err := cfg.PremiumSchedule()
	if err != nil {
		return err
	}
	a.rates = rates
	a.schedule = schedule
	a.withPrefix = cfg.Display.WithPrefix
	a.withSuffix = cfg.Display.WithSuffix
	if a.now == nil {
		a.now = chrono.Now
	}
	return nil
}

func (a *app) formatted(p price.Price) string {
	return p.Formatted(a.withPrefix, a.withSuffix)
}

// inCurr converts p to the currency named by code, or returns p unchanged if
// code is empty.
func (a *app) inCurr(p price.Price, code string) (price.Price, error) {
	if code == "" {
		return p, nil
	}
	curr, err := price.ParseCurr(code)
	if err != nil {
		return price.Price{}, err
	}
	return price.ConvertCurrency(p, curr, a.rates)
}

// Instants accepted on the command line, the range of four-digit years.
var (
	minInstant = chrono.FromTime(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC))
	maxInstant = chrono.FromTime(time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC))
)

func parseInstant(flag, s string) (chrono.Timestamp, error) {
	t, err := chrono.ParseTimestamp(s)
	if err != nil {
		return chrono.Timestamp{}, err
	}
	if t.Before(minInstant) || t.After(maxInstant) {
		return chrono.Timestamp{}, errors.Wrapf(errUsage, "--%s %v is out of range [%v, %v]", flag, t, minInstant, maxInstant)
	}
	return t, nil
}

// parseExpiry also rejects expirations whose decay window ends past
// maxInstant.
func (a *app) parseExpiry(s string) (chrono.Timestamp, error) {
	if s == "" {
		return chrono.Timestamp{}, errors.Wrap(errUsage, "--expiry is required")
	}
	expiry, err := parseInstant("expiry", s)
	if err != nil {
		return chrono.Timestamp{}, err
	}
	if end := a.schedule.EndTime(expiry); end.After(maxInstant) {
		return chrono.Timestamp{}, errors.Wrapf(errUsage, "--expiry %v: premium window ends at %v, after %v", expiry, end, maxInstant)
	}
	return expiry, nil
}

func (a *app) premiumCmd() *cobra.Command {
	var expiry, at, curr string
	cmd := &cobra.Command{
		Use:   "premium",
		Short: "print the premium of a name at an instant",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.premium(cmd.Context(), expiry, at, curr)
		},
	}
	cmd.Flags().StringVar(&expiry, "expiry", "", "expiration time of the name, in unix seconds")
	cmd.Flags().StringVar(&at, "at", "", "instant to evaluate the premium at, in unix seconds (default: now)")
	cmd.Flags().StringVar(&curr, "curr", "", "currency to show the premium in (default: the schedule's)")
	return cmd
}

func (a *app) premium(ctx context.Context, expiryArg, atArg, currArg string) error {
	expiry, err := a.parseExpiry(expiryArg)
	if err != nil {
		return err
	}
	at := a.now()
	if atArg != "" {
		if at, err = parseInstant("at", atArg); err != nil {
			return err
		}
	}

	premium, err := a.inCurr(a.schedule.At(at, expiry), currArg)
	if err != nil {
		return err
	}
	logger.Info(ctx, "premium computed",
		zap.Stringer("expiry", expiry),
		zap.Stringer("at", at),
		zap.Stringer("premium", premium),
	)

	release := a.schedule.ReleaseTime(expiry)
	relative := chrono.Relative(release, true, chrono.WithNow(at.Time))
	fmt.Fprintf(a.stdout, "released  %s (%s)\n", chrono.Formatted(release), relative)
	fmt.Fprintf(a.stdout, "premium   %s\n", a.formatted(premium))
	return nil
}

func (a *app) scheduleCmd() *cobra.Command {
	var (
		expiry, curr string
		step         time.Duration
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "print the premium over the whole decay window",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.scheduleTable(cmd.Context(), expiry, step, curr)
		},
	}
	cmd.Flags().StringVar(&expiry, "expiry", "", "expiration time of the name, in unix seconds")
	cmd.Flags().DurationVar(&step, "step", 24*time.Hour, "time between rows")
	cmd.Flags().StringVar(&curr, "curr", "", "currency to show the premium in (default: the schedule's)")
	return cmd
}

func (a *app) scheduleTable(ctx context.Context, expiryArg string, stepArg time.Duration, currArg string) error {
	expiry, err := a.parseExpiry(expiryArg)
	if err != nil {
		return err
	}
	step, err := chrono.NewDuration(int64(stepArg / time.Second))
	if err != nil || step.IsZero() {
		return errors.Wrapf(errUsage, "--step must be at least 1s, got %v", stepArg)
	}

	window := a.schedule.Window(expiry)
	if step.Seconds() > window.Duration().Seconds() {
		logger.Warn(ctx, "step is longer than the premium window, printing a single row",
			zap.Stringer("step", step),
			zap.Stringer("window", window.Duration()),
		)
	}
	rows := 0
	for at := window.Begin(); window.Contains(at); at = at.Add(step) {
		premium, err := a.inCurr(a.schedule.At(at, expiry), currArg)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s  %s\n", chrono.Formatted(at), a.formatted(premium))
		rows++
	}
	logger.Info(ctx, "schedule printed",
		zap.Stringer("window", window),
		zap.Stringer("step", step),
		zap.Int("rows", rows),
	)
	return nil
}

func (a *app) convertCmd() *cobra.Command {
	var amount, from, to string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "convert a price between currencies",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.convert(cmd.Context(), amount, from, to)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount to convert")
	cmd.Flags().StringVar(&from, "from", "", "currency of the amount")
	cmd.Flags().StringVar(&to, "to", "", "currency to convert to")
	return cmd
}

func (a *app) convert(ctx context.Context, amount, fromArg, toArg string) error {
	if amount == "" || fromArg == "" || toArg == "" {
		return errors.Wrap(errUsage, "--amount, --from and --to are required")
	}
	from, err := price.ParseCurr(fromArg)
	if err != nil {
		return err
	}
	p, err := price.ParsePrice(from, amount)
	if err != nil {
		return err
	}
	q, err := a.inCurr(p, toArg)
	if err != nil {
		return err
	}
	logger.Info(ctx, "price converted", zap.Stringer("from", p), zap.Stringer("to", q))

	fmt.Fprintln(a.stdout, a.formatted(q))
	return nil
}

func (a *app) formatCmd() *cobra.Command {
	var amount, curr string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "format a price for display",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.format(cmd.Context(), amount, curr)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount to format")
	cmd.Flags().StringVar(&curr, "curr", "", "currency of the amount")
	return cmd
}

func (a *app) format(ctx context.Context, amount, currArg string) error {
	if amount == "" || currArg == "" {
		return errors.Wrap(errUsage, "--amount and --curr are required")
	}
	curr, err := price.ParseCurr(currArg)
	if err != nil {
		return err
	}
	p, err := price.ParsePrice(curr, amount)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "price formatted", zap.Stringer("price", p))

	fmt.Fprintln(a.stdout, a.formatted(p))
	return nil
}
