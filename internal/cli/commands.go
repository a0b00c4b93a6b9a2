package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/hours"
)

func (a *app) parseWeekly(name, input string) (hours.WeeklyOpeningHours, error) {
	w, err := hours.ParseWeeklyOpeningHours(input)
	if err != nil {
		return hours.WeeklyOpeningHours{}, errors.Wrapf(err, "invalid %s schedule", name)
	}
	a.logger.Debug("parsed schedule", zap.String("argument", name), zap.String("input", input), zap.Stringer("schedule", w))
	return w, nil
}

func (a *app) validateCommand() *cobra.Command {
	var valueType string
	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check a schedule or another value type",
		Example: `  openinghours validate "Mon-Fri 09:00-17:00"
  openinghours validate --type hourranges "09:00-12:00+13:00-17:00"
  openinghours validate --type currencyamount "1234.56 EUR"`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if !a.engine.HasTag(valueType) {
				return errors.InvalidArgument("type", valueType, "unknown value type")
			}
			if err := a.engine.Var(args[0], "required,"+valueType); err != nil {
				return errors.Wrapf(err, "%q is not a valid %s", args[0], valueType)
			}
			return a.write(cmd, validationResult{Type: valueType, Input: args[0], Valid: true}, "valid")
		}),
	}
	cmd.Flags().StringVarP(&valueType, "type", "t", hours.TagWeeklyOpeningHours,
		"value type: weeklyopeninghours, dayopeninghours, hourranges, hourrange, multidayoftheweek, dayoftheweek, currencyamount, uuidstr or emailaddress")
	return cmd
}

func (a *app) normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <schedule>",
		Short: "Print the schedule with ranges past midnight moved to the next day",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			w, err := a.parseWeekly("schedule", args[0])
			if err != nil {
				return err
			}
			text := a.schedule(w.Normalize())
			return a.write(cmd, scheduleResult{Input: args[0], Schedule: text}, text)
		}),
	}
}

func (a *app) compressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <schedule>",
		Short: "Print the shortest form of the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			w, err := a.parseWeekly("schedule", args[0])
			if err != nil {
				return err
			}
			text := w.Compress()
			return a.write(cmd, scheduleResult{Input: args[0], Schedule: text}, text)
		}),
	}
}

func (a *app) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "List the ranges added and removed per day",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			from, err := a.parseWeekly("from", args[0])
			if err != nil {
				return err
			}
			to, err := a.parseWeekly("to", args[1])
			if err != nil {
				return err
			}
			changes, err := from.Diff(to)
			if err != nil {
				return err
			}
			a.logger.Debug("computed diff", zap.Int("changes", len(changes)))
			return a.write(cmd, diffResult{From: args[0], To: args[1], Changes: changes}, changes)
		}),
	}
}

func (a *app) openAtCommand() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "open-at <schedule> [<day-schedule>]",
		Short: "Tell whether the schedule is open during every range of a day, or at a point in time",
		Example: `  openinghours open-at "Mon-Fri 09:00-17:00" "Wed 10:00-12:00"
  openinghours open-at "Mon-Fri 09:00-17:00" --at 2024-01-05T16:30:00+01:00`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			w, err := a.parseWeekly("schedule", args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				day, err := hours.ParseDayOpeningHours(args[1])
				if err != nil {
					return err
				}
				open, err := w.OpenAt(day)
				if err != nil {
					return err
				}
				return a.write(cmd, answerResult{Question: day.String(), Answer: open}, open)
			}

			t := time.Now()
			if at != "" {
				if t, err = time.Parse(time.RFC3339, at); err != nil {
					return errors.InvalidArgument("at", at, "expected an RFC 3339 time")
				}
			}
			open := w.OpenAtTime(t)
			return a.write(cmd, answerResult{Question: t.Format(time.RFC3339), Answer: open}, open)
		}),
	}
	cmd.Flags().StringVar(&at, "at", "", "RFC 3339 time to check when no day schedule is given (default now)")
	return cmd
}

func (a *app) similarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "similar <a> <b>",
		Short: "Tell whether two schedules are open at the same times",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			x, err := a.parseWeekly("a", args[0])
			if err != nil {
				return err
			}
			y, err := a.parseWeekly("b", args[1])
			if err != nil {
				return err
			}
			similar := x.IsSimilarTo(y)
			return a.write(cmd, answerResult{Question: args[0] + " ~ " + args[1], Answer: similar}, similar)
		}),
	}
}
