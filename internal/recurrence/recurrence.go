// Package recurrence wraps RFC 5545 recurrence rules (FREQ, INTERVAL, BYDAY,
// BYMONTHDAY) for tasks and habits. All entry points are pure and degrade on
// bad input: a malformed or empty rule is treated as "no recurrence", never
// as an error the caller has to handle.
package recurrence

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Frequency of a recurrence rule. FreqNone means the rule carries no
// recurrence at all.
type Frequency string

const (
	FreqNone    Frequency = ""
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// Options is the structured form of a rule: frequency, interval and the
// frequency-specific selectors. Weekdays are numbered Monday-first (0=Monday
// .. 6=Sunday) and only meaningful for weekly rules; month days (1-31) only
// for monthly rules.
type Options struct {
	Freq      Frequency
	Interval  int
	Weekdays  []int
	MonthDays []int
}

// rruleWeekdays maps Monday-first weekday numbers to rrule weekdays.
var rruleWeekdays = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// parseROption normalizes the optional "RRULE:" marker and parses the value
// part. The marker check is case-insensitive; the value is handed to the
// rrule parser as-is.
func parseROption(rule string) (*rrule.ROption, error) {
	s := strings.TrimSpace(rule)
	if s == "" {
		return nil, fmt.Errorf("empty rule")
	}
	if strings.HasPrefix(strings.ToUpper(s), "RRULE:") {
		s = s[len("RRULE:"):]
	}
	opt, err := rrule.StrToROption(s)
	if err != nil {
		return nil, fmt.Errorf("parse rrule: %w", err)
	}
	return opt, nil
}

// Parse extracts the structured options of a rule. Returns nil on empty
// input, parse failure, or a frequency outside daily/weekly/monthly/yearly.
func Parse(rule string) *Options {
	opt, err := parseROption(rule)
	if err != nil {
		return nil
	}

	o := &Options{Interval: opt.Interval}
	if o.Interval < 1 {
		o.Interval = 1
	}

	switch opt.Freq {
	case rrule.DAILY:
		o.Freq = FreqDaily
	case rrule.WEEKLY:
		o.Freq = FreqWeekly
		for _, wd := range opt.Byweekday {
			o.Weekdays = append(o.Weekdays, wd.Day())
		}
		sort.Ints(o.Weekdays)
	case rrule.MONTHLY:
		o.Freq = FreqMonthly
		o.MonthDays = append(o.MonthDays, opt.Bymonthday...)
		sort.Ints(o.MonthDays)
	case rrule.YEARLY:
		o.Freq = FreqYearly
	default:
		return nil
	}

	return o
}

// NextOccurrence returns the first occurrence strictly after `after`, with
// the series anchored at `anchor`. A zero anchor falls back to the current
// moment, which makes weekly/monthly phase depend on evaluation time;
// callers should pass an explicit anchor whenever one is known. Returns nil
// for empty/malformed rules and for exhausted series.
func NextOccurrence(rule string, anchor, after time.Time) *time.Time {
	opt, err := parseROption(rule)
	if err != nil {
		return nil
	}

	if anchor.IsZero() {
		anchor = time.Now()
	}
	opt.Dtstart = anchor

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil
	}

	next := r.After(after, false)
	if next.IsZero() {
		return nil
	}
	return &next
}

// Describe renders a human-readable label for a rule: "every day",
// "every 2 weeks on Monday, Thursday", "every month on day 1, 15", and so
// on. Weekdays render in week order starting Monday, month days ascending.
// Returns "" when the rule is empty or unparseable.
func Describe(rule string) string {
	o := Parse(rule)
	if o == nil {
		return ""
	}

	switch o.Freq {
	case FreqDaily:
		if o.Interval == 1 {
			return "every day"
		}
		return fmt.Sprintf("every %d days", o.Interval)

	case FreqWeekly:
		if len(o.Weekdays) == 0 {
			if o.Interval == 1 {
				return "every week"
			}
			return fmt.Sprintf("every %d weeks", o.Interval)
		}
		names := make([]string, 0, len(o.Weekdays))
		for _, wd := range o.Weekdays {
			if wd >= 0 && wd < len(weekdayNames) {
				names = append(names, weekdayNames[wd])
			}
		}
		days := strings.Join(names, ", ")
		if o.Interval == 1 {
			return "every week on " + days
		}
		return fmt.Sprintf("every %d weeks on %s", o.Interval, days)

	case FreqMonthly:
		if len(o.MonthDays) == 0 {
			if o.Interval == 1 {
				return "every month"
			}
			return fmt.Sprintf("every %d months", o.Interval)
		}
		nums := make([]string, len(o.MonthDays))
		for i, d := range o.MonthDays {
			nums[i] = fmt.Sprintf("%d", d)
		}
		days := strings.Join(nums, ", ")
		if o.Interval == 1 {
			return "every month on day " + days
		}
		return fmt.Sprintf("every %d months on day %s", o.Interval, days)

	case FreqYearly:
		if o.Interval == 1 {
			return "every year"
		}
		return fmt.Sprintf("every %d years", o.Interval)
	}

	return ""
}

// RuleString builds the RRULE value (no "RRULE:" prefix) from structured
// options. Returns "" when the frequency is unset, meaning no recurrence.
// An interval below 1 is floored to 1 rather than rejected. Selector
// ordering is normalized: weekdays Monday-first, month days ascending.
func (o Options) RuleString() string {
	var freq string
	switch o.Freq {
	case FreqDaily:
		freq = "DAILY"
	case FreqWeekly:
		freq = "WEEKLY"
	case FreqMonthly:
		freq = "MONTHLY"
	case FreqYearly:
		freq = "YEARLY"
	default:
		return ""
	}

	parts := []string{"FREQ=" + freq}

	interval := o.Interval
	if interval < 1 {
		interval = 1
	}
	if interval > 1 {
		parts = append(parts, fmt.Sprintf("INTERVAL=%d", interval))
	}

	if o.Freq == FreqWeekly && len(o.Weekdays) > 0 {
		days := append([]int(nil), o.Weekdays...)
		sort.Ints(days)
		codes := make([]string, 0, len(days))
		for _, wd := range days {
			if wd >= 0 && wd < len(rruleWeekdays) {
				codes = append(codes, rruleWeekdays[wd].String())
			}
		}
		if len(codes) > 0 {
			parts = append(parts, "BYDAY="+strings.Join(codes, ","))
		}
	}

	if o.Freq == FreqMonthly && len(o.MonthDays) > 0 {
		days := append([]int(nil), o.MonthDays...)
		sort.Ints(days)
		nums := make([]string, len(days))
		for i, d := range days {
			nums[i] = fmt.Sprintf("%d", d)
		}
		parts = append(parts, "BYMONTHDAY="+strings.Join(nums, ","))
	}

	return strings.Join(parts, ";")
}
