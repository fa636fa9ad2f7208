package attr

import (
	"fmt"
	"math"
	"time"
)

// Date, month, week and time strings as used by the date-like input types.
// Components are not range checked: month 13 is written as "13".
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#dates-and-times

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func formatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func formatWeek(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func formatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func formatDateTimeLocal(year, month, day, hour, minute int) string {
	return formatDate(year, month, day) + "T" + formatTime(hour, minute)
}

func formatDateOf(t time.Time) string {
	return formatDate(t.Year(), int(t.Month()), t.Day())
}

func formatWeekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return formatWeek(year, week)
}

func formatTimeOf(t time.Time) string {
	return formatTime(t.Hour(), t.Minute())
}

func MinDate(year, month, day int) Min             { return Min(formatDate(year, month, day)) }
func MinMonth(year, month int) Min                 { return Min(formatMonth(year, month)) }
func MinWeek(year, week int) Min                   { return Min(formatWeek(year, week)) }
func MinTime(hour, minute int) Min                 { return Min(formatTime(hour, minute)) }
func MinDateTimeLocal(y, mo, d, h, mi int) Min     { return Min(formatDateTimeLocal(y, mo, d, h, mi)) }
func MinDateFromTime(t time.Time) Min              { return Min(formatDateOf(t)) }
func MinWeekFromTime(t time.Time) Min              { return Min(formatWeekOf(t)) }
func MinTimeFromTime(t time.Time) Min              { return Min(formatTimeOf(t)) }
func MaxDate(year, month, day int) Max             { return Max(formatDate(year, month, day)) }
func MaxMonth(year, month int) Max                 { return Max(formatMonth(year, month)) }
func MaxWeek(year, week int) Max                   { return Max(formatWeek(year, week)) }
func MaxTime(hour, minute int) Max                 { return Max(formatTime(hour, minute)) }
func MaxDateTimeLocal(y, mo, d, h, mi int) Max     { return Max(formatDateTimeLocal(y, mo, d, h, mi)) }
func MaxDateFromTime(t time.Time) Max              { return Max(formatDateOf(t)) }
func MaxWeekFromTime(t time.Time) Max              { return Max(formatWeekOf(t)) }
func MaxTimeFromTime(t time.Time) Max              { return Max(formatTimeOf(t)) }
func ValueDate(year, month, day int) Value         { return Value(formatDate(year, month, day)) }
func ValueMonth(year, month int) Value             { return Value(formatMonth(year, month)) }
func ValueWeek(year, week int) Value               { return Value(formatWeek(year, week)) }
func ValueTime(hour, minute int) Value             { return Value(formatTime(hour, minute)) }
func ValueDateTimeLocal(y, mo, d, h, mi int) Value { return Value(formatDateTimeLocal(y, mo, d, h, mi)) }
func DateTimeDate(year, month, day int) DateTime   { return DateTime(formatDate(year, month, day)) }
func DateTimeMonth(year, month int) DateTime       { return DateTime(formatMonth(year, month)) }
func DateTimeWeek(year, week int) DateTime         { return DateTime(formatWeek(year, week)) }
func DateTimeTime(hour, minute int) DateTime       { return DateTime(formatTime(hour, minute)) }

// DateTimeFromTime writes t as a global date and time string with its offset.
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#global-dates-and-times
func DateTimeFromTime(t time.Time) DateTime { return DateTime(t.Format(time.RFC3339)) }

// DurationOf writes the absolute value of d as a duration string in the HTML
// form "PT#H#M#S", dropping zero components. Fractional seconds are truncated.
// The smallest Duration has no positive counterpart and is written as the
// largest one.
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#durations
func DurationOf(d time.Duration) DateTime {
	switch {
	case d == math.MinInt64:
		d = math.MaxInt64
	case d < 0:
		d = -d
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	out := "PT"
	if h > 0 {
		out += fmt.Sprintf("%dH", h)
	}
	if m > 0 {
		out += fmt.Sprintf("%dM", m)
	}
	if s > 0 || (h == 0 && m == 0) {
		out += fmt.Sprintf("%dS", s)
	}
	return DateTime(out)
}
