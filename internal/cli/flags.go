package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/weekdate"
	"github.com/spf13/pflag"
)

// isoDateValue is a pflag.Value accepting YYYY-MM-DD calendar dates.
type isoDateValue struct {
	date string
}

var _ pflag.Value = (*isoDateValue)(nil)

func (v *isoDateValue) String() string { return v.date }
func (v *isoDateValue) Type() string   { return "date" }

func (v *isoDateValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if !weekdate.Valid(s) {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	v.date = s
	return nil
}

// weekdayValue is a pflag.Value accepting any day label ParseWeekday knows,
// e.g. "Thứ 2", "T3", "wed" or "5".
type weekdayValue struct {
	day domain.Weekday
	set bool
}

var _ pflag.Value = (*weekdayValue)(nil)

func (v *weekdayValue) String() string {
	if !v.set {
		return ""
	}
	return v.day.String()
}

func (v *weekdayValue) Type() string { return "day" }

func (v *weekdayValue) Set(s string) error {
	d, ok := domain.ParseWeekday(s)
	if !ok {
		return fmt.Errorf("unknown day %q, use Thứ 2 .. Thứ 7", s)
	}
	v.day, v.set = d, true
	return nil
}

// optionalString tracks whether a string flag was given, so an explicit
// empty value can clear a field.
func optionalString(flags *pflag.FlagSet, name string, value string) *string {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}
