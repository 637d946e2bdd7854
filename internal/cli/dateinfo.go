package cli

import (
	"fmt"

	"github.com/persiancal/jdp/internal/jcal"
)

// dateInfo is the structured form of a Jalali date in command output.
type dateInfo struct {
	Date        string `json:"date" yaml:"date"`
	Year        int    `json:"year" yaml:"year"`
	Month       int    `json:"month" yaml:"month"`
	Day         int    `json:"day" yaml:"day"`
	Weekday     int    `json:"weekday" yaml:"weekday"`
	WeekdayName string `json:"weekday_name" yaml:"weekday_name"`
	MonthName   string `json:"month_name" yaml:"month_name"`
	Leap        bool   `json:"leap_year" yaml:"leap_year"`
	Gregorian   string `json:"gregorian" yaml:"gregorian"`
	EpochMillis int64  `json:"epoch_millis" yaml:"epoch_millis"`
}

func newDateInfo(d jcal.Date) dateInfo {
	return dateInfo{
		Date:        d.String(),
		Year:        d.Year,
		Month:       d.Month,
		Day:         d.Day,
		Weekday:     d.Weekday(),
		WeekdayName: d.WeekdayName(),
		MonthName:   d.MonthName(),
		Leap:        d.IsLeap(),
		Gregorian:   d.Time().Format("2006-01-02"),
		EpochMillis: d.EpochMillis(),
	}
}

// formatDate renders YYYY-MM-DD in the configured digits.
func formatDate(d jcal.Date) string {
	return digitFormatter.Format(d.String())
}

// describeDate renders e.g. "جمعه ۱ فروردین ۱۴۰۴".
func describeDate(d jcal.Date) string {
	return fmt.Sprintf("%s %s %s %s",
		d.WeekdayName(),
		digitFormatter.Itoa(d.Day),
		d.MonthName(),
		digitFormatter.Itoa(d.Year),
	)
}
