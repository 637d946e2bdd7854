package ui

import "fmt"

// Status marks prefixed to one-line messages. The dialog itself never uses
// them, only the lines printed around it.
const (
	markOK   = "✓"
	markErr  = "✗"
	markWarn = "⚠"
)

func status(mark, format string, args ...interface{}) string {
	return mark + " " + fmt.Sprintf(format, args...)
}

// Successf formats a completed action, such as a created config file.
func Successf(format string, args ...interface{}) string {
	return status(markOK, format, args...)
}

// Errorf formats a fatal error for stderr.
func Errorf(format string, args ...interface{}) string {
	return status(markErr, format, args...)
}

// Warningf formats a non-fatal problem, for example a pick that could not
// be remembered.
func Warningf(format string, args ...interface{}) string {
	return status(markWarn, format, args...)
}

// Hint renders secondary text in the muted colour used for disabled days.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// DateValue renders a formatted date in the accent colour used for today.
func DateValue(date string) string {
	return Accent.Render(date)
}
