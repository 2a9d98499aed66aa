package logger

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the Go layout equivalent of the text produced by Timestamp.
const TimestampLayout = "2006-01-02 15:04:05.000"

// now is swapped in tests.
var now = time.Now

// pad left-pads n with zeros to width digits.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Timestamp returns the local wall clock as YYYY-MM-DD HH:MM:SS.mmm.
func Timestamp() string {
	return formatTimestamp(now().Local())
}

func formatTimestamp(t time.Time) string {
	var b strings.Builder
	b.Grow(len(TimestampLayout))
	b.WriteString(pad(t.Year(), 4))
	b.WriteByte('-')
	b.WriteString(pad(int(t.Month()), 2))
	b.WriteByte('-')
	b.WriteString(pad(t.Day(), 2))
	b.WriteByte(' ')
	b.WriteString(pad(t.Hour(), 2))
	b.WriteByte(':')
	b.WriteString(pad(t.Minute(), 2))
	b.WriteByte(':')
	b.WriteString(pad(t.Second(), 2))
	b.WriteByte('.')
	b.WriteString(pad(t.Nanosecond()/int(time.Millisecond), 3))
	return b.String()
}
