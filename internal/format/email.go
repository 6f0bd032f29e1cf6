package format

import (
	"strings"
	"time"
)

// AddressList joins a list of bare addresses for table display.
func AddressList(addrs []string) string {
	return strings.Join(addrs, ", ")
}

// Date renders a message timestamp for table display.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// Flags renders normalized message flags ("seen flagged") for display.
func Flags(flags []string) string {
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, " ")
}
