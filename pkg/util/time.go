package util

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts covers the formats seen in driver record exports. The
// spreadsheet loader normalises to the first layout; raw sheets use the
// US-style ones, including the m/d/yy h:mm display format of date cells.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/06 15:04:05",
	"1/2/06 15:04",
	"1/2/2006",
	"2006-01-02",
}

func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range timestampLayouts {
		if timestamp, err := time.Parse(layout, value); err == nil {
			return timestamp, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}
