package flight

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRun   = regexp.MustCompile(`\d+`)
	hourPart   = regexp.MustCompile(`(\d+)\s*h`)
	minutePart = regexp.MustCompile(`(\d+)\s*m`)
)

// ParsePrice turns raw scraped price text into a display string plus a
// numeric value. The display preserves the trimmed original ("N/A" when
// empty); the numeric value is the first run of digits after thousands
// separators are stripped, or Unknown when there are no digits. Malformed
// input never fails, it degrades to the sentinel.
func ParsePrice(text string) (string, Amount) {
	display := strings.TrimSpace(text)
	if display == "" {
		return "N/A", Unknown
	}

	run := digitRun.FindString(strings.ReplaceAll(display, ",", ""))
	if run == "" {
		return display, Unknown
	}
	v, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return display, Unknown
	}
	return display, Amount(v)
}

// ParseDuration turns raw duration text like "5h 30m" into a display string
// plus total minutes. The hour and minute components are matched
// independently, either may be absent. No component, or a zero total, yields
// Unknown.
func ParseDuration(text string) (string, Amount) {
	display := strings.TrimSpace(text)
	if display == "" {
		return "N/A", Unknown
	}

	total := 0
	if m := hourPart.FindStringSubmatch(display); m != nil {
		h, err := strconv.Atoi(m[1])
		if err == nil {
			total += h * 60
		}
	}
	if m := minutePart.FindStringSubmatch(display); m != nil {
		min, err := strconv.Atoi(m[1])
		if err == nil {
			total += min
		}
	}

	if total <= 0 {
		return display, Unknown
	}
	return display, Amount(total)
}

// FormatDuration renders a minute count the way travel sites display it.
func FormatDuration(minutes int) string {
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}
