package flight

import (
	"slices"
	"strings"
)

// Sort keys accepted by SortRecords and the search_settings.sort_by config
// field.
const (
	SortByPrice         = "price"
	SortByDuration      = "duration"
	SortByDepartureTime = "departure_time"
)

func ValidSortKey(key string) bool {
	switch key {
	case SortByPrice, SortByDuration, SortByDepartureTime:
		return true
	}
	return false
}

func compareAmount(a, b Amount) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// SortRecords stably sorts records in place, ascending by the given key.
// Unknown prices and durations sort last. An unrecognized key falls back to
// price ordering.
func SortRecords(records []Record, key string) {
	slices.SortStableFunc(records, func(a, b Record) int {
		switch key {
		case SortByDuration:
			return compareAmount(a.DurationMinutes, b.DurationMinutes)
		case SortByDepartureTime:
			return strings.Compare(a.DepartureTime, b.DepartureTime)
		default:
			return compareAmount(a.PriceNumeric, b.PriceNumeric)
		}
	})
}
