package flight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		text    string
		display string
		numeric Amount
	}{
		{text: "$1,234 round trip", display: "$1,234 round trip", numeric: 1234},
		{text: "$458", display: "$458", numeric: 458},
		{text: "  €299  ", display: "€299", numeric: 299},
		{text: "1200", display: "1200", numeric: 1200},
		{text: "call for fare", display: "call for fare", numeric: Unknown},
		{text: "", display: "N/A", numeric: Unknown},
		{text: "   ", display: "N/A", numeric: Unknown},
	}

	for _, test := range testCases {
		display, numeric := ParsePrice(test.text)
		require.Equal(t, test.display, display, "input: %q", test.text)
		require.Equal(t, test.numeric, numeric, "input: %q", test.text)
	}
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		text    string
		display string
		minutes Amount
	}{
		{text: "5h 30m", display: "5h 30m", minutes: 330},
		{text: "3h", display: "3h", minutes: 180},
		{text: "45m", display: "45m", minutes: 45},
		{text: " 12h 5m ", display: "12h 5m", minutes: 725},
		{text: "garbled", display: "garbled", minutes: Unknown},
		{text: "0h 0m", display: "0h 0m", minutes: Unknown},
		{text: "", display: "N/A", minutes: Unknown},
	}

	for _, test := range testCases {
		display, minutes := ParseDuration(test.text)
		require.Equal(t, test.display, display, "input: %q", test.text)
		require.Equal(t, test.minutes, minutes, "input: %q", test.text)
	}
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "5h 30m", FormatDuration(330))
	require.Equal(t, "0h 45m", FormatDuration(45))
	require.Equal(t, "3h 0m", FormatDuration(180))
}
