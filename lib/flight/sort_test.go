package flight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func rec(airline string, price, duration Amount, departure string) Record {
	return Record{
		Airline:         airline,
		DepartureTime:   departure,
		PriceNumeric:    price,
		DurationMinutes: duration,
	}
}

func TestSortRecordsByPrice(t *testing.T) {
	records := []Record{
		rec("a", 500, 120, "06:00"),
		rec("b", Unknown, 90, "07:00"),
		rec("c", 250, 300, "08:00"),
	}

	SortRecords(records, SortByPrice)

	require.Equal(t, "c", records[0].Airline)
	require.Equal(t, "a", records[1].Airline)
	require.Equal(t, "b", records[2].Airline, "unknown price sorts last")
}

func TestSortRecordsByDuration(t *testing.T) {
	records := []Record{
		rec("a", 100, Unknown, "06:00"),
		rec("b", 200, 330, "07:00"),
		rec("c", 300, 45, "08:00"),
	}

	SortRecords(records, SortByDuration)

	require.Equal(t, "c", records[0].Airline)
	require.Equal(t, "b", records[1].Airline)
	require.Equal(t, "a", records[2].Airline, "unknown duration sorts last")
}

func TestSortRecordsByDepartureTime(t *testing.T) {
	records := []Record{
		rec("a", 100, 60, "22:15"),
		rec("b", 200, 60, "06:30"),
		rec("c", 300, 60, "14:00"),
	}

	SortRecords(records, SortByDepartureTime)

	require.Equal(t, "b", records[0].Airline)
	require.Equal(t, "c", records[1].Airline)
	require.Equal(t, "a", records[2].Airline)
}

func TestSortRecordsStable(t *testing.T) {
	records := []Record{
		rec("first", 100, 60, "06:00"),
		rec("second", 100, 70, "07:00"),
		rec("third", 100, 80, "08:00"),
	}

	SortRecords(records, SortByPrice)

	require.Equal(t, "first", records[0].Airline)
	require.Equal(t, "second", records[1].Airline)
	require.Equal(t, "third", records[2].Airline)
}

func TestSortRecordsUnknownKeyFallsBackToPrice(t *testing.T) {
	records := []Record{
		rec("a", 300, 60, "06:00"),
		rec("b", 100, 60, "07:00"),
	}

	SortRecords(records, "altitude")

	require.Equal(t, "b", records[0].Airline)
}

func TestAmountJSON(t *testing.T) {
	record := rec("a", Unknown, 330, "06:00")

	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.Contains(t, string(data), `"price_numeric":null`)
	require.Contains(t, string(data), `"duration_minutes":330`)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.PriceNumeric.IsUnknown())
	require.Equal(t, Amount(330), decoded.DurationMinutes)
}
