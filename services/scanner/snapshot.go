package scanner

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"farescan/lib/flight"
)

// Snapshot is the persisted form of one search run.
type Snapshot struct {
	SearchParameters flight.Query    `json:"search_parameters"`
	SearchTimestamp  string          `json:"search_timestamp"`
	Flights          []flight.Record `json:"flights"`
}

func defaultSnapshotName(now time.Time) string {
	return fmt.Sprintf("flight_results_%s.json", now.Format("20060102_150405"))
}

// WriteSnapshot saves the query and its records as indented JSON. An empty
// filename gets a timestamp-derived default. The written path is returned.
func WriteSnapshot(filename string, query flight.Query, records []flight.Record) (string, error) {
	if filename == "" {
		filename = defaultSnapshotName(time.Now())
	}
	if records == nil {
		records = []flight.Record{}
	}

	snapshot := Snapshot{
		SearchParameters: query,
		SearchTimestamp:  time.Now().Format(time.RFC3339),
		Flights:          records,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return filename, err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return filename, err
	}
	return filename, nil
}
