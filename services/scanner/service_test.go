package scanner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"farescan/lib/flight"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name    string
	records []flight.Record
	err     error
	calls   int
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) Search(ctx context.Context, q flight.Query) ([]flight.Record, error) {
	f.calls++
	return f.records, f.err
}

func fakeRecords(label string, prices ...float64) []flight.Record {
	records := make([]flight.Record, 0, len(prices))
	for i, p := range prices {
		records = append(records, flight.Record{
			Airline:          fmt.Sprintf("Airline %d", i),
			DepartureTime:    "08:00",
			ArrivalTime:      "11:00",
			DurationDisplay:  "3h 0m",
			DurationMinutes:  180,
			PriceDisplay:     fmt.Sprintf("$%.0f", p),
			PriceNumeric:     flight.Amount(p),
			Stops:            "Nonstop",
			DepartureAirport: "NYC",
			ArrivalAirport:   "LAX",
			SourceLabel:      label,
		})
	}
	return records
}

func testConfig() Config {
	cfg := Config{
		FlightSearch: FlightSearch{
			Source:      "NYC",
			Destination: "LAX",
			TravelDate:  "2026-09-15",
		},
		Websites: Websites{Primary: "kayak", Fallback: []string{"demo"}},
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func TestSearchFirstSuccessWins(t *testing.T) {
	primary := &fakeSource{name: "primary", records: fakeRecords("Primary", 300, 200)}
	fallback := &fakeSource{name: "fallback", records: fakeRecords("Fallback", 100)}
	svc := NewServiceWithSources(testConfig(), primary, fallback)

	results := svc.Search(context.Background())

	require.Len(t, results, 2)
	require.Equal(t, "Primary", results[0].SourceLabel)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 0, fallback.calls, "fallback must not be consulted after a non-empty result")
}

func TestSearchEmptyPrimaryFallsThrough(t *testing.T) {
	primary := &fakeSource{name: "primary"}
	fallback := &fakeSource{name: "fallback", records: fakeRecords("Fallback", 100)}
	svc := NewServiceWithSources(testConfig(), primary, fallback)

	results := svc.Search(context.Background())

	require.Len(t, results, 1)
	require.Equal(t, "Fallback", results[0].SourceLabel)
	require.Equal(t, 1, primary.calls)
}

func TestSearchErroredSourceTreatedAsEmpty(t *testing.T) {
	primary := &fakeSource{
		name:    "primary",
		records: fakeRecords("Primary", 300),
		err:     errors.New("navigation timeout"),
	}
	fallback := &fakeSource{name: "fallback", records: fakeRecords("Fallback", 100)}
	svc := NewServiceWithSources(testConfig(), primary, fallback)

	results := svc.Search(context.Background())

	require.Len(t, results, 1)
	require.Equal(t, "Fallback", results[0].SourceLabel, "partial records from an errored source are discarded")
}

func TestSearchAllSourcesExhausted(t *testing.T) {
	primary := &fakeSource{name: "primary"}
	fallback := &fakeSource{name: "fallback", err: errors.New("blocked")}
	svc := NewServiceWithSources(testConfig(), primary, fallback)

	results := svc.Search(context.Background())

	require.Empty(t, results)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, fallback.calls)
}

func TestSearchSortsAndTruncates(t *testing.T) {
	cfg := testConfig()
	cfg.SearchSettings.MaxResults = 3

	source := &fakeSource{name: "primary", records: fakeRecords("Primary", 500, 100, 400, 200, 300)}
	svc := NewServiceWithSources(cfg, source)

	results := svc.Search(context.Background())

	require.Len(t, results, 3)
	require.Equal(t, flight.Amount(100), results[0].PriceNumeric)
	require.Equal(t, flight.Amount(200), results[1].PriceNumeric)
	require.Equal(t, flight.Amount(300), results[2].PriceNumeric)
}

func TestSearchSortsByConfiguredKey(t *testing.T) {
	cfg := testConfig()
	cfg.SearchSettings.SortBy = flight.SortByDuration

	records := fakeRecords("Primary", 100, 200)
	records[0].DurationMinutes = flight.Unknown
	records[1].DurationMinutes = 90

	source := &fakeSource{name: "primary", records: records}
	svc := NewServiceWithSources(cfg, source)

	results := svc.Search(context.Background())

	require.Equal(t, flight.Amount(90), results[0].DurationMinutes)
	require.True(t, results[1].DurationMinutes.IsUnknown(), "unknown duration sorts last")
}

func TestNewServiceBuildsChainFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Websites = Websites{Primary: "demo", Fallback: []string{"booking"}}
	require.NoError(t, cfg.Validate())

	svc, err := NewService(cfg)
	require.NoError(t, err)
	require.Len(t, svc.sources, 2)
	require.Equal(t, "Demo Data", svc.sources[0].Name())
	require.Equal(t, "Booking.com", svc.sources[1].Name())
}

func TestNewServiceRejectsUnknownSite(t *testing.T) {
	cfg := testConfig()
	cfg.Websites.Primary = "orbitz"

	_, err := NewService(cfg)
	require.Error(t, err)
}

// end to end: failing primary, demo fallback, max_results 5
func TestSearchEndToEndDemoFallback(t *testing.T) {
	cfg := Config{
		FlightSearch: FlightSearch{
			Source:      "NYC",
			Destination: "LAX",
			TravelDate:  "2026-09-15",
		},
		Websites:       Websites{Primary: "kayak", Fallback: []string{"demo"}},
		SearchSettings: SearchSettings{MaxResults: 5},
	}
	require.NoError(t, cfg.Validate())

	primary := &fakeSource{name: "kayak", err: errors.New("timeout waiting for results")}
	demoSource, err := newSource(SiteDemo, cfg)
	require.NoError(t, err)
	svc := NewServiceWithSources(cfg, primary, demoSource)

	results := svc.Search(context.Background())

	require.Len(t, results, 5)
	for i, r := range results {
		require.Equal(t, "Demo Data", r.SourceLabel)
		if i > 0 {
			require.LessOrEqual(t, results[i-1].PriceNumeric, r.PriceNumeric)
		}
	}
}
