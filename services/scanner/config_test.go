package scanner

import (
	"testing"

	"farescan/lib/flight"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		FlightSearch: FlightSearch{
			Source:      "New York",
			Destination: "LAX",
			TravelDate:  "2026-09-15",
		},
		Websites: Websites{Primary: "kayak", Fallback: []string{"expedia", "demo"}},
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 1, cfg.FlightSearch.Passengers)
	require.Equal(t, "economy", cfg.FlightSearch.Class)
	require.Equal(t, 10, cfg.SearchSettings.MaxResults)
	require.Equal(t, flight.SortByPrice, cfg.SearchSettings.SortBy)
	require.Equal(t, 30, cfg.SearchSettings.TimeoutSecs)
}

func TestValidateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing source", func(c *Config) { c.FlightSearch.Source = "" }},
		{"missing destination", func(c *Config) { c.FlightSearch.Destination = "" }},
		{"missing travel date", func(c *Config) { c.FlightSearch.TravelDate = "" }},
		{"bad travel date", func(c *Config) { c.FlightSearch.TravelDate = "09/15/2026" }},
		{"bad return date", func(c *Config) { c.FlightSearch.ReturnDate = "next week" }},
		{"negative passengers", func(c *Config) { c.FlightSearch.Passengers = -2 }},
		{"missing primary", func(c *Config) { c.Websites.Primary = "" }},
		{"unsupported primary", func(c *Config) { c.Websites.Primary = "orbitz" }},
		{"unsupported fallback", func(c *Config) { c.Websites.Fallback = []string{"priceline"} }},
		{"bad sort key", func(c *Config) { c.SearchSettings.SortBy = "altitude" }},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestQueryNormalizesAirports(t *testing.T) {
	cfg := validConfig()
	cfg.FlightSearch.Destination = "los angeles"
	require.NoError(t, cfg.Validate())

	q := cfg.Query()
	require.Equal(t, "NYC", q.Source)
	require.Equal(t, "LAX", q.Destination)
	require.Equal(t, 1, q.Passengers)
}
