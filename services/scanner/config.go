package scanner

import (
	"fmt"
	"time"

	"farescan/lib/airports"
	"farescan/lib/flight"
)

// Supported site names for websites.primary and websites.fallback.
const (
	SiteKayak   = "kayak"
	SiteExpedia = "expedia"
	SiteBooking = "booking"
	SiteDemo    = "demo"
)

var supportedSites = map[string]bool{
	SiteKayak:   true,
	SiteExpedia: true,
	SiteBooking: true,
	SiteDemo:    true,
}

type FlightSearch struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
	ReturnDate  string `json:"return_date"`
	Passengers  int    `json:"passengers"`
	Class       string `json:"class"`
}

type Websites struct {
	Primary  string   `json:"primary"`
	Fallback []string `json:"fallback"`
}

type SearchSettings struct {
	MaxResults    int    `json:"max_results"`
	SortBy        string `json:"sort_by"`
	TimeoutSecs   int    `json:"timeout"`
	RetryAttempts int    `json:"retry_attempts"`
}

func (s SearchSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSecs) * time.Second
}

type BrowserSettings struct {
	Headless   *bool  `json:"headless"`
	WindowSize [2]int `json:"window_size"`
	UserAgent  string `json:"user_agent"`
}

type Config struct {
	FlightSearch    FlightSearch    `json:"flight_search"`
	Websites        Websites        `json:"websites"`
	SearchSettings  SearchSettings  `json:"search_settings"`
	BrowserSettings BrowserSettings `json:"browser_settings"`
}

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// Validate checks required fields, fills defaults, and rejects unsupported
// sites. It must pass before any search is attempted; callers treat a
// failure as fatal.
func (c *Config) Validate() error {
	fs := &c.FlightSearch
	if fs.Source == "" {
		return fmt.Errorf("flight_search.source is required")
	}
	if fs.Destination == "" {
		return fmt.Errorf("flight_search.destination is required")
	}
	if fs.TravelDate == "" {
		return fmt.Errorf("flight_search.travel_date is required")
	}
	if !validDate(fs.TravelDate) {
		return fmt.Errorf("flight_search.travel_date %q is not YYYY-MM-DD", fs.TravelDate)
	}
	if fs.ReturnDate != "" && !validDate(fs.ReturnDate) {
		return fmt.Errorf("flight_search.return_date %q is not YYYY-MM-DD", fs.ReturnDate)
	}
	if fs.Passengers < 0 {
		return fmt.Errorf("flight_search.passengers must be at least 1")
	}
	if fs.Passengers == 0 {
		fs.Passengers = 1
	}
	if fs.Class == "" {
		fs.Class = "economy"
	}

	if c.Websites.Primary == "" {
		return fmt.Errorf("websites.primary is required")
	}
	if !supportedSites[c.Websites.Primary] {
		return fmt.Errorf("websites.primary %q is not supported", c.Websites.Primary)
	}
	for _, site := range c.Websites.Fallback {
		if !supportedSites[site] {
			return fmt.Errorf("websites.fallback entry %q is not supported", site)
		}
	}

	ss := &c.SearchSettings
	if ss.MaxResults <= 0 {
		ss.MaxResults = 10
	}
	if ss.SortBy == "" {
		ss.SortBy = flight.SortByPrice
	}
	if !flight.ValidSortKey(ss.SortBy) {
		return fmt.Errorf("search_settings.sort_by %q is not one of price, duration, departure_time", ss.SortBy)
	}
	if ss.TimeoutSecs <= 0 {
		ss.TimeoutSecs = 30
	}
	if ss.RetryAttempts < 0 {
		ss.RetryAttempts = 0
	}

	return nil
}

// Query builds the adapter query from the validated search section, with
// airport input normalized.
func (c Config) Query() flight.Query {
	return flight.Query{
		Source:      airports.Resolve(c.FlightSearch.Source),
		Destination: airports.Resolve(c.FlightSearch.Destination),
		TravelDate:  c.FlightSearch.TravelDate,
		ReturnDate:  c.FlightSearch.ReturnDate,
		Passengers:  c.FlightSearch.Passengers,
		Class:       c.FlightSearch.Class,
	}
}

func (b BrowserSettings) headless() bool {
	if b.Headless == nil {
		return true
	}
	return *b.Headless
}
