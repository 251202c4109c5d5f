// Package demo generates plausible flight records so the search pipeline
// can run without a browser or network access.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"farescan/lib/flight"
	"farescan/lib/telemetry"
)

var tracer = telemetry.Tracer("farescan.lib.scrapers.demo")

const maxGenerated = 8

type airline struct {
	name     string
	minPrice int
	maxPrice int
}

// ordered so a seeded rng draws the same airline every run
var airlines = []airline{
	{"American Airlines", 200, 800},
	{"Delta Air Lines", 220, 850},
	{"United Airlines", 210, 820},
	{"Southwest Airlines", 150, 600},
	{"JetBlue Airways", 180, 700},
	{"Alaska Airlines", 190, 750},
	{"Spirit Airlines", 100, 400},
	{"Frontier Airlines", 120, 450},
}

// typical durations in minutes between major metros, looked up in either
// direction
var routeDurations = map[[2]string][2]int{
	{"NYC", "LAX"}: {330, 390},
	{"NYC", "CHI"}: {150, 180},
	{"LAX", "CHI"}: {240, 280},
	{"NYC", "MIA"}: {180, 220},
	{"LAX", "SEA"}: {150, 180},
}

var defaultDuration = [2]int{120, 480}

var departureMinutes = []int{0, 15, 30, 45}

type Scraper struct {
	maxResults int
	rng        *rand.Rand
}

// New builds a generator capped at maxResults records per search. A nil rng
// gets a time-seeded one; tests inject a fixed seed.
func New(maxResults int, rng *rand.Rand) *Scraper {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scraper{maxResults: maxResults, rng: rng}
}

func (s *Scraper) Name() string {
	return "Demo Data"
}

func (s *Scraper) Search(ctx context.Context, q flight.Query) ([]flight.Record, error) {
	_, span := tracer.Start(ctx, "Search")
	defer span.End()

	slog.Info("generating demo flights", "source", q.Source, "destination", q.Destination)

	count := s.maxResults
	if count > maxGenerated {
		count = maxGenerated
	}

	records := make([]flight.Record, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, s.generate(q))
	}

	flight.SortRecords(records, flight.SortByPrice)
	return records, nil
}

func (s *Scraper) intRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

func (s *Scraper) generate(q flight.Query) flight.Record {
	carrier := airlines[s.rng.Intn(len(airlines))]
	price := s.intRange(carrier.minPrice, carrier.maxPrice) + s.intRange(-50, 100)

	durationRange, ok := routeDurations[[2]string{q.Source, q.Destination}]
	if !ok {
		durationRange, ok = routeDurations[[2]string{q.Destination, q.Source}]
	}
	if !ok {
		durationRange = defaultDuration
	}
	durationMinutes := s.intRange(durationRange[0], durationRange[1])

	departureHour := s.intRange(6, 22)
	departureMinute := departureMinutes[s.rng.Intn(len(departureMinutes))]
	departure := time.Date(2000, 1, 1, departureHour, departureMinute, 0, 0, time.UTC)
	if travelDate, err := time.Parse("2006-01-02", q.TravelDate); err == nil {
		departure = travelDate.Add(
			time.Duration(departureHour)*time.Hour + time.Duration(departureMinute)*time.Minute,
		)
	}
	arrival := departure.Add(time.Duration(durationMinutes) * time.Minute)

	arrivalTime := arrival.Format("15:04")
	if arrival.Day() != departure.Day() {
		arrivalTime += " +1"
	}

	// nonstop commands a premium, two stops trade comfort for price
	stops := "1 stop"
	switch roll := s.rng.Float64(); {
	case roll < 0.4:
		stops = "Nonstop"
		price += s.intRange(50, 150)
	case roll >= 0.9:
		stops = "2 stops"
		price -= s.intRange(30, 100)
	}

	return flight.Record{
		Airline:          carrier.name,
		DepartureTime:    departure.Format("15:04"),
		ArrivalTime:      arrivalTime,
		DurationDisplay:  flight.FormatDuration(durationMinutes),
		DurationMinutes:  flight.Amount(durationMinutes),
		PriceDisplay:     fmt.Sprintf("$%d", price),
		PriceNumeric:     flight.Amount(price),
		Stops:            stops,
		DepartureAirport: q.Source,
		ArrivalAirport:   q.Destination,
		SourceLabel:      "Demo Data",
	}
}
