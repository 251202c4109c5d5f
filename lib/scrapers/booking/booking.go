// Package booking scrapes flight offers from flights.booking.com over plain
// HTTP, no browser needed since the results page renders server-side.
package booking

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"farescan/lib/flight"
	"farescan/lib/scrapers"
	"farescan/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	fakeua "github.com/EDDYCJY/fake-useragent"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("farescan.lib.scrapers.booking")

type Scraper struct {
	settings scrapers.Settings
	http     *resty.Client
}

func New(settings scrapers.Settings, userAgent string) (*Scraper, error) {
	if userAgent == "" {
		userAgent = fakeua.Chrome()
	}

	client := resty.New()
	client.SetBaseURL("https://flights.booking.com")
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(settings.Timeout)

	telemetry.InstrumentResty(client, "farescan.lib.scrapers.booking.http")

	return &Scraper{settings: settings, http: client}, nil
}

func (s *Scraper) Name() string {
	return "Booking.com"
}

func (s *Scraper) Search(ctx context.Context, q flight.Query) ([]flight.Record, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	query := url.Values{}
	query.Set("type", "ONEWAY")
	if q.RoundTrip() {
		query.Set("type", "ROUNDTRIP")
		query.Set("return", q.ReturnDate)
	}
	query.Set("depart", q.TravelDate)
	query.Set("adults", strconv.Itoa(q.Passengers))
	query.Set("cabinClass", strings.ToUpper(q.Class))

	path := fmt.Sprintf("/flights/%s-%s", q.Source, q.Destination)

	res, err := s.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking request failed")
		return nil, fmt.Errorf("booking request: %w", err)
	}
	if res.StatusCode() >= 400 {
		err := fmt.Errorf("booking responded with status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking request failed")
		return nil, err
	}

	return s.parseResults(res.Body(), q)
}

func (s *Scraper) parseResults(body []byte, q flight.Query) ([]flight.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var records []flight.Record
	doc.Find(`[data-testid="flightOffer"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(records) >= s.settings.MaxResults {
			return false
		}
		records = append(records, parseOffer(sel, q))
		return true
	})
	return records, nil
}

func parseOffer(sel *goquery.Selection, q flight.Query) flight.Record {
	airline := strings.TrimSpace(sel.Find(`[data-testid="carrier_name"]`).First().Text())
	if airline == "" {
		airline = "Unknown"
	}

	departure := strings.TrimSpace(sel.Find(`[data-testid="flight_card_segment_departure_time"]`).First().Text())
	if departure == "" {
		departure = "N/A"
	}
	arrival := strings.TrimSpace(sel.Find(`[data-testid="flight_card_segment_destination_time"]`).First().Text())
	if arrival == "" {
		arrival = "N/A"
	}

	durationDisplay, durationMinutes := flight.ParseDuration(
		sel.Find(`[data-testid="flight_card_segment_duration"]`).First().Text(),
	)
	priceDisplay, priceNumeric := flight.ParsePrice(
		sel.Find(`[data-testid="flight_card_price_main_price"]`).First().Text(),
	)

	stops := strings.TrimSpace(sel.Find(`[data-testid="flight_card_segment_stops"]`).First().Text())
	if stops == "" {
		stops = "N/A"
	}

	return flight.Record{
		Airline:          airline,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		DurationDisplay:  durationDisplay,
		DurationMinutes:  durationMinutes,
		PriceDisplay:     priceDisplay,
		PriceNumeric:     priceNumeric,
		Stops:            stops,
		DepartureAirport: q.Source,
		ArrivalAirport:   q.Destination,
		SourceLabel:      "Booking.com",
	}
}
