// Package expedia scrapes flight offers from expedia.com by driving its
// search form in a headless browser.
package expedia

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farescan/lib/flight"
	"farescan/lib/scrapers"
	"farescan/lib/scrapers/browser"
	"farescan/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("farescan.lib.scrapers.expedia")

type Scraper struct {
	settings scrapers.Settings
	browser  browser.Options
}

func New(settings scrapers.Settings, browserOpts browser.Options) *Scraper {
	return &Scraper{settings: settings, browser: browserOpts}
}

func (s *Scraper) Name() string {
	return "Expedia"
}

func (s *Scraper) Search(ctx context.Context, q flight.Query) ([]flight.Record, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	tabCtx, cancel := browser.NewContext(ctx, s.browser)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, s.settings.Timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("https://www.expedia.com/Flights"),
		chromedp.Sleep(time.Second*2),
		fillSearchForm(q),
		chromedp.WaitVisible(`[data-test-id="offer-listing"]`, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "expedia search failed")
		return nil, fmt.Errorf("expedia navigation: %w", err)
	}

	return s.parseResults(html, q)
}

func fillSearchForm(q flight.Query) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Click(`#location-field-leg1-origin`, chromedp.ByQuery),
		chromedp.SendKeys(`#location-field-leg1-origin`, q.Source, chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.Click(`#location-field-leg1-destination`, chromedp.ByQuery),
		chromedp.SendKeys(`#location-field-leg1-destination`, q.Destination, chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.Click(`#d1-btn`, chromedp.ByQuery),
		chromedp.SendKeys(`#d1-btn`, q.TravelDate, chromedp.ByQuery),
		chromedp.Click(`#search-button`, chromedp.ByQuery),
	}
}

func (s *Scraper) parseResults(html string, q flight.Query) ([]flight.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var records []flight.Record
	doc.Find(`[data-test-id="offer-listing"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(records) >= s.settings.MaxResults {
			return false
		}
		records = append(records, parseOffer(sel, q))
		return true
	})
	return records, nil
}

func parseOffer(sel *goquery.Selection, q flight.Query) flight.Record {
	airline := strings.TrimSpace(sel.Find(`[data-test-id="airline-name"]`).First().Text())
	if airline == "" {
		airline = "Unknown"
	}

	departure, arrival := "N/A", "N/A"
	timeText := strings.TrimSpace(sel.Find(`[data-test-id="departure-time"]`).First().Text())
	// expedia renders "HH:MM - HH:MM" in one span
	if before, after, found := strings.Cut(timeText, "-"); found {
		departure = strings.TrimSpace(before)
		arrival = strings.TrimSpace(after)
	} else if timeText != "" {
		departure = timeText
	}

	durationDisplay, durationMinutes := flight.ParseDuration(
		sel.Find(`[data-test-id="journey-duration"]`).First().Text(),
	)
	priceDisplay, priceNumeric := flight.ParsePrice(
		sel.Find(`[data-test-id="listing-price-dollars"]`).First().Text(),
	)

	stops := strings.TrimSpace(sel.Find(`[data-test-id="flight-stops"]`).First().Text())
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
		SourceLabel:      "Expedia",
	}
}
