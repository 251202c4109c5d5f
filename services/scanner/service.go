// Package scanner runs flight searches across an ordered chain of sources
// and turns the winning result set into a report and a snapshot file.
package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"farescan/lib/flight"
	"farescan/lib/scrapers"
	"farescan/lib/scrapers/booking"
	"farescan/lib/scrapers/browser"
	"farescan/lib/scrapers/demo"
	"farescan/lib/scrapers/expedia"
	"farescan/lib/scrapers/kayak"
	"farescan/lib/telemetry"
)

var tracer = telemetry.Tracer("farescan.services.scanner")

type Service struct {
	config  Config
	sources []scrapers.Source
}

// NewService wires the fallback chain from the validated config: the
// primary site first, then each fallback in order.
func NewService(config Config) (Service, error) {
	names := append([]string{config.Websites.Primary}, config.Websites.Fallback...)

	sources := make([]scrapers.Source, 0, len(names))
	for _, name := range names {
		source, err := newSource(name, config)
		if err != nil {
			return Service{}, err
		}
		sources = append(sources, source)
	}

	return Service{config: config, sources: sources}, nil
}

// NewServiceWithSources skips the site factory; tests use it to inject
// fakes.
func NewServiceWithSources(config Config, sources ...scrapers.Source) Service {
	return Service{config: config, sources: sources}
}

func newSource(name string, config Config) (scrapers.Source, error) {
	settings := scrapers.Settings{
		MaxResults:    config.SearchSettings.MaxResults,
		Timeout:       config.SearchSettings.Timeout(),
		RetryAttempts: config.SearchSettings.RetryAttempts,
	}
	browserOpts := browser.Options{
		Headless:   config.BrowserSettings.headless(),
		WindowSize: config.BrowserSettings.WindowSize,
		UserAgent:  config.BrowserSettings.UserAgent,
	}

	switch name {
	case SiteKayak:
		return kayak.New(settings, browserOpts), nil
	case SiteExpedia:
		return expedia.New(settings, browserOpts), nil
	case SiteBooking:
		return booking.New(settings, config.BrowserSettings.UserAgent)
	case SiteDemo:
		return demo.New(settings.MaxResults, nil), nil
	}
	return nil, fmt.Errorf("unsupported website: %s", name)
}

// Search tries sources strictly in order and accepts the first non-empty
// result set, so later fallbacks are never consulted once one site yields
// records. Errored sources are logged and treated exactly like empty ones.
// The accepted set is sorted by the configured key and truncated to
// max_results. All sources empty is not an error, the result is just empty.
func (s Service) Search(ctx context.Context) []flight.Record {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	query := s.config.Query()
	slog.Info(
		"starting flight search",
		"source", query.Source,
		"destination", query.Destination,
		"date", query.TravelDate,
	)

	var results []flight.Record
	for _, source := range s.sources {
		slog.Info("searching", "site", source.Name())

		records, err := source.Search(ctx, query)
		if err != nil {
			slog.Warn("source failed, falling back", "site", source.Name(), "err", err)
			continue
		}
		if len(records) == 0 {
			slog.Info("no flights found, falling back", "site", source.Name())
			continue
		}

		slog.Info("found flights", "site", source.Name(), "count", len(records))
		results = records
		break
	}

	if len(results) == 0 {
		slog.Warn("no flights found on any website")
		return nil
	}

	flight.SortRecords(results, s.config.SearchSettings.SortBy)
	if len(results) > s.config.SearchSettings.MaxResults {
		results = results[:s.config.SearchSettings.MaxResults]
	}
	return results
}
