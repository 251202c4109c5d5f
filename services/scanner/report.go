package scanner

import (
	"fmt"
	"io"

	"farescan/lib/flight"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// Render writes the human-readable search report: a route/date header
// followed by one table row per record. An empty set just reports that
// nothing was found.
func Render(out io.Writer, query flight.Query, records []flight.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No flights found.")
		return
	}

	fmt.Fprintln(out, "FLIGHT SEARCH RESULTS")
	fmt.Fprintf(out, "Route: %s -> %s\n", query.Source, query.Destination)
	fmt.Fprintf(out, "Date: %s\n", query.TravelDate)
	if query.RoundTrip() {
		fmt.Fprintf(out, "Return: %s\n", query.ReturnDate)
	}
	fmt.Fprintf(out, "Found %d flights\n", len(records))

	t := newTable(out)
	t.AppendHeader(table.Row{
		"#", "Airline", "Departure", "Arrival", "Duration", "Price", "Stops", "Source",
	})
	for i, r := range records {
		t.AppendRow(table.Row{
			i + 1,
			r.Airline,
			fmt.Sprintf("%s (%s)", r.DepartureTime, r.DepartureAirport),
			fmt.Sprintf("%s (%s)", r.ArrivalTime, r.ArrivalAirport),
			r.DurationDisplay,
			r.PriceDisplay,
			r.Stops,
			r.SourceLabel,
		})
	}
	t.Render()
}
